package database

import (
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wealthwise/internal/domain"
	"wealthwise/internal/models"
)

const demoEmail = "demo@wealthwisemarketing.pro"

// SeedDemoClient provisions a demo client with an opening deposit so a fresh
// development database has something to log into. No-op if the client exists.
func SeedDemoClient(db *gorm.DB) {
	var existing models.Client
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		return
	}
	client := &models.Client{
		Email:    demoEmail,
		FullName: "Demo Client",
	}
	if err := db.Create(client).Error; err != nil {
		log.WithError(err).Warn("seed: demo client not created")
		return
	}
	desc := "Opening deposit"
	deposit := &models.FundTransaction{
		ClientID:        client.ID,
		Amount:          decimal.NewFromInt(1000),
		TransactionType: domain.TxDeposit,
		Description:     &desc,
	}
	if err := db.Create(deposit).Error; err != nil {
		log.WithError(err).Warn("seed: opening deposit not created")
	}
	log.WithField("email", demoEmail).Info("seed: demo client provisioned")
}

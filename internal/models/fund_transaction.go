package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FundTransaction is an append-only signed ledger row. A client's current
// balance is the sum of its amounts; positive = credit, negative = debit.
type FundTransaction struct {
	ID              string          `gorm:"type:char(36);primaryKey" json:"id"`
	ClientID        string          `gorm:"type:char(36);not null;index" json:"client_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	TransactionType string          `gorm:"size:32;not null;index" json:"transaction_type"` // deposit, withdrawal, roi_payment, campaign_investment
	Description     *string         `gorm:"size:512" json:"description,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

func (FundTransaction) TableName() string {
	return "fund_transactions"
}

func (t *FundTransaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

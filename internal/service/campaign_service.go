package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wealthwise/internal/domain"
	"wealthwise/internal/models"
)

// CampaignStore and TransactionStore are the slices of the storage layer the
// investment workflow touches. internal/repository satisfies both.
type CampaignStore interface {
	Create(ctx context.Context, cm *models.Campaign) error
}

type TransactionStore interface {
	Create(ctx context.Context, t *models.FundTransaction) error
	SumAmounts(ctx context.Context, clientID string) (decimal.Decimal, error)
}

// RefreshNotifier pushes refresh events to a client's live dashboard sessions.
type RefreshNotifier interface {
	NotifyClient(clientID string, events ...string)
}

type CampaignService struct {
	campaigns    CampaignStore
	transactions TransactionStore
	notifier     RefreshNotifier
	now          func() time.Time
}

func NewCampaignService(campaigns CampaignStore, transactions TransactionStore, notifier RefreshNotifier) *CampaignService {
	return &CampaignService{campaigns: campaigns, transactions: transactions, notifier: notifier, now: time.Now}
}

// CurrentBalance returns the client's net balance, freshly computed.
func (s *CampaignService) CurrentBalance(ctx context.Context, clientID string) (decimal.Decimal, error) {
	return s.transactions.SumAmounts(ctx, clientID)
}

// Invest runs the campaign investment workflow: balance query, validation,
// campaign insert, debit transaction insert.
//
// The two writes are intentionally not atomic: once the campaign row is in, a
// failed debit insert is logged as a warning and the workflow still succeeds.
// That preserves the portal's historical success semantics.
func (s *CampaignService) Invest(ctx context.Context, clientID string, in CampaignInput) (*models.Campaign, error) {
	var balance *decimal.Decimal
	if sum, err := s.transactions.SumAmounts(ctx, clientID); err != nil {
		log.WithError(err).WithField("client_id", clientID).
			Warn("balance query failed, proceeding without balance check")
	} else {
		balance = &sum
	}

	norm, err := ValidateCampaignInput(in, balance)
	if err != nil {
		return nil, err
	}

	start := s.now().UTC().Truncate(24 * time.Hour)
	cm := &models.Campaign{
		ClientID:         clientID,
		Name:             norm.Name,
		InvestmentAmount: norm.Investment,
		DurationDays:     norm.Duration,
		ROIPercentage:    norm.ROI,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, norm.Duration),
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		cm.Description = &desc
	}
	if err := s.campaigns.Create(ctx, cm); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	desc := "Investment in campaign: " + norm.Name
	debit := &models.FundTransaction{
		ClientID:        clientID,
		Amount:          norm.Investment.Neg(),
		TransactionType: domain.TxCampaignInvestment,
		Description:     &desc,
	}
	if err := s.transactions.Create(ctx, debit); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"client_id":   clientID,
			"campaign_id": cm.ID,
		}).Warn("campaign created but investment transaction failed")
	}

	if s.notifier != nil {
		s.notifier.NotifyClient(clientID, domain.EventCampaignsUpdated, domain.EventTransactionsUpdated)
	}
	return cm, nil
}

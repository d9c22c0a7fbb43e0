package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wealthwise/internal/models"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.FundTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListByClient(ctx context.Context, clientID string) ([]models.FundTransaction, error) {
	var txs []models.FundTransaction
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

// SumAmounts computes the client's current net balance as the sum of all its
// transaction amounts.
func (r *TransactionRepository) SumAmounts(ctx context.Context, clientID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.FundTransaction{}).
		Where("client_id = ?", clientID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

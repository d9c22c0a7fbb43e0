package repository

import (
	"context"

	"gorm.io/gorm"

	"wealthwise/internal/models"
)

// BalanceRepository reads administrator-written balance snapshots.
type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

func (r *BalanceRepository) Create(ctx context.Context, b *models.ClientBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BalanceRepository) ListByClient(ctx context.Context, clientID string) ([]models.ClientBalance, error) {
	var balances []models.ClientBalance
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&balances).Error
	return balances, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"wealthwise/internal/domain"
	"wealthwise/internal/models"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, cm *models.Campaign) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *CampaignRepository) ListByClient(ctx context.Context, clientID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

// GetForClient fetches one campaign scoped to its owner; a foreign campaign id
// comes back as gorm.ErrRecordNotFound.
func (r *CampaignRepository) GetForClient(ctx context.Context, id, clientID string) (*models.Campaign, error) {
	var cm models.Campaign
	err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", id, clientID).
		First(&cm).Error
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *CampaignRepository) CountActive(ctx context.Context, clientID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Where("client_id = ? AND status = ?", clientID, domain.CampaignActive).
		Count(&n).Error
	return n, err
}

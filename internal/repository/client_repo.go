package repository

import (
	"context"

	"gorm.io/gorm"

	"wealthwise/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var cl models.Client
	err := r.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	var cl models.Client
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&cl).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wealthwise/internal/models"
)

// ErrTokenConsumed is returned when marking a token used finds it already
// consumed by a concurrent exchange.
var ErrTokenConsumed = errors.New("access token already used")

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, t *models.AccessToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// GetValid looks up a token by value that is unused and not yet expired.
func (r *TokenRepository) GetValid(ctx context.Context, token string, now time.Time) (*models.AccessToken, error) {
	var t models.AccessToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkUsed consumes a token. The used = false guard keeps the token
// single-use even when two exchanges race.
func (r *TokenRepository) MarkUsed(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.AccessToken{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTokenConsumed
	}
	return nil
}

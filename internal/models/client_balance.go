package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClientBalance is an administrator-written balance snapshot, shown on the
// dashboard as balance history.
type ClientBalance struct {
	ID          string          `gorm:"type:char(36);primaryKey" json:"id"`
	ClientID    string          `gorm:"type:char(36);index" json:"client_id"`
	Balance     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance"`
	Description *string         `gorm:"size:512" json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

func (ClientBalance) TableName() string {
	return "client_balances"
}

func (b *ClientBalance) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessToken is a single-use, time-boxed login token delivered by email.
type AccessToken struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	ClientID  string    `gorm:"type:char(36);not null;index" json:"client_id"`
	Token     string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	Used      bool      `gorm:"not null;default:false;index" json:"used"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

func (AccessToken) TableName() string {
	return "client_access_tokens"
}

func (t *AccessToken) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

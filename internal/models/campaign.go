package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Campaign is a client-initiated investment with a fixed duration and a daily
// return rate. Status and ROI accrual are advanced by back-office processes,
// not by the portal.
type Campaign struct {
	ID               string          `gorm:"type:char(36);primaryKey" json:"id"`
	ClientID         string          `gorm:"type:char(36);not null;index" json:"client_id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Description      *string         `gorm:"size:1024" json:"description,omitempty"`
	InvestmentAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"investment_amount"`
	DurationDays     int             `gorm:"not null" json:"duration_days"`
	ROIPercentage    decimal.Decimal `gorm:"type:decimal(7,2);not null" json:"roi_percentage"`
	Status           string          `gorm:"size:20;not null;default:'active'" json:"status"`
	StartDate        time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate          time.Time       `gorm:"type:date;not null" json:"end_date"`
	TotalROIEarned   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_roi_earned"`
	LastROIPayment   *time.Time      `json:"last_roi_payment,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

func (c *Campaign) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

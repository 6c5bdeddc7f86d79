package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// How a job compensates the worker.
const (
	PaymentTypeHourly  = "hourly"
	PaymentTypePayouts = "payouts"
)

// Job represents a gig performed for a company. Hourly jobs carry an hourly
// rate; payout jobs carry a fixed payout count and amount instead.
type Job struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string `gorm:"not null;index" json:"user_id"`
	CompanyID string `gorm:"not null;index" json:"company_id"`
	Title     string `gorm:"not null" json:"title"`

	PaymentType     string           `gorm:"not null" json:"payment_type"` // hourly, payouts
	NumberOfPayouts *int             `json:"number_of_payouts"`
	PayoutAmount    *decimal.Decimal `gorm:"type:decimal(12,2)" json:"payout_amount"`
	HourlyRate      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"hourly_rate"`

	// Relationships
	Company      Company       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	WorkSessions []WorkSession `gorm:"foreignKey:JobID" json:"-"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

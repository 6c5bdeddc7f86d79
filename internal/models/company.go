package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Company represents an employer or client that pays the user for gigs
type Company struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	// Tax withholding rate is a percentage (0-100), only meaningful when
	// RequiresTaxWithholdings is set.
	RequiresTaxWithholdings bool             `gorm:"default:false" json:"requires_tax_withholdings"`
	TaxWithholdingRate      *decimal.Decimal `gorm:"type:decimal(5,2)" json:"tax_withholding_rate"`

	// Relationships
	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Method by which a payment is received.
const (
	PayoutTypePaypal        = "paypal"
	PayoutTypeCash          = "cash"
	PayoutTypeCheck         = "check"
	PayoutTypeZelle         = "zelle"
	PayoutTypeVenmo         = "venmo"
	PayoutTypeDirectDeposit = "direct_deposit"
)

// PayoutTypeSupportsTransfer reports whether a payout method moves funds
// through a transfer step (app balance to bank account). Transfer dates and
// flags only apply to these methods.
func PayoutTypeSupportsTransfer(payoutType string) bool {
	switch payoutType {
	case PayoutTypePaypal, PayoutTypeVenmo, PayoutTypeZelle:
		return true
	}
	return false
}

// Payment represents money received (or expected) from a company
type Payment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string `gorm:"not null;index" json:"user_id"`
	CompanyID string `gorm:"not null;index" json:"company_id"`

	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PayoutType string          `gorm:"not null" json:"payout_type"`

	ExpectedPayoutDate   *time.Time `json:"expected_payout_date"`
	ExpectedTransferDate *time.Time `json:"expected_transfer_date"`

	TransferInitiated      bool `gorm:"default:false" json:"transfer_initiated"`
	PaymentReceived        bool `gorm:"default:false" json:"payment_received"`
	TransferReceived       bool `gorm:"default:false" json:"transfer_received"`
	TaxWithholdingsCovered bool `gorm:"default:false" json:"tax_withholdings_covered"`

	// Relationships
	Company Company `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

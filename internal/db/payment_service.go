package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/validate"
)

// PaymentInput carries the writable fields for payment create and update
// operations.
type PaymentInput struct {
	CompanyID              string
	Total                  decimal.Decimal
	PayoutType             string
	ExpectedPayoutDate     *time.Time
	ExpectedTransferDate   *time.Time
	TransferInitiated      bool
	PaymentReceived        bool
	TransferReceived       bool
	TaxWithholdingsCovered bool
}

func (in *PaymentInput) validate(userID string) error {
	if err := validate.PaymentConsistency(in.Total, in.PayoutType, in.ExpectedPayoutDate, in.ExpectedTransferDate,
		in.TransferInitiated, in.PaymentReceived, in.TransferReceived); err != nil {
		return err
	}
	if _, err := CompanyByID(userID, in.CompanyID); err != nil {
		return err
	}
	return nil
}

// CreatePayment records a payment from one of the user's companies.
func CreatePayment(userID string, input PaymentInput) (*models.Payment, error) {
	if err := input.validate(userID); err != nil {
		return nil, err
	}

	payment := models.Payment{
		UserID:                 userID,
		CompanyID:              input.CompanyID,
		Total:                  input.Total,
		PayoutType:             input.PayoutType,
		ExpectedPayoutDate:     input.ExpectedPayoutDate,
		ExpectedTransferDate:   input.ExpectedTransferDate,
		TransferInitiated:      input.TransferInitiated,
		PaymentReceived:        input.PaymentReceived,
		TransferReceived:       input.TransferReceived,
		TaxWithholdingsCovered: input.TaxWithholdingsCovered,
	}

	if err := DB.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// UpdatePayment rewrites a payment's fields.
func UpdatePayment(userID, paymentID string, input PaymentInput) (*models.Payment, error) {
	if err := input.validate(userID); err != nil {
		return nil, err
	}

	payment, err := PaymentByID(userID, paymentID)
	if err != nil {
		return nil, err
	}

	payment.CompanyID = input.CompanyID
	payment.Total = input.Total
	payment.PayoutType = input.PayoutType
	payment.ExpectedPayoutDate = input.ExpectedPayoutDate
	payment.ExpectedTransferDate = input.ExpectedTransferDate
	payment.TransferInitiated = input.TransferInitiated
	payment.PaymentReceived = input.PaymentReceived
	payment.TransferReceived = input.TransferReceived
	payment.TaxWithholdingsCovered = input.TaxWithholdingsCovered

	if err := DB.Save(payment).Error; err != nil {
		return nil, err
	}

	return payment, nil
}

// DeletePayment removes a payment record.
func DeletePayment(userID, paymentID string) error {
	payment, err := PaymentByID(userID, paymentID)
	if err != nil {
		return err
	}
	return DB.Delete(payment).Error
}

// PaymentByID retrieves a payment scoped to its owner.
func PaymentByID(userID, paymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := DB.Where("id = ? AND user_id = ?", paymentID, userID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %w", ErrNotFound)
		}
		return nil, err
	}
	return &payment, nil
}

// ListPayments returns the user's payments, newest first, optionally filtered
// to one company.
func ListPayments(userID, companyID string) ([]models.Payment, error) {
	query := DB.Where("user_id = ?", userID)
	if companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	var payments []models.Payment
	err := query.Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

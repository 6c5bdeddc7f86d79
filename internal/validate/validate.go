// Package validate holds cross-field request validation shared by the HTTP
// handlers and the CLI commands, so both surfaces reject the same payloads.
package validate

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/palette"
)

// ErrValidation marks user-correctable input errors. Handlers map it to a
// 400 response; the CLI prints the message and exits.
var ErrValidation = errors.New("validation error")

// Error builds a user-facing validation error that matches ErrValidation
// under errors.Is. Other packages use it for state-transition violations that
// should surface as 400s.
func Error(message string) error {
	return validationError(message)
}

func validationError(message string) error {
	return &validationErr{message: message}
}

type validationErr struct {
	message string
}

func (e *validationErr) Error() string { return e.message }

func (e *validationErr) Is(target error) bool { return target == ErrValidation }

// JobPaymentConfiguration checks that a job's payment fields match its
// payment type: hourly jobs need an hourly rate and no payout fields, payout
// jobs need both payout fields and no hourly rate.
func JobPaymentConfiguration(paymentType string, numberOfPayouts *int, payoutAmount, hourlyRate *decimal.Decimal) error {
	switch paymentType {
	case models.PaymentTypeHourly:
		if hourlyRate == nil {
			return validationError("Hourly rate is required when payment type is hourly")
		}
		if numberOfPayouts != nil || payoutAmount != nil {
			return validationError("Payout fields must be omitted when payment type is hourly")
		}
	case models.PaymentTypePayouts:
		if numberOfPayouts == nil || payoutAmount == nil {
			return validationError("Number of payouts and payout amount are required when payment type is payouts")
		}
		if hourlyRate != nil {
			return validationError("Hourly rate must be omitted when payment type is payouts")
		}
	default:
		return validationError("Payment type must be hourly or payouts")
	}
	return nil
}

// PaymentConsistency checks a payment's payout-type-specific dates and
// transfer flags. Only transfer-capable payout methods (paypal, venmo, zelle)
// may carry transfer dates or transfer status flags, and the flags must form
// a coherent progression.
func PaymentConsistency(
	total decimal.Decimal,
	payoutType string,
	expectedPayoutDate, expectedTransferDate *time.Time,
	transferInitiated, paymentReceived, transferReceived bool,
) error {
	switch payoutType {
	case models.PayoutTypePaypal, models.PayoutTypeCash, models.PayoutTypeCheck,
		models.PayoutTypeZelle, models.PayoutTypeVenmo, models.PayoutTypeDirectDeposit:
	default:
		return validationError("Unknown payout type")
	}

	if total.LessThanOrEqual(decimal.Zero) {
		return validationError("Payment total must be greater than 0")
	}

	supportsTransfer := models.PayoutTypeSupportsTransfer(payoutType)

	if !supportsTransfer {
		if expectedTransferDate != nil {
			return validationError("Expected transfer date must be omitted for this payout type")
		}
		if transferInitiated {
			return validationError("Transfer initiated must be false for this payout type")
		}
		if transferReceived {
			return validationError("Transfer received must be false for this payout type")
		}
	}

	if supportsTransfer {
		if (transferInitiated || transferReceived) && expectedTransferDate == nil {
			return validationError("Expected transfer date is required when transfer status flags are set")
		}
		if transferInitiated && !paymentReceived {
			return validationError("Transfer initiated requires payment_received to be true")
		}
		if transferReceived && !transferInitiated {
			return validationError("Transfer received requires transfer_initiated to be true")
		}
		if transferReceived && !paymentReceived {
			return validationError("Transfer received requires payment_received to be true")
		}
	}

	if expectedPayoutDate != nil && expectedTransferDate != nil {
		if expectedTransferDate.Before(*expectedPayoutDate) {
			return validationError("Expected transfer date cannot be earlier than expected payout date")
		}
	}

	return nil
}

// CompanyTaxConfiguration checks that a withholding rate is present and in
// range (0-100) whenever withholdings are enabled.
func CompanyTaxConfiguration(requiresTaxWithholdings bool, taxWithholdingRate *decimal.Decimal) error {
	if !requiresTaxWithholdings {
		return nil
	}
	if taxWithholdingRate == nil {
		return validationError("Tax withholding rate is required when withholdings are enabled")
	}
	if taxWithholdingRate.LessThan(decimal.Zero) || taxWithholdingRate.GreaterThan(decimal.NewFromInt(100)) {
		return validationError("Tax withholding rate must be between 0 and 100")
	}
	return nil
}

// HexColor checks that a value is a 6-digit #RRGGBB color.
func HexColor(value string) error {
	if _, _, _, err := palette.ParseHexColor(value); err != nil {
		return validationError("Color values must use 6-digit hex format (for example, #4fa3ff).")
	}
	return nil
}

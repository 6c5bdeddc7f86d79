package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
)

type paymentRequest struct {
	CompanyID              string          `json:"company_id"`
	Total                  decimal.Decimal `json:"total"`
	PayoutType             string          `json:"payout_type"`
	ExpectedPayoutDate     *string         `json:"expected_payout_date"`
	ExpectedTransferDate   *string         `json:"expected_transfer_date"`
	TransferInitiated      bool            `json:"transfer_initiated"`
	PaymentReceived        bool            `json:"payment_received"`
	TransferReceived       bool            `json:"transfer_received"`
	TaxWithholdingsCovered bool            `json:"tax_withholdings_covered"`
}

// parseDate accepts the wire format for calendar dates (2006-01-02).
func parseDate(value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func (req *paymentRequest) toInput(w http.ResponseWriter) (db.PaymentInput, bool) {
	payoutDate, ok := parseDate(req.ExpectedPayoutDate)
	if !ok {
		writeError(w, http.StatusBadRequest, "Expected payout date must use YYYY-MM-DD format")
		return db.PaymentInput{}, false
	}
	transferDate, ok := parseDate(req.ExpectedTransferDate)
	if !ok {
		writeError(w, http.StatusBadRequest, "Expected transfer date must use YYYY-MM-DD format")
		return db.PaymentInput{}, false
	}

	return db.PaymentInput{
		CompanyID:              req.CompanyID,
		Total:                  req.Total,
		PayoutType:             req.PayoutType,
		ExpectedPayoutDate:     payoutDate,
		ExpectedTransferDate:   transferDate,
		TransferInitiated:      req.TransferInitiated,
		PaymentReceived:        req.PaymentReceived,
		TransferReceived:       req.TransferReceived,
		TaxWithholdingsCovered: req.TaxWithholdingsCovered,
	}, true
}

// ListPayments returns the user's payments, optionally filtered by
// company_id.
func ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := db.ListPayments(requestUser(r).ID, r.URL.Query().Get("company_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Payment{"payments": payments})
}

// CreatePayment records a payment.
func CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, ok := req.toInput(w)
	if !ok {
		return
	}

	payment, err := db.CreatePayment(requestUser(r).ID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]*models.Payment{"payment": payment})
}

// GetPayment returns one payment.
func GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := db.PaymentByID(requestUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.Payment{"payment": payment})
}

// UpdatePayment rewrites a payment.
func UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, ok := req.toInput(w)
	if !ok {
		return
	}

	payment, err := db.UpdatePayment(requestUser(r).ID, mux.Vars(r)["id"], input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*models.Payment{"payment": payment})
}

// DeletePayment removes a payment.
func DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := db.DeletePayment(requestUser(r).ID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Payment deleted"})
}

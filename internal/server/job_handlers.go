package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
)

type jobRequest struct {
	CompanyID       string           `json:"company_id"`
	Title           string           `json:"title"`
	PaymentType     string           `json:"payment_type"`
	NumberOfPayouts *int             `json:"number_of_payouts"`
	PayoutAmount    *decimal.Decimal `json:"payout_amount"`
	HourlyRate      *decimal.Decimal `json:"hourly_rate"`
}

func (req *jobRequest) toInput() db.JobInput {
	return db.JobInput{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		PaymentType:     req.PaymentType,
		NumberOfPayouts: req.NumberOfPayouts,
		PayoutAmount:    req.PayoutAmount,
		HourlyRate:      req.HourlyRate,
	}
}

// ListJobs returns the user's jobs, optionally filtered by company_id.
func ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := db.ListJobs(requestUser(r).ID, r.URL.Query().Get("company_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Job{"jobs": jobs})
}

// CreateJob creates a job under one of the user's companies.
func CreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := db.CreateJob(requestUser(r).ID, req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]*models.Job{"job": job})
}

// GetJob returns one job.
func GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := db.JobByID(requestUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.Job{"job": job})
}

// UpdateJob rewrites a job.
func UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := db.UpdateJob(requestUser(r).ID, mux.Vars(r)["id"], req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*models.Job{"job": job})
}

// DeleteJob removes a job.
func DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteJob(requestUser(r).ID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Job deleted"})
}

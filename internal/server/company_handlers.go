package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
)

type companyRequest struct {
	Name                    string           `json:"name"`
	RequiresTaxWithholdings bool             `json:"requires_tax_withholdings"`
	TaxWithholdingRate      *decimal.Decimal `json:"tax_withholding_rate"`
}

type companyDetailResponse struct {
	Company      *models.Company  `json:"company"`
	PaymentTotal decimal.Decimal  `json:"payment_total"`
	Hours        string           `json:"hours"`
	Jobs         []models.Job     `json:"jobs"`
	Payments     []models.Payment `json:"payments"`
}

// ListCompanies returns all of the user's companies.
func ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := db.ListCompanies(requestUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Company{"companies": companies})
}

// CreateCompany creates a company for the user.
func CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := db.CreateCompany(requestUser(r).ID, req.Name, req.RequiresTaxWithholdings, req.TaxWithholdingRate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]*models.Company{"company": company})
}

// GetCompany returns one company with its payment total, worked hours, and
// related jobs and payments.
func GetCompany(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	companyID := mux.Vars(r)["id"]

	company, err := db.CompanyByID(user.ID, companyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	paymentTotal, err := db.CompanyPaymentTotal(user.ID, companyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	hours, err := db.CompanyWorkedHours(user.ID, companyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jobs, err := db.ListJobs(user.ID, companyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payments, err := db.ListPayments(user.ID, companyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companyDetailResponse{
		Company:      company,
		PaymentTotal: paymentTotal,
		Hours:        hours,
		Jobs:         jobs,
		Payments:     payments,
	})
}

// UpdateCompany rewrites a company's name and tax configuration.
func UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := db.UpdateCompany(requestUser(r).ID, mux.Vars(r)["id"], req.Name,
		req.RequiresTaxWithholdings, req.TaxWithholdingRate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*models.Company{"company": company})
}

// DeleteCompany removes a company.
func DeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := db.DeleteCompany(requestUser(r).ID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Company deleted"})
}

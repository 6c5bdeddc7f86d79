package db

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/timeclock"
	"github.com/giglog/giglog/internal/validate"
)

// CreateCompany creates a company owned by the user.
func CreateCompany(userID, name string, requiresTaxWithholdings bool, taxWithholdingRate *decimal.Decimal) (*models.Company, error) {
	if name == "" {
		return nil, validate.Error("Company name is required")
	}
	if err := validate.CompanyTaxConfiguration(requiresTaxWithholdings, taxWithholdingRate); err != nil {
		return nil, err
	}

	company := models.Company{
		UserID:                  userID,
		Name:                    name,
		RequiresTaxWithholdings: requiresTaxWithholdings,
		TaxWithholdingRate:      taxWithholdingRate,
	}

	if err := DB.Create(&company).Error; err != nil {
		return nil, err
	}

	return &company, nil
}

// UpdateCompany updates a company's name and tax configuration.
func UpdateCompany(userID, companyID, name string, requiresTaxWithholdings bool, taxWithholdingRate *decimal.Decimal) (*models.Company, error) {
	if name == "" {
		return nil, validate.Error("Company name is required")
	}
	if err := validate.CompanyTaxConfiguration(requiresTaxWithholdings, taxWithholdingRate); err != nil {
		return nil, err
	}

	company, err := CompanyByID(userID, companyID)
	if err != nil {
		return nil, err
	}

	company.Name = name
	company.RequiresTaxWithholdings = requiresTaxWithholdings
	company.TaxWithholdingRate = taxWithholdingRate

	if err := DB.Save(company).Error; err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany removes a company and everything hanging off it.
func DeleteCompany(userID, companyID string) error {
	company, err := CompanyByID(userID, companyID)
	if err != nil {
		return err
	}
	return DB.Delete(company).Error
}

// CompanyByID retrieves a company scoped to its owner.
func CompanyByID(userID, companyID string) (*models.Company, error) {
	var company models.Company
	err := DB.Where("id = ? AND user_id = ?", companyID, userID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %w", ErrNotFound)
		}
		return nil, err
	}
	return &company, nil
}

// ListCompanies returns the user's companies, newest first.
func ListCompanies(userID string) ([]models.Company, error) {
	var companies []models.Company
	err := DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// CompanyPaymentTotal sums all payment totals recorded against a company.
func CompanyPaymentTotal(userID, companyID string) (decimal.Decimal, error) {
	var payments []models.Payment
	err := DB.Where("user_id = ? AND company_id = ?", userID, companyID).Find(&payments).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Total)
	}
	return total, nil
}

// CompanyWorkedHours totals completed session time across a company's jobs,
// formatted as "Xh Ym".
func CompanyWorkedHours(userID, companyID string) (string, error) {
	var sessions []models.WorkSession
	err := DB.Joins("JOIN jobs ON jobs.id = work_sessions.job_id").
		Where("jobs.company_id = ? AND jobs.user_id = ? AND work_sessions.user_id = ?", companyID, userID, userID).
		Find(&sessions).Error
	if err != nil {
		return "", err
	}

	var totalSeconds int64
	for i := range sessions {
		s := &sessions[i]
		if s.StartTime == nil || s.EndTime == nil {
			continue
		}
		totalSeconds += timeclock.ElapsedSeconds(s.Clock(), *s.EndTime)
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes), nil
}

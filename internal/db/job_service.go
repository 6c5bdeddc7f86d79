package db

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/validate"
)

// JobInput carries the writable fields for job create and update operations.
type JobInput struct {
	CompanyID       string
	Title           string
	PaymentType     string
	NumberOfPayouts *int
	PayoutAmount    *decimal.Decimal
	HourlyRate      *decimal.Decimal
}

func (in *JobInput) validate(userID string) error {
	if in.Title == "" {
		return validate.Error("Job title is required")
	}
	if err := validate.JobPaymentConfiguration(in.PaymentType, in.NumberOfPayouts, in.PayoutAmount, in.HourlyRate); err != nil {
		return err
	}
	// The target company must exist and belong to the same user.
	if _, err := CompanyByID(userID, in.CompanyID); err != nil {
		return err
	}
	return nil
}

// CreateJob creates a job under one of the user's companies.
func CreateJob(userID string, input JobInput) (*models.Job, error) {
	if err := input.validate(userID); err != nil {
		return nil, err
	}

	job := models.Job{
		UserID:          userID,
		CompanyID:       input.CompanyID,
		Title:           input.Title,
		PaymentType:     input.PaymentType,
		NumberOfPayouts: input.NumberOfPayouts,
		PayoutAmount:    input.PayoutAmount,
		HourlyRate:      input.HourlyRate,
	}

	if err := DB.Create(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// UpdateJob rewrites a job's fields.
func UpdateJob(userID, jobID string, input JobInput) (*models.Job, error) {
	if err := input.validate(userID); err != nil {
		return nil, err
	}

	job, err := JobByID(userID, jobID)
	if err != nil {
		return nil, err
	}

	job.CompanyID = input.CompanyID
	job.Title = input.Title
	job.PaymentType = input.PaymentType
	job.NumberOfPayouts = input.NumberOfPayouts
	job.PayoutAmount = input.PayoutAmount
	job.HourlyRate = input.HourlyRate

	if err := DB.Save(job).Error; err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob removes a job and its work sessions.
func DeleteJob(userID, jobID string) error {
	job, err := JobByID(userID, jobID)
	if err != nil {
		return err
	}
	return DB.Delete(job).Error
}

// JobByID retrieves a job scoped to its owner.
func JobByID(userID, jobID string) (*models.Job, error) {
	var job models.Job
	err := DB.Where("id = ? AND user_id = ?", jobID, userID).Preload("Company").First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %w", ErrNotFound)
		}
		return nil, err
	}
	return &job, nil
}

// ListJobs returns the user's jobs, newest first, optionally filtered to one
// company.
func ListJobs(userID, companyID string) ([]models.Job, error) {
	query := DB.Where("user_id = ?", userID)
	if companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Preload("Company").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Package api is the HTTP client for a remote giglog server. The timer TUI
// and CLI commands drive work sessions through it when the user is logged in
// to a server instead of the local database.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/giglog/giglog/internal/models"
)

// ErrNoActiveSession is returned by ActiveSession when the server reports
// that nothing is running. It is the normal idle answer, not a fault.
var ErrNoActiveSession = errors.New("no active work session")

// Client talks to a giglog server using a bearer token.
type Client struct {
	BaseURL string
	Token   string

	httpClient *http.Client
}

// NewClient builds a client for the given server URL.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string { return e.Message }

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var parsed errorBody
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Error != "" {
			message = parsed.Error
		}
		return &apiError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// IsNotFound reports whether an error is a server 404.
func IsNotFound(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// LogIn exchanges credentials for a bearer token and stores it on the
// client for subsequent calls.
func (c *Client) LogIn(email, password string) (string, error) {
	var resp authResponse
	err := c.do("POST", "/auth/log-in", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	c.Token = resp.Token
	return resp.Token, nil
}

// LogOut revokes the client's token server-side.
func (c *Client) LogOut() error {
	return c.do("POST", "/auth/log-out", nil, nil)
}

type workSessionEnvelope struct {
	WorkSession *models.WorkSession `json:"work_session"`
}

// ActiveSession fetches the current non-terminal session, or
// ErrNoActiveSession when none exists.
func (c *Client) ActiveSession() (*models.WorkSession, error) {
	var resp workSessionEnvelope
	err := c.do("GET", "/work-sessions/active", nil, &resp)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	return resp.WorkSession, nil
}

// StartSession creates a running session for a job.
func (c *Client) StartSession(jobID string) (*models.WorkSession, error) {
	var resp workSessionEnvelope
	err := c.do("POST", "/work-sessions/start", map[string]string{"job_id": jobID}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.WorkSession, nil
}

// PauseSession pauses a running session.
func (c *Client) PauseSession(sessionID string) (*models.WorkSession, error) {
	var resp workSessionEnvelope
	err := c.do("POST", "/work-sessions/"+sessionID+"/pause", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.WorkSession, nil
}

// ResumeSession resumes a paused session.
func (c *Client) ResumeSession(sessionID string) (*models.WorkSession, error) {
	var resp workSessionEnvelope
	err := c.do("POST", "/work-sessions/"+sessionID+"/resume", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.WorkSession, nil
}

// CompleteSession finalizes a session.
func (c *Client) CompleteSession(sessionID string) (*models.WorkSession, error) {
	var resp workSessionEnvelope
	err := c.do("POST", "/work-sessions/"+sessionID+"/complete", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.WorkSession, nil
}

// ListJobs fetches the user's jobs, optionally filtered to one company.
func (c *Client) ListJobs(companyID string) ([]models.Job, error) {
	path := "/jobs"
	if companyID != "" {
		path += "?company_id=" + companyID
	}
	var resp struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := c.do("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// CompanyParams is the payload for creating or updating a company.
type CompanyParams struct {
	Name                    string           `json:"name"`
	RequiresTaxWithholdings bool             `json:"requires_tax_withholdings"`
	TaxWithholdingRate      *decimal.Decimal `json:"tax_withholding_rate"`
}

// JobParams is the payload for creating or updating a job.
type JobParams struct {
	CompanyID       string           `json:"company_id"`
	Title           string           `json:"title"`
	PaymentType     string           `json:"payment_type"`
	NumberOfPayouts *int             `json:"number_of_payouts"`
	PayoutAmount    *decimal.Decimal `json:"payout_amount"`
	HourlyRate      *decimal.Decimal `json:"hourly_rate"`
}

// PaymentParams is the payload for recording a payment. Dates use the
// YYYY-MM-DD wire format.
type PaymentParams struct {
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

// CompanyDetail is a company with its aggregate payment total, worked hours,
// and related records.
type CompanyDetail struct {
	Company      *models.Company  `json:"company"`
	PaymentTotal decimal.Decimal  `json:"payment_total"`
	Hours        string           `json:"hours"`
	Jobs         []models.Job     `json:"jobs"`
	Payments     []models.Payment `json:"payments"`
}

// ListCompanies fetches the user's companies.
func (c *Client) ListCompanies() ([]models.Company, error) {
	var resp struct {
		Companies []models.Company `json:"companies"`
	}
	if err := c.do("GET", "/companies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Companies, nil
}

// CreateCompany creates a company.
func (c *Client) CreateCompany(params CompanyParams) (*models.Company, error) {
	var resp struct {
		Company *models.Company `json:"company"`
	}
	if err := c.do("POST", "/companies", params, &resp); err != nil {
		return nil, err
	}
	return resp.Company, nil
}

// CompanyDetail fetches one company with its aggregates.
func (c *Client) CompanyDetail(companyID string) (*CompanyDetail, error) {
	var resp CompanyDetail
	if err := c.do("GET", "/companies/"+companyID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateJob creates a job.
func (c *Client) CreateJob(params JobParams) (*models.Job, error) {
	var resp struct {
		Job *models.Job `json:"job"`
	}
	if err := c.do("POST", "/jobs", params, &resp); err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// ListPayments fetches the user's payments, optionally filtered to one
// company.
func (c *Client) ListPayments(companyID string) ([]models.Payment, error) {
	path := "/payments"
	if companyID != "" {
		path += "?company_id=" + companyID
	}
	var resp struct {
		Payments []models.Payment `json:"payments"`
	}
	if err := c.do("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payments, nil
}

// CreatePayment records a payment.
func (c *Client) CreatePayment(params PaymentParams) (*models.Payment, error) {
	var resp struct {
		Payment *models.Payment `json:"payment"`
	}
	if err := c.do("POST", "/payments", params, &resp); err != nil {
		return nil, err
	}
	return resp.Payment, nil
}

package commands

import (
	"errors"
	"time"

	"github.com/giglog/giglog/internal/api"
	"github.com/giglog/giglog/internal/config"
	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/tui"
)

// backend is everything the CLI needs from a session store. The local
// database and a remote server both satisfy it, so every command works the
// same way whether or not the user is logged in to a server.
type backend interface {
	tui.SessionGateway

	StartSession(jobID string) (*models.WorkSession, error)
	// ActiveSession returns nil, nil when nothing is running.
	ActiveSession() (*models.WorkSession, error)

	ListCompanies() ([]models.Company, error)
	CreateCompany(params api.CompanyParams) (*models.Company, error)
	CompanyDetail(companyID string) (*api.CompanyDetail, error)

	ListJobs(companyID string) ([]models.Job, error)
	CreateJob(params api.JobParams) (*models.Job, error)

	ListPayments(companyID string) ([]models.Payment, error)
	CreatePayment(params api.PaymentParams) (*models.Payment, error)
}

// newBackend picks the store from the client config: a remote server when
// logged in, the local database otherwise.
func newBackend() (backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cfg.Remote() {
		return &remoteBackend{client: api.NewClient(cfg.ServerURL, cfg.Token)}, nil
	}

	if err := db.Initialize(); err != nil {
		return nil, err
	}
	user, err := db.LocalUser()
	if err != nil {
		return nil, err
	}
	return &localBackend{userID: user.ID}, nil
}

// localBackend runs every operation against the local database as the
// implicit local user.
type localBackend struct {
	userID string
}

func (b *localBackend) StartSession(jobID string) (*models.WorkSession, error) {
	return db.StartSession(b.userID, jobID)
}

func (b *localBackend) PauseSession(sessionID string) (*models.WorkSession, error) {
	return db.PauseSession(b.userID, sessionID)
}

func (b *localBackend) ResumeSession(sessionID string) (*models.WorkSession, error) {
	return db.ResumeSession(b.userID, sessionID)
}

func (b *localBackend) CompleteSession(sessionID string) (*models.WorkSession, error) {
	return db.CompleteSession(b.userID, sessionID)
}

func (b *localBackend) ActiveSession() (*models.WorkSession, error) {
	return db.ActiveSession(b.userID)
}

func (b *localBackend) ListCompanies() ([]models.Company, error) {
	return db.ListCompanies(b.userID)
}

func (b *localBackend) CreateCompany(params api.CompanyParams) (*models.Company, error) {
	return db.CreateCompany(b.userID, params.Name, params.RequiresTaxWithholdings, params.TaxWithholdingRate)
}

func (b *localBackend) CompanyDetail(companyID string) (*api.CompanyDetail, error) {
	company, err := db.CompanyByID(b.userID, companyID)
	if err != nil {
		return nil, err
	}
	paymentTotal, err := db.CompanyPaymentTotal(b.userID, companyID)
	if err != nil {
		return nil, err
	}
	hours, err := db.CompanyWorkedHours(b.userID, companyID)
	if err != nil {
		return nil, err
	}
	jobs, err := db.ListJobs(b.userID, companyID)
	if err != nil {
		return nil, err
	}
	payments, err := db.ListPayments(b.userID, companyID)
	if err != nil {
		return nil, err
	}
	return &api.CompanyDetail{
		Company:      company,
		PaymentTotal: paymentTotal,
		Hours:        hours,
		Jobs:         jobs,
		Payments:     payments,
	}, nil
}

func (b *localBackend) ListJobs(companyID string) ([]models.Job, error) {
	return db.ListJobs(b.userID, companyID)
}

func (b *localBackend) CreateJob(params api.JobParams) (*models.Job, error) {
	return db.CreateJob(b.userID, db.JobInput{
		CompanyID:       params.CompanyID,
		Title:           params.Title,
		PaymentType:     params.PaymentType,
		NumberOfPayouts: params.NumberOfPayouts,
		PayoutAmount:    params.PayoutAmount,
		HourlyRate:      params.HourlyRate,
	})
}

func (b *localBackend) ListPayments(companyID string) ([]models.Payment, error) {
	return db.ListPayments(b.userID, companyID)
}

func (b *localBackend) CreatePayment(params api.PaymentParams) (*models.Payment, error) {
	return db.CreatePayment(b.userID, db.PaymentInput{
		CompanyID:              params.CompanyID,
		Total:                  params.Total,
		PayoutType:             params.PayoutType,
		ExpectedPayoutDate:     wireToTime(params.ExpectedPayoutDate),
		ExpectedTransferDate:   wireToTime(params.ExpectedTransferDate),
		TransferInitiated:      params.TransferInitiated,
		PaymentReceived:        params.PaymentReceived,
		TransferReceived:       params.TransferReceived,
		TaxWithholdingsCovered: params.TaxWithholdingsCovered,
	})
}

// wireToTime converts an already-validated YYYY-MM-DD wire date. The command
// layer only produces these through the date parser.
func wireToTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil
	}
	return &parsed
}

// remoteBackend forwards every operation to a giglog server.
type remoteBackend struct {
	client *api.Client
}

func (b *remoteBackend) StartSession(jobID string) (*models.WorkSession, error) {
	return b.client.StartSession(jobID)
}

func (b *remoteBackend) PauseSession(sessionID string) (*models.WorkSession, error) {
	return b.client.PauseSession(sessionID)
}

func (b *remoteBackend) ResumeSession(sessionID string) (*models.WorkSession, error) {
	return b.client.ResumeSession(sessionID)
}

func (b *remoteBackend) CompleteSession(sessionID string) (*models.WorkSession, error) {
	return b.client.CompleteSession(sessionID)
}

func (b *remoteBackend) ActiveSession() (*models.WorkSession, error) {
	session, err := b.client.ActiveSession()
	if errors.Is(err, api.ErrNoActiveSession) {
		return nil, nil
	}
	return session, err
}

func (b *remoteBackend) ListCompanies() ([]models.Company, error) {
	return b.client.ListCompanies()
}

func (b *remoteBackend) CreateCompany(params api.CompanyParams) (*models.Company, error) {
	return b.client.CreateCompany(params)
}

func (b *remoteBackend) CompanyDetail(companyID string) (*api.CompanyDetail, error) {
	return b.client.CompanyDetail(companyID)
}

func (b *remoteBackend) ListJobs(companyID string) ([]models.Job, error) {
	return b.client.ListJobs(companyID)
}

func (b *remoteBackend) CreateJob(params api.JobParams) (*models.Job, error) {
	return b.client.CreateJob(params)
}

func (b *remoteBackend) ListPayments(companyID string) ([]models.Payment, error) {
	return b.client.ListPayments(companyID)
}

func (b *remoteBackend) CreatePayment(params api.PaymentParams) (*models.Payment, error) {
	return b.client.CreatePayment(params)
}

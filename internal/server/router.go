// Package server exposes the giglog REST API: auth, companies, jobs,
// payments, work sessions, and appearance preferences. The work-session
// endpoints are the action gateway the timer clients drive.
package server

import (
	"github.com/gorilla/mux"
)

// NewRouter creates and configures a new router with all API endpoints
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", HealthCheck).Methods("GET")

	// Auth endpoints; sign-up and log-in are the only unauthenticated routes
	// besides the health check.
	r.HandleFunc("/auth/sign-up", SignUp).Methods("POST")
	r.HandleFunc("/auth/log-in", LogIn).Methods("POST")

	authed := r.NewRoute().Subrouter()
	authed.Use(RateLimit)
	authed.Use(Authenticate)

	authed.HandleFunc("/auth/log-out", LogOut).Methods("POST")
	authed.HandleFunc("/auth/me", CurrentUser).Methods("GET")

	// Company endpoints
	authed.HandleFunc("/companies", ListCompanies).Methods("GET")
	authed.HandleFunc("/companies", CreateCompany).Methods("POST")
	authed.HandleFunc("/companies/{id}", GetCompany).Methods("GET")
	authed.HandleFunc("/companies/{id}", UpdateCompany).Methods("PUT")
	authed.HandleFunc("/companies/{id}", DeleteCompany).Methods("DELETE")

	// Job endpoints
	authed.HandleFunc("/jobs", ListJobs).Methods("GET")
	authed.HandleFunc("/jobs", CreateJob).Methods("POST")
	authed.HandleFunc("/jobs/{id}", GetJob).Methods("GET")
	authed.HandleFunc("/jobs/{id}", UpdateJob).Methods("PUT")
	authed.HandleFunc("/jobs/{id}", DeleteJob).Methods("DELETE")

	// Payment endpoints
	authed.HandleFunc("/payments", ListPayments).Methods("GET")
	authed.HandleFunc("/payments", CreatePayment).Methods("POST")
	authed.HandleFunc("/payments/{id}", GetPayment).Methods("GET")
	authed.HandleFunc("/payments/{id}", UpdatePayment).Methods("PUT")
	authed.HandleFunc("/payments/{id}", DeletePayment).Methods("DELETE")

	// Work session endpoints (the timer gateway)
	authed.HandleFunc("/work-sessions", ListWorkSessions).Methods("GET")
	authed.HandleFunc("/work-sessions/active", GetActiveWorkSession).Methods("GET")
	authed.HandleFunc("/work-sessions/start", StartWorkSession).Methods("POST")
	authed.HandleFunc("/work-sessions/{id}/pause", PauseWorkSession).Methods("POST")
	authed.HandleFunc("/work-sessions/{id}/resume", ResumeWorkSession).Methods("POST")
	authed.HandleFunc("/work-sessions/{id}/complete", CompleteWorkSession).Methods("POST")

	// Appearance endpoints
	authed.HandleFunc("/appearance", GetAppearance).Methods("GET")
	authed.HandleFunc("/appearance/palettes", CreateCustomPalette).Methods("POST")
	authed.HandleFunc("/appearance/active-palette", SetActivePalette).Methods("PUT")

	return r
}

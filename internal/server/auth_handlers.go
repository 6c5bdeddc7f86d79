package server

import (
	"net/http"
	"strings"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
)

type signUpRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HealthCheck reports service liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SignUp registers a new account and returns a bearer token for it.
func SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := db.CreateUser(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := db.IssueToken(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token.Token, User: user})
}

// LogIn authenticates credentials and returns a fresh bearer token.
func LogIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := db.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := db.IssueToken(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token.Token, User: user})
}

// LogOut revokes the presented bearer token.
func LogOut(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := db.RevokeToken(token); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

// CurrentUser returns the authenticated user's profile.
func CurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]*models.User{"user": requestUser(r)})
}

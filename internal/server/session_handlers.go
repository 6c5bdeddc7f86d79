package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
)

type startWorkSessionRequest struct {
	JobID string `json:"job_id"`
}

type workSessionResponse struct {
	WorkSession *models.WorkSession `json:"work_session"`
}

// StartWorkSession creates a running session for a job. Fails with 400 when
// an active session already exists and 404 when the job is not the user's.
func StartWorkSession(w http.ResponseWriter, r *http.Request) {
	var req startWorkSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := db.StartSession(requestUser(r).ID, req.JobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, workSessionResponse{WorkSession: session})
}

// PauseWorkSession pauses a running session.
func PauseWorkSession(w http.ResponseWriter, r *http.Request) {
	session, err := db.PauseSession(requestUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workSessionResponse{WorkSession: session})
}

// ResumeWorkSession resumes a paused session, folding the pause interval
// into the accumulated paused duration.
func ResumeWorkSession(w http.ResponseWriter, r *http.Request) {
	session, err := db.ResumeSession(requestUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workSessionResponse{WorkSession: session})
}

// CompleteWorkSession finalizes a session; the session becomes terminal.
func CompleteWorkSession(w http.ResponseWriter, r *http.Request) {
	session, err := db.CompleteSession(requestUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workSessionResponse{WorkSession: session})
}

// GetActiveWorkSession returns the user's current non-terminal session. A
// 404 here is the normal "nothing running" answer, not a fault.
func GetActiveWorkSession(w http.ResponseWriter, r *http.Request) {
	session, err := db.ActiveSession(requestUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "No active work session found")
		return
	}
	writeJSON(w, http.StatusOK, workSessionResponse{WorkSession: session})
}

// ListWorkSessions returns the user's sessions, optionally filtered by
// job_id.
func ListWorkSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := db.ListSessions(requestUser(r).ID, r.URL.Query().Get("job_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.WorkSession{"work_sessions": sessions})
}

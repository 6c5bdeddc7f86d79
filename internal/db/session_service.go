package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/validate"
)

// StartSession creates a new running work session for a job. Only one active
// (uncompleted) session may exist per user at a time; the caller must pause
// or complete it before starting another.
func StartSession(userID, jobID string) (*models.WorkSession, error) {
	var job models.Job
	if err := DB.Where("id = ? AND user_id = ?", jobID, userID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %w", ErrNotFound)
		}
		return nil, err
	}

	active, err := ActiveSession(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, validate.Error("An active work session already exists")
	}

	now := time.Now().UTC()
	session := models.WorkSession{
		UserID:    userID,
		JobID:     jobID,
		StartTime: &now,
		IsRunning: true,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	DB.Preload("Job").First(&session, "id = ?", session.ID)

	return &session, nil
}

// PauseSession transitions a running session to paused, stamping PausedAt.
func PauseSession(userID, sessionID string) (*models.WorkSession, error) {
	session, err := sessionForUser(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.EndTime != nil {
		return nil, validate.Error("Cannot pause a completed work session")
	}
	if !session.IsRunning {
		return nil, validate.Error("Work session is not currently running")
	}

	now := time.Now().UTC()
	session.IsRunning = false
	session.PausedAt = &now

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// ResumeSession transitions a paused session back to running, folding the
// finished pause interval into AccumulatedPausedDuration.
func ResumeSession(userID, sessionID string) (*models.WorkSession, error) {
	session, err := sessionForUser(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.EndTime != nil {
		return nil, validate.Error("Cannot resume a completed work session")
	}
	if session.IsRunning {
		return nil, validate.Error("Work session is already running")
	}
	if session.PausedAt == nil {
		return nil, validate.Error("Work session is not currently paused")
	}

	pauseSeconds := int64(time.Now().UTC().Sub(*session.PausedAt) / time.Second)
	if pauseSeconds < 0 {
		pauseSeconds = 0
	}

	session.AccumulatedPausedDuration += pauseSeconds
	session.PausedAt = nil
	session.IsRunning = true

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// CompleteSession finalizes a session. A session paused at completion time
// has its trailing pause interval folded in before EndTime is stamped.
// Completed sessions are terminal.
func CompleteSession(userID, sessionID string) (*models.WorkSession, error) {
	session, err := sessionForUser(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.EndTime != nil {
		return nil, validate.Error("Work session is already completed")
	}

	now := time.Now().UTC()
	if session.PausedAt != nil {
		pauseSeconds := int64(now.Sub(*session.PausedAt) / time.Second)
		if pauseSeconds > 0 {
			session.AccumulatedPausedDuration += pauseSeconds
		}
	}

	session.EndTime = &now
	session.IsRunning = false
	session.PausedAt = nil

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// ActiveSession returns the user's current non-terminal session, or nil when
// none exists. Having no active session is not an error.
func ActiveSession(userID string) (*models.WorkSession, error) {
	var session models.WorkSession
	err := DB.Where("user_id = ? AND end_time IS NULL", userID).
		Preload("Job").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// ListSessions returns the user's sessions, newest first, optionally filtered
// to one job.
func ListSessions(userID, jobID string) ([]models.WorkSession, error) {
	query := DB.Where("user_id = ?", userID)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}

	var sessions []models.WorkSession
	err := query.Order("updated_at DESC, id DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func sessionForUser(userID, sessionID string) (*models.WorkSession, error) {
	var session models.WorkSession
	err := DB.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("work session %w", ErrNotFound)
		}
		return nil, err
	}
	return &session, nil
}

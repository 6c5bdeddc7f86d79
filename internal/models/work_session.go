package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giglog/giglog/internal/timeclock"
)

// WorkSession represents a time-tracked interval of billable work on a job.
//
// Lifecycle: start sets StartTime and IsRunning; pause sets PausedAt and
// clears IsRunning; resume folds the finished pause interval into
// AccumulatedPausedDuration; complete sets EndTime, after which the session
// is terminal and no further transitions are allowed.
type WorkSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"not null;index" json:"user_id"`
	JobID  string `gorm:"not null;index" json:"job_id"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	IsRunning bool       `gorm:"default:false" json:"is_running"`

	// Total seconds spent paused, subtracted from wall-clock elapsed time.
	// Monotonically non-decreasing over the session's lifetime.
	AccumulatedPausedDuration int64      `gorm:"default:0" json:"accumulated_paused_duration"`
	PausedAt                  *time.Time `json:"paused_at"`

	// Whether this session's time has been reported/submitted.
	TimeReported bool `gorm:"default:false" json:"time_reported"`

	// Relationships
	Job Job `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (ws *WorkSession) BeforeCreate(tx *gorm.DB) error {
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	return nil
}

// Clock converts the session into the snapshot shape the timeclock package
// computes over.
func (ws *WorkSession) Clock() timeclock.Snapshot {
	return timeclock.Snapshot{
		StartTime:                ws.StartTime,
		EndTime:                  ws.EndTime,
		IsRunning:                ws.IsRunning,
		AccumulatedPausedSeconds: ws.AccumulatedPausedDuration,
		PausedAt:                 ws.PausedAt,
	}
}

// ElapsedSeconds returns productive seconds worked as of now.
func (ws *WorkSession) ElapsedSeconds(now time.Time) int64 {
	return timeclock.ElapsedSeconds(ws.Clock(), now)
}

// Status derives the display status for this session viewed from no
// particular job context.
func (ws *WorkSession) Status() timeclock.Status {
	if ws == nil {
		return timeclock.StatusIdle
	}
	snap := ws.Clock()
	return timeclock.DeriveStatus(&snap, ws.JobID, "")
}

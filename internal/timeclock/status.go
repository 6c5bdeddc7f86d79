package timeclock

// Status is the presentation state derived from a session record. It carries
// no hidden state; every view re-derives it when the record changes.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// DeriveStatus maps a session snapshot to its display status. A nil snapshot
// means no session exists. When viewedJobID is non-empty and the session
// belongs to a different job, the viewed context is idle even though a session
// exists elsewhere.
//
// Every view goes through this one function so the timer and the job pages
// cannot drift apart.
func DeriveStatus(s *Snapshot, sessionJobID, viewedJobID string) Status {
	if s == nil {
		return StatusIdle
	}
	if viewedJobID != "" && sessionJobID != viewedJobID {
		return StatusIdle
	}
	if s.EndTime != nil {
		return StatusCompleted
	}
	if s.IsRunning {
		return StatusRunning
	}
	return StatusPaused
}

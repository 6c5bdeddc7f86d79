package timeclock

import (
	"fmt"
	"time"
)

// Snapshot is the subset of a work session the clock math needs. Timestamps
// are converted once at the boundary; everything downstream works on this.
type Snapshot struct {
	StartTime                *time.Time
	EndTime                  *time.Time
	IsRunning                bool
	AccumulatedPausedSeconds int64
	PausedAt                 *time.Time
}

// ElapsedSeconds returns the productive seconds worked for a session,
// excluding paused intervals, never negative.
//
// Wall-clock differences are floored to whole seconds before the paused
// duration is subtracted, so a completed session reports the same value the
// live clock last showed.
func ElapsedSeconds(s Snapshot, now time.Time) int64 {
	if s.StartTime == nil {
		return 0
	}

	var until time.Time
	switch {
	case s.EndTime != nil:
		until = *s.EndTime
	case !s.IsRunning && s.PausedAt != nil:
		until = *s.PausedAt
	default:
		until = now
	}

	raw := int64(until.Sub(*s.StartTime) / time.Second)
	elapsed := raw - s.AccumulatedPausedSeconds
	if elapsed < 0 {
		// Clock skew between client and server can briefly push this
		// negative; it self-corrects within seconds.
		return 0
	}
	return elapsed
}

// FormatSeconds renders total seconds as HH:MM:SS. Every field is zero-padded
// to at least two digits and the hour field grows as needed (100 hours is
// "100:00:00").
func FormatSeconds(total int64) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

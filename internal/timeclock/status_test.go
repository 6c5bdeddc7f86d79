package timeclock

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	running := &Snapshot{StartTime: ts(start), IsRunning: true}
	paused := &Snapshot{StartTime: ts(start), IsRunning: false, PausedAt: ts(start.Add(time.Minute))}
	completed := &Snapshot{StartTime: ts(start), EndTime: ts(end)}

	tests := []struct {
		name         string
		snapshot     *Snapshot
		sessionJobID string
		viewedJobID  string
		want         Status
	}{
		{"no session", nil, "", "", StatusIdle},
		{"running", running, "job-1", "", StatusRunning},
		{"running viewed from its job", running, "job-1", "job-1", StatusRunning},
		{"running viewed from another job", running, "job-1", "job-2", StatusIdle},
		{"paused", paused, "job-1", "", StatusPaused},
		{"completed", completed, "job-1", "", StatusCompleted},
		{"completed wins over running flag", &Snapshot{StartTime: ts(start), EndTime: ts(end), IsRunning: false}, "job-1", "job-1", StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.snapshot, tt.sessionJobID, tt.viewedJobID); got != tt.want {
				t.Errorf("DeriveStatus = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusRunning, "running"},
		{StatusPaused, "paused"},
		{StatusCompleted, "completed"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

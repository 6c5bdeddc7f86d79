package timeclock

import (
	"testing"
	"time"
)

func ts(t time.Time) *time.Time { return &t }

func TestElapsedSecondsNeverStarted(t *testing.T) {
	got := ElapsedSeconds(Snapshot{}, time.Now())
	if got != 0 {
		t.Errorf("expected 0 for a session that never started, got %d", got)
	}
}

func TestElapsedSecondsRunning(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		paused int64
		want   int64
	}{
		{"just started", start.Add(500 * time.Millisecond), 0, 0},
		{"one minute in", start.Add(time.Minute), 0, 60},
		{"floors sub-second remainder", start.Add(90*time.Second + 900*time.Millisecond), 0, 90},
		{"subtracts paused seconds", start.Add(10 * time.Minute), 120, 480},
		{"pause exceeds wall clock", start.Add(30 * time.Second), 3600, 0},
		{"clock skew clamps to zero", start.Add(-5 * time.Second), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{
				StartTime:                ts(start),
				IsRunning:                true,
				AccumulatedPausedSeconds: tt.paused,
			}
			if got := ElapsedSeconds(s, tt.now); got != tt.want {
				t.Errorf("ElapsedSeconds = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestElapsedSecondsPausedIgnoresNow(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pausedAt := start.Add(100 * time.Second)

	s := Snapshot{
		StartTime: ts(start),
		IsRunning: false,
		PausedAt:  ts(pausedAt),
	}

	// The paused value must freeze regardless of how far the wall clock moves.
	for _, now := range []time.Time{pausedAt, pausedAt.Add(time.Hour), pausedAt.Add(48 * time.Hour)} {
		if got := ElapsedSeconds(s, now); got != 100 {
			t.Errorf("ElapsedSeconds at now=%v = %d, want 100", now, got)
		}
	}
}

func TestElapsedSecondsCompletedIgnoresNow(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 30*time.Minute)

	s := Snapshot{
		StartTime:                ts(start),
		EndTime:                  ts(end),
		AccumulatedPausedSeconds: 600,
	}

	want := int64(2*3600+30*60) - 600
	for _, now := range []time.Time{end, end.Add(time.Hour), end.Add(365 * 24 * time.Hour)} {
		if got := ElapsedSeconds(s, now); got != want {
			t.Errorf("ElapsedSeconds at now=%v = %d, want %d", now, got, want)
		}
	}
}

func TestElapsedSecondsIsPure(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := start.Add(42 * time.Second)
	s := Snapshot{StartTime: ts(start), IsRunning: true}

	first := ElapsedSeconds(s, now)
	second := ElapsedSeconds(s, now)
	if first != second {
		t.Errorf("identical inputs produced %d then %d", first, second)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		total int64
		want  string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.total); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

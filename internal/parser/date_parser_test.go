package parser

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		input string
		want  string // wire format
	}{
		{"2026-08-15", "2026-08-15"},
		{"15/08/2026", "2026-08-15"},
		{"1/2/2026", "2026-02-01"},
		{" 2026-08-15 ", "2026-08-15"},
	}

	for _, tt := range tests {
		date, err := ParseDate(tt.input)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.input, err)
			continue
		}
		if got := *WireDate(date); got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseDateEmpty(t *testing.T) {
	date, err := ParseDate("")
	if err != nil || date != nil {
		t.Errorf("ParseDate(\"\") = %v, %v, want nil, nil", date, err)
	}
	if WireDate(nil) != nil {
		t.Error("WireDate(nil) should be nil")
	}
}

func TestParseDateRelative(t *testing.T) {
	today := time.Now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", todayStart},
		{"yesterday", todayStart.AddDate(0, 0, -1)},
		{"3 days ago", todayStart.AddDate(0, 0, -3)},
		{"1 day ago", todayStart.AddDate(0, 0, -1)},
		{"2 weeks ago", todayStart.AddDate(0, 0, -14)},
	}

	for _, tt := range tests {
		date, err := ParseDate(tt.input)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.input, err)
			continue
		}
		if !date.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, date, tt.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	invalid := []string{
		"not a date",
		"31/02/2026",
		"15/13/2026",
		"15/08/1999",
		"0 days ago",
		"3 hours ago",
	}

	for _, input := range invalid {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) accepted invalid input", input)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "-" {
		t.Errorf("FormatDate(nil) = %q, want \"-\"", got)
	}

	date := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.Local)
	if got := FormatDate(&date); got != "15/08/2026" {
		t.Errorf("FormatDate = %q, want 15/08/2026", got)
	}
}

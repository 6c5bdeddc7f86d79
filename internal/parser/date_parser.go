package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// wireDateLayout is the date format the API exchanges.
const wireDateLayout = "2006-01-02"

// ParseDate parses the date formats accepted on the command line for payment
// and payout dates.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-08-15")
// - dd/mm/yyyy (e.g., "15/08/2026")
// - "today", "yesterday"
// - X days/weeks ago (e.g., "3 days ago", "2 weeks ago")
func ParseDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "today":
		date := startOfDay(time.Now())
		return &date, nil
	case "yesterday":
		date := startOfDay(time.Now()).AddDate(0, 0, -1)
		return &date, nil
	}

	if date, err := time.ParseInLocation(wireDateLayout, input, time.Local); err == nil {
		return &date, nil
	}

	if date, err := parseSlashDate(input); err == nil {
		return date, nil
	}

	if date, err := parseRelativeDate(input); err == nil {
		return date, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, or X days ago")
}

// WireDate renders a parsed date in the format the API expects, or nil when
// the date is unset.
func WireDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(wireDateLayout)
	return &formatted
}

// FormatDate formats a date for display in command output.
func FormatDate(date *time.Time) string {
	if date == nil {
		return "-"
	}
	return date.Format("02/01/2006")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseSlashDate parses dd/mm/yyyy.
func parseSlashDate(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Normalization moves impossible dates like 31/02 into the next month.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &date, nil
}

// parseRelativeDate parses "X days ago" and "X weeks ago".
func parseRelativeDate(input string) (*time.Time, error) {
	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)\s+ago$`)
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}
	if amount < 1 || amount > 365 {
		return nil, fmt.Errorf("amount must be between 1 and 365")
	}

	today := startOfDay(time.Now())
	switch matches[2] {
	case "day", "days":
		date := today.AddDate(0, 0, -amount)
		return &date, nil
	case "week", "weeks":
		date := today.AddDate(0, 0, -amount*7)
		return &date, nil
	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

package util

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted on every API surface.
const DateLayout = "2006-01-02"

// MonthLayout is the calendar month format used by the moon calendar.
const MonthLayout = "2006-01"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a YYYY-MM-DD string into midnight of that date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
}

// ParseMonth parses a YYYY-MM string into the first day of that month in loc.
func ParseMonth(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(MonthLayout, strings.TrimSpace(value), loc)
}

// LoadLocation resolves an IANA zone name, treating empty as UTC.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

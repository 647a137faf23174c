// Package datex parses and formats the two date shapes found in stored
// records: ISO dates from date pickers ("2024-01-15") and day-first dates
// from localized display and older mileage readings ("15/01/2024" or
// "15/1/2024").
package datex

import (
	"strings"
	"time"
)

const (
	// ISOLayout is the shape produced by date inputs and used for storage.
	ISOLayout = "2006-01-02"
	// DisplayLayout is the day-first shape used for display.
	DisplayLayout = "02/01/2006"

	dayFirstLayout = "2/1/2006"
)

// Parse converts s to a UTC midnight time. A "/" selects the day-first
// shape; anything else is read as ISO, optionally with a time part.
// The second result is false for empty or malformed input.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		t, err := time.Parse(dayFirstLayout, s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if t, err := time.Parse(ISOLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Valid reports whether Parse accepts s.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Display renders s in the day-first shape, or returns s unchanged when it
// cannot be parsed.
func Display(s string) string {
	t, ok := Parse(s)
	if !ok {
		return s
	}
	return t.Format(DisplayLayout)
}

// ISO formats t as a storage date.
func ISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// DaysUntil returns ceil((due - now) / 24h).
func DaysUntil(due, now time.Time) int {
	d := due.Sub(now)
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

package deadline

import (
	"fmt"
	"math"
)

// Status is the classification of a deadline.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusOverdue Status = "overdue"
)

func (s Status) severity() int {
	switch s {
	case StatusOverdue:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// Worst returns the most severe of the given statuses, StatusOK for none.
func Worst(statuses ...Status) Status {
	worst := StatusOK
	for _, s := range statuses {
		if s.severity() > worst.severity() {
			worst = s
		}
	}
	return worst
}

// Thresholds holds the "due soon" windows.
type Thresholds struct {
	// WarningDays: a date deadline within this many days is a warning.
	WarningDays int
	// WarningKm: a reminder mileage within this many km is a warning.
	WarningKm int
	// IntervalWarningRatio: an interval is a warning once this share of its
	// mileage has been driven.
	IntervalWarningRatio float64
}

// DefaultThresholds returns 30 days, 2000 km and 80%.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WarningDays:          30,
		WarningKm:            2000,
		IntervalWarningRatio: 0.8,
	}
}

// Validate rejects windows that would disable or invert warnings: negative
// day or km windows and a ratio outside [0, 1].
func (th Thresholds) Validate() error {
	switch {
	case th.WarningDays < 0:
		return fmt.Errorf("warning days must not be negative, got %d", th.WarningDays)
	case th.WarningKm < 0:
		return fmt.Errorf("warning km must not be negative, got %d", th.WarningKm)
	case math.IsNaN(th.IntervalWarningRatio) || th.IntervalWarningRatio < 0 || th.IntervalWarningRatio > 1:
		return fmt.Errorf("interval warning ratio must be within [0, 1], got %v", th.IntervalWarningRatio)
	}
	return nil
}

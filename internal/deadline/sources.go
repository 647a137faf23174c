package deadline

import (
	"time"

	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// Result is the evaluation of one tracked item.
// Key is the reminder id or the maintenance type.
type Result struct {
	Key   string
	Label string
	Evaluation
}

// Interval is a fixed maintenance schedule for one category.
// Km == 0 means the category has no mileage limit.
type Interval struct {
	Type   models.MaintenanceType
	Months int
	Km     int
}

// DefaultIntervals are the schedules tracked on every vehicle.
var DefaultIntervals = []Interval{
	{Type: models.MaintenanceTagliando, Months: 12, Km: 15000},
	{Type: models.MaintenanceRevisione, Months: 24},
	{Type: models.MaintenanceGomme, Months: 6, Km: 40000},
}

// FromReminder builds the deadline stored on a reminder.
func FromReminder(r models.Reminder, th Thresholds) Deadline {
	var d Deadline
	if due, ok := datex.Parse(r.DueDate); ok {
		d.DueDate, d.HasDate = due, true
	}
	if r.DueKm != nil {
		d.DueKm, d.HasKm = *r.DueKm, true
		d.KmWindow = float64(th.WarningKm)
	}
	return d
}

// FromInterval projects iv forward from the last entry of its category.
// The km axis turns to warning once IntervalWarningRatio of iv.Km has been
// driven since the last entry.
func FromInterval(iv Interval, last models.MaintenanceEntry, th Thresholds) Deadline {
	var d Deadline
	if lastDate, ok := datex.Parse(last.Date); ok {
		d.DueDate, d.HasDate = lastDate.AddDate(0, iv.Months, 0), true
	}
	if iv.Km > 0 {
		km := float64(iv.Km)
		d.DueKm, d.HasKm = last.Km+iv.Km, true
		d.KmWindow = km - th.IntervalWarningRatio*km
		d.BaseKm, d.HasBase = last.Km, true
	}
	return d
}

// EvaluateReminder evaluates one reminder.
func EvaluateReminder(r models.Reminder, currentKm int, now time.Time, th Thresholds) Result {
	return Result{
		Key:        r.ID,
		Label:      r.Label,
		Evaluation: FromReminder(r, th).Evaluate(currentKm, now, th.WarningDays),
	}
}

// EvaluateReminders evaluates every reminder, keeping their order.
func EvaluateReminders(rs []models.Reminder, currentKm int, now time.Time, th Thresholds) []Result {
	out := make([]Result, 0, len(rs))
	for _, r := range rs {
		out = append(out, EvaluateReminder(r, currentKm, now, th))
	}
	return out
}

// EvaluateInterval evaluates iv against the vehicle's maintenance log.
// A category that was never recorded is a warning.
func EvaluateInterval(iv Interval, v models.Vehicle, now time.Time, th Thresholds) Result {
	res := Result{Key: string(iv.Type), Label: iv.Type.Label()}

	last, ok := v.LastOfType(iv.Type)
	if !ok {
		res.Status = StatusWarning
		res.Message = NeverRecordedMessage
		return res
	}

	res.Evaluation = FromInterval(iv, last, th).Evaluate(v.CurrentKm, now, th.WarningDays)
	return res
}

// EvaluateIntervals evaluates the given intervals (DefaultIntervals when
// none are given) for v.
func EvaluateIntervals(v models.Vehicle, now time.Time, th Thresholds, intervals ...Interval) []Result {
	if len(intervals) == 0 {
		intervals = DefaultIntervals
	}
	out := make([]Result, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, EvaluateInterval(iv, v, now, th))
	}
	return out
}

// Overall returns the worst status among results.
func Overall(results []Result) Status {
	worst := StatusOK
	for _, r := range results {
		worst = Worst(worst, r.Status)
	}
	return worst
}

package deadline

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/locale"
)

// Messages shown when there is nothing numeric to report.
const (
	NeverRecordedMessage = "Mai registrato — da programmare"
	NoDeadlineMessage    = "Nessuna scadenza"
)

// Deadline is a due date and/or a due mileage.
//
// KmWindow is the distance before DueKm from which the km axis is a warning.
// When HasBase is set the deadline was projected from a reading at BaseKm,
// and an overdue km axis reports the distance driven since that reading
// rather than the distance past DueKm.
type Deadline struct {
	DueDate time.Time
	HasDate bool

	DueKm    int
	HasKm    bool
	KmWindow float64

	BaseKm  int
	HasBase bool
}

// Evaluation is the outcome of evaluating a Deadline.
// DaysUntil and KmLeft are nil when the axis is absent.
type Evaluation struct {
	Status    Status
	Message   string
	DaysUntil *int
	KmLeft    *int
}

type axisResult struct {
	status Status
	reason string
}

// Evaluate classifies d for the given mileage and instant.
//
//	date: daysUntil <= 0 overdue, <= warningDays warning, else ok
//	km:   kmLeft <= 0 overdue, <= KmWindow warning, else ok
//
// The combined status is the worse of the present axes; with no axis the
// deadline is ok.
func (d Deadline) Evaluate(currentKm int, now time.Time, warningDays int) Evaluation {
	var (
		ev    Evaluation
		axes  []axisResult
		okMsg []string
	)

	if d.HasDate {
		days := datex.DaysUntil(d.DueDate, now)
		ev.DaysUntil = &days

		switch {
		case days <= 0:
			axes = append(axes, axisResult{StatusOverdue, "scaduto da " + countDays(-days)})
		case days <= warningDays:
			axes = append(axes, axisResult{StatusWarning, "tra " + countDays(days)})
		default:
			axes = append(axes, axisResult{StatusOK, ""})
		}
		okMsg = append(okMsg, fmt.Sprintf("%s (tra %s)", d.DueDate.Format(datex.DisplayLayout), monthsAndDays(days)))
	}

	if d.HasKm {
		left := d.DueKm - currentKm
		ev.KmLeft = &left

		switch {
		case left <= 0:
			axes = append(axes, axisResult{StatusOverdue, d.kmOverdueReason(currentKm, left)})
		case float64(left) <= d.KmWindow:
			axes = append(axes, axisResult{StatusWarning, locale.Int(left) + " km rimanenti"})
		default:
			axes = append(axes, axisResult{StatusOK, ""})
		}
		okMsg = append(okMsg, "tra "+locale.Int(left)+" km")
	}

	if len(axes) == 0 {
		ev.Status = StatusOK
		ev.Message = NoDeadlineMessage
		return ev
	}

	for _, a := range axes {
		ev.Status = Worst(ev.Status, a.status)
	}

	var reasons []string
	for _, a := range axes {
		if a.status == ev.Status {
			reasons = append(reasons, a.reason)
		}
	}

	switch ev.Status {
	case StatusOverdue:
		ev.Message = "⚠️ " + strings.Join(reasons, " e ")
	case StatusWarning:
		ev.Message = "In scadenza: " + strings.Join(reasons, ", ")
	default:
		ev.Message = "Prossimo: " + strings.Join(okMsg, " o ")
	}
	return ev
}

func (d Deadline) kmOverdueReason(currentKm, left int) string {
	if d.HasBase {
		return "superati " + locale.Int(currentKm-d.BaseKm) + " km"
	}
	return "superata di " + locale.Int(-left) + " km"
}

func countDays(n int) string {
	if n == 1 {
		return "1 giorno"
	}
	return fmt.Sprintf("%d giorni", n)
}

// monthsAndDays renders a day count as 30-day months plus remaining days.
func monthsAndDays(days int) string {
	months, rest := days/30, days%30
	if months == 0 {
		return countDays(rest)
	}

	m := "1 mese"
	if months > 1 {
		m = fmt.Sprintf("%d mesi", months)
	}
	if rest == 0 {
		return m
	}
	return m + " e " + countDays(rest)
}

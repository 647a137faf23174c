package services

import (
	"time"

	"github.com/dmitrijs2005/garagebook/internal/deadline"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// StatusReport is the deadline view of one vehicle.
type StatusReport struct {
	Vehicle   models.Vehicle
	Intervals []deadline.Result
	Reminders []deadline.Result
	Overall   deadline.Status
}

// Dashboard is the summary card of one vehicle.
type Dashboard struct {
	Label            string
	Year             int
	Plate            string
	CurrentKm        int
	LastByType       map[models.MaintenanceType]models.MaintenanceEntry
	MaintenanceCount int
	MileageCount     int
}

// Last returns the most recent entry of type t, if any.
func (d Dashboard) Last(t models.MaintenanceType) (models.MaintenanceEntry, bool) {
	e, ok := d.LastByType[t]
	return e, ok
}

func (s *garageService) Status(now time.Time) (StatusReport, error) {
	v, err := s.Active()
	if err != nil {
		return StatusReport{}, err
	}
	return s.statusOf(v, now), nil
}

func (s *garageService) statusOf(v models.Vehicle, now time.Time) StatusReport {
	intervals := deadline.EvaluateIntervals(v, now, s.thresholds)
	reminders := deadline.EvaluateReminders(v.Reminders, v.CurrentKm, now, s.thresholds)

	return StatusReport{
		Vehicle:   v,
		Intervals: intervals,
		Reminders: reminders,
		Overall:   deadline.Worst(deadline.Overall(intervals), deadline.Overall(reminders)),
	}
}

func (s *garageService) Dashboard() (Dashboard, error) {
	v, err := s.Active()
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Label:            v.Label(),
		Year:             v.Year,
		Plate:            v.Plate,
		CurrentKm:        v.CurrentKm,
		LastByType:       make(map[models.MaintenanceType]models.MaintenanceEntry),
		MaintenanceCount: len(v.MaintenanceLog),
		MileageCount:     len(v.MileageLog),
	}
	for _, iv := range deadline.DefaultIntervals {
		if e, ok := v.LastOfType(iv.Type); ok {
			d.LastByType[iv.Type] = e
		}
	}
	return d, nil
}

package models

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/garagebook/internal/datex"
)

// VehicleType is the kind of vehicle.
type VehicleType string

const (
	VehicleAuto VehicleType = "auto"
	VehicleMoto VehicleType = "moto"
)

// ParseVehicleType maps s to a known type; anything else is "auto".
func ParseVehicleType(s string) VehicleType {
	if VehicleType(s) == VehicleMoto {
		return VehicleMoto
	}
	return VehicleAuto
}

// DefaultName is the name given to a new vehicle of type t.
func (t VehicleType) DefaultName() string {
	if t == VehicleMoto {
		return "La mia moto"
	}
	return "La mia auto"
}

// Vehicle is one tracked car or motorcycle together with all its records.
// Logs are ordered newest first.
type Vehicle struct {
	ID             string             `json:"id"`
	VehicleType    VehicleType        `json:"vehicleType"`
	Name           string             `json:"name"`
	Brand          string             `json:"brand"`
	Model          string             `json:"model"`
	Year           int                `json:"year"`
	Plate          string             `json:"plate"`
	CurrentKm      int                `json:"currentKm"`
	MileageLog     []MileageEntry     `json:"mileageLog"`
	MaintenanceLog []MaintenanceEntry `json:"maintenanceLog"`
	Reminders      []Reminder         `json:"reminders"`
}

// NewVehicle returns an empty vehicle of type t built at time now.
func NewVehicle(id string, t VehicleType, now time.Time) Vehicle {
	return Vehicle{
		ID:             id,
		VehicleType:    t,
		Name:           t.DefaultName(),
		Year:           now.Year(),
		MileageLog:     []MileageEntry{},
		MaintenanceLog: []MaintenanceEntry{},
		Reminders:      []Reminder{},
	}
}

// Label is "brand model" when both are known, the vehicle name otherwise.
func (v Vehicle) Label() string {
	if v.Brand != "" && v.Model != "" {
		return v.Brand + " " + v.Model
	}
	if v.Name != "" {
		return v.Name
	}
	return v.VehicleType.DefaultName()
}

// LastOfType returns the most recent maintenance entry of type t, by date.
// Entries whose date cannot be parsed rank below dated ones; ties keep log
// order, so the newest-first log decides.
func (v Vehicle) LastOfType(t MaintenanceType) (MaintenanceEntry, bool) {
	var (
		best      MaintenanceEntry
		bestDate  time.Time
		bestDated bool
		found     bool
	)
	for _, e := range v.MaintenanceLog {
		if e.Type != t {
			continue
		}
		d, dated := datex.Parse(e.Date)
		switch {
		case !found:
		case dated && !bestDated:
		case dated && d.After(bestDate):
		default:
			continue
		}
		best, bestDate, bestDated, found = e, d, dated, true
	}
	if !found {
		return MaintenanceEntry{}, false
	}
	return best.Clone(), true
}

// MileageChronological returns the mileage log sorted oldest first.
// Undated readings go last, keeping their relative order.
func (v Vehicle) MileageChronological() []MileageEntry {
	out := make([]MileageEntry, len(v.MileageLog))
	copy(out, v.MileageLog)

	sort.SliceStable(out, func(i, j int) bool {
		di, oki := datex.Parse(out[i].Date)
		dj, okj := datex.Parse(out[j].Date)
		if oki != okj {
			return oki
		}
		return oki && di.Before(dj)
	})
	return out
}

// Clone returns a deep copy of v.
func (v Vehicle) Clone() Vehicle {
	c := v
	c.MileageLog = append([]MileageEntry{}, v.MileageLog...)

	c.MaintenanceLog = make([]MaintenanceEntry, len(v.MaintenanceLog))
	for i, e := range v.MaintenanceLog {
		c.MaintenanceLog[i] = e.Clone()
	}

	c.Reminders = make([]Reminder, len(v.Reminders))
	for i, r := range v.Reminders {
		c.Reminders[i] = r.Clone()
	}
	return c
}

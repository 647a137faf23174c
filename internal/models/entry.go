package models

// MaintenanceType classifies a maintenance entry.
type MaintenanceType string

const (
	MaintenanceTagliando MaintenanceType = "tagliando"
	MaintenanceRevisione MaintenanceType = "revisione"
	MaintenanceGomme     MaintenanceType = "gomme"
	MaintenanceAltro     MaintenanceType = "altro"
)

// ParseMaintenanceType maps s to a known type; anything else is "altro".
func ParseMaintenanceType(s string) MaintenanceType {
	switch t := MaintenanceType(s); t {
	case MaintenanceTagliando, MaintenanceRevisione, MaintenanceGomme:
		return t
	default:
		return MaintenanceAltro
	}
}

// Label is the display name of the type.
func (t MaintenanceType) Label() string {
	switch t {
	case MaintenanceTagliando:
		return "Tagliando"
	case MaintenanceRevisione:
		return "Revisione"
	case MaintenanceGomme:
		return "Cambio Gomme"
	default:
		return "Altro"
	}
}

// MileageEntry is an odometer reading. Note is optional ("" when absent).
type MileageEntry struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Km   int    `json:"km"`
	Note string `json:"note,omitempty"`
}

// MaintenanceEntry is a service record.
//
// NextDueDate and NextDueKm are kept for compatibility with stored data and
// are not used to derive any status.
type MaintenanceEntry struct {
	ID          string          `json:"id"`
	Type        MaintenanceType `json:"type"`
	Date        string          `json:"date"`
	Km          int             `json:"km"`
	Description string          `json:"description"`
	Cost        *float64        `json:"cost,omitempty"`
	NextDueDate string          `json:"nextDueDate,omitempty"`
	NextDueKm   *int            `json:"nextDueKm,omitempty"`
}

// Reminder is a user-defined deadline by date and/or mileage.
type Reminder struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	DueDate string `json:"dueDate,omitempty"`
	DueKm   *int   `json:"dueKm,omitempty"`
}

// Clone returns a copy of e that shares no pointers with it.
func (e MaintenanceEntry) Clone() MaintenanceEntry {
	e.Cost = clonePtr(e.Cost)
	e.NextDueKm = clonePtr(e.NextDueKm)
	return e
}

// Clone returns a copy of r that shares no pointers with it.
func (r Reminder) Clone() Reminder {
	r.DueKm = clonePtr(r.DueKm)
	return r
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v; handy for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

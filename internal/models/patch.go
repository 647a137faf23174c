package models

// Opt is one field of a partial update. A zero Opt leaves the target
// unchanged; Set(v) overwrites it, including with a zero or nil value.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Set returns an Opt carrying v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

func (o Opt[T]) applyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// VehicleInfoPatch updates the descriptive fields of a vehicle.
type VehicleInfoPatch struct {
	VehicleType Opt[VehicleType]
	Name        Opt[string]
	Brand       Opt[string]
	Model       Opt[string]
	Year        Opt[int]
	Plate       Opt[string]
	CurrentKm   Opt[int]
}

// Empty reports whether p changes nothing.
func (p VehicleInfoPatch) Empty() bool {
	return !(p.VehicleType.Set || p.Name.Set || p.Brand.Set || p.Model.Set ||
		p.Year.Set || p.Plate.Set || p.CurrentKm.Set)
}

// Apply writes the present fields of p onto v.
func (p VehicleInfoPatch) Apply(v *Vehicle) {
	p.VehicleType.applyTo(&v.VehicleType)
	p.Name.applyTo(&v.Name)
	p.Brand.applyTo(&v.Brand)
	p.Model.applyTo(&v.Model)
	p.Year.applyTo(&v.Year)
	p.Plate.applyTo(&v.Plate)
	p.CurrentKm.applyTo(&v.CurrentKm)
	v.VehicleType = ParseVehicleType(string(v.VehicleType))
}

// MileagePatch updates a mileage entry; the id is never changed.
type MileagePatch struct {
	Date Opt[string]
	Km   Opt[int]
	Note Opt[string]
}

// Apply writes the present fields of p onto e.
func (p MileagePatch) Apply(e *MileageEntry) {
	p.Date.applyTo(&e.Date)
	p.Km.applyTo(&e.Km)
	p.Note.applyTo(&e.Note)
}

// MaintenancePatch updates a maintenance entry; the id is never changed.
type MaintenancePatch struct {
	Type        Opt[MaintenanceType]
	Date        Opt[string]
	Km          Opt[int]
	Description Opt[string]
	Cost        Opt[*float64]
}

// Apply writes the present fields of p onto e.
func (p MaintenancePatch) Apply(e *MaintenanceEntry) {
	p.Type.applyTo(&e.Type)
	p.Date.applyTo(&e.Date)
	p.Km.applyTo(&e.Km)
	p.Description.applyTo(&e.Description)
	if p.Cost.Set {
		e.Cost = clonePtr(p.Cost.Value)
	}
	e.Type = ParseMaintenanceType(string(e.Type))
}

// ReminderPatch updates a reminder; the id is never changed.
type ReminderPatch struct {
	Label   Opt[string]
	DueDate Opt[string]
	DueKm   Opt[*int]
}

// Apply writes the present fields of p onto r.
func (p ReminderPatch) Apply(r *Reminder) {
	p.Label.applyTo(&r.Label)
	p.DueDate.applyTo(&r.DueDate)
	if p.DueKm.Set {
		r.DueKm = clonePtr(p.DueKm.Value)
	}
}

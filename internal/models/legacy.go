package models

// LegacyCar is the single-vehicle snapshot written before the garage
// existed: no id, no vehicle type, no reminders.
type LegacyCar struct {
	Name           string             `json:"name"`
	Brand          string             `json:"brand"`
	Model          string             `json:"model"`
	Year           int                `json:"year"`
	Plate          string             `json:"plate"`
	CurrentKm      int                `json:"currentKm"`
	MileageLog     []MileageEntry     `json:"mileageLog"`
	MaintenanceLog []MaintenanceEntry `json:"maintenanceLog"`
}

// ToVehicle wraps the legacy snapshot into a vehicle of type auto.
func (c LegacyCar) ToVehicle(id string) Vehicle {
	v := Vehicle{
		ID:             id,
		VehicleType:    VehicleAuto,
		Name:           c.Name,
		Brand:          c.Brand,
		Model:          c.Model,
		Year:           c.Year,
		Plate:          c.Plate,
		CurrentKm:      c.CurrentKm,
		MileageLog:     c.MileageLog,
		MaintenanceLog: c.MaintenanceLog,
		Reminders:      []Reminder{},
	}
	if v.Name == "" {
		v.Name = VehicleAuto.DefaultName()
	}
	return v.Clone()
}

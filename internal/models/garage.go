package models

// Garage is the persisted root: vehicles in insertion order and the id of
// the active one (nil when there is none).
type Garage struct {
	Vehicles        []Vehicle `json:"vehicles"`
	ActiveVehicleID *string   `json:"activeVehicleId"`
}

// Find returns the index of the vehicle with the given id, or -1.
func (g Garage) Find(id string) int {
	for i, v := range g.Vehicles {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// Active returns the active vehicle, if any.
func (g Garage) Active() (Vehicle, bool) {
	if g.ActiveVehicleID == nil {
		return Vehicle{}, false
	}
	i := g.Find(*g.ActiveVehicleID)
	if i < 0 {
		return Vehicle{}, false
	}
	return g.Vehicles[i], true
}

// Clone returns a deep copy of g.
func (g Garage) Clone() Garage {
	c := Garage{
		Vehicles:        make([]Vehicle, len(g.Vehicles)),
		ActiveVehicleID: clonePtr(g.ActiveVehicleID),
	}
	for i, v := range g.Vehicles {
		c.Vehicles[i] = v.Clone()
	}
	return c
}

// Normalize repairs a decoded snapshot: nil logs become empty, unknown
// types fall back to defaults and a dangling active id is redirected to the
// first vehicle.
func (g *Garage) Normalize() {
	if g.Vehicles == nil {
		g.Vehicles = []Vehicle{}
	}
	for i := range g.Vehicles {
		v := &g.Vehicles[i]
		v.VehicleType = ParseVehicleType(string(v.VehicleType))
		if v.MileageLog == nil {
			v.MileageLog = []MileageEntry{}
		}
		if v.MaintenanceLog == nil {
			v.MaintenanceLog = []MaintenanceEntry{}
		}
		if v.Reminders == nil {
			v.Reminders = []Reminder{}
		}
		for j := range v.MaintenanceLog {
			v.MaintenanceLog[j].Type = ParseMaintenanceType(string(v.MaintenanceLog[j].Type))
		}
	}

	if g.ActiveVehicleID != nil && g.Find(*g.ActiveVehicleID) < 0 {
		g.ActiveVehicleID = nil
	}
	if g.ActiveVehicleID == nil && len(g.Vehicles) > 0 {
		g.ActiveVehicleID = Ptr(g.Vehicles[0].ID)
	}
}

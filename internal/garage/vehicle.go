package garage

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/csvcodec"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// AddVehicle appends an empty vehicle of type t and makes it active.
func AddVehicle(g models.Garage, t models.VehicleType, id string, now time.Time) (models.Garage, error) {
	if id == "" {
		return g, fmt.Errorf("%w: empty vehicle id", common.ErrValidation)
	}
	if g.Find(id) >= 0 {
		return g, fmt.Errorf("%w: duplicate vehicle id %s", common.ErrValidation, id)
	}

	out := g.Clone()
	out.Vehicles = append(out.Vehicles, models.NewVehicle(id, models.ParseVehicleType(string(t)), now))
	out.ActiveVehicleID = models.Ptr(id)
	return out, nil
}

// SelectVehicle makes vehicle id the active one.
func SelectVehicle(g models.Garage, id string) (models.Garage, error) {
	if g.Find(id) < 0 {
		return g, vehicleNotFound(id)
	}
	out := g.Clone()
	out.ActiveVehicleID = models.Ptr(id)
	return out, nil
}

// DeleteVehicle removes vehicle id. When it was active, the first remaining
// vehicle becomes active, or none if the garage is now empty.
func DeleteVehicle(g models.Garage, id string) (models.Garage, error) {
	i := g.Find(id)
	if i < 0 {
		return g, vehicleNotFound(id)
	}

	out := g.Clone()
	out.Vehicles = append(out.Vehicles[:i], out.Vehicles[i+1:]...)

	if out.ActiveVehicleID != nil && *out.ActiveVehicleID == id {
		out.ActiveVehicleID = nil
		if len(out.Vehicles) > 0 {
			out.ActiveVehicleID = models.Ptr(out.Vehicles[0].ID)
		}
	}
	return out, nil
}

// UpdateVehicle applies p to the descriptive fields of vehicle id.
func UpdateVehicle(g models.Garage, id string, p models.VehicleInfoPatch) (models.Garage, error) {
	if p.Year.Set && p.Year.Value < 0 {
		return g, fmt.Errorf("%w: year must not be negative", common.ErrValidation)
	}
	if p.CurrentKm.Set && p.CurrentKm.Value < 0 {
		return g, fmt.Errorf("%w: km must not be negative", common.ErrValidation)
	}
	return withVehicle(g, id, func(v *models.Vehicle) error {
		p.Apply(v)
		return nil
	})
}

// ApplyImport merges an imported patch into vehicle id: vehicle fields that
// were read replace the current ones and every log that was present in the
// input replaces the current log wholesale.
func ApplyImport(g models.Garage, id string, p csvcodec.Patch) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		p.Info.Apply(v)
		if p.MileageLog != nil {
			v.MileageLog = append([]models.MileageEntry{}, p.MileageLog...)
		}
		if p.MaintenanceLog != nil {
			v.MaintenanceLog = make([]models.MaintenanceEntry, 0, len(p.MaintenanceLog))
			for _, e := range p.MaintenanceLog {
				v.MaintenanceLog = append(v.MaintenanceLog, e.Clone())
			}
		}
		if p.Reminders != nil {
			v.Reminders = make([]models.Reminder, 0, len(p.Reminders))
			for _, r := range p.Reminders {
				v.Reminders = append(v.Reminders, r.Clone())
			}
		}
		return nil
	})
}

// withVehicle runs fn on a copy of vehicle id and returns the updated
// garage, or g itself when the vehicle is missing or fn fails.
func withVehicle(g models.Garage, id string, fn func(v *models.Vehicle) error) (models.Garage, error) {
	i := g.Find(id)
	if i < 0 {
		return g, vehicleNotFound(id)
	}
	out := g.Clone()
	if err := fn(&out.Vehicles[i]); err != nil {
		return g, err
	}
	return out, nil
}

func vehicleNotFound(id string) error {
	return fmt.Errorf("vehicle %s: %w", id, common.ErrorNotFound)
}

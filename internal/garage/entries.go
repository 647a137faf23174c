package garage

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// AddMileage prepends e to the mileage log of vehicle id. The current km
// becomes the larger of its old value and e.Km.
func AddMileage(g models.Garage, id string, e models.MileageEntry) (models.Garage, error) {
	if err := validateMileage(e); err != nil {
		return g, err
	}
	return withVehicle(g, id, func(v *models.Vehicle) error {
		if entryIndex(v.MileageLog, e.ID, mileageID) >= 0 {
			return duplicateEntry(e.ID)
		}
		v.MileageLog = append([]models.MileageEntry{e}, v.MileageLog...)
		v.CurrentKm = max(v.CurrentKm, e.Km)
		return nil
	})
}

// EditMileage patches mileage entry entryID. The current km is raised when
// the edited reading exceeds it and is never lowered.
func EditMileage(g models.Garage, id, entryID string, p models.MileagePatch) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		i := entryIndex(v.MileageLog, entryID, mileageID)
		if i < 0 {
			return entryNotFound(entryID)
		}
		e := v.MileageLog[i]
		p.Apply(&e)
		if err := validateMileage(e); err != nil {
			return err
		}
		v.MileageLog[i] = e
		v.CurrentKm = max(v.CurrentKm, e.Km)
		return nil
	})
}

// DeleteMileage removes mileage entry entryID. The current km is kept.
func DeleteMileage(g models.Garage, id, entryID string) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		i := entryIndex(v.MileageLog, entryID, mileageID)
		if i < 0 {
			return entryNotFound(entryID)
		}
		v.MileageLog = append(v.MileageLog[:i], v.MileageLog[i+1:]...)
		return nil
	})
}

// AddMaintenance prepends e to the maintenance log of vehicle id.
func AddMaintenance(g models.Garage, id string, e models.MaintenanceEntry) (models.Garage, error) {
	e.Type = models.ParseMaintenanceType(string(e.Type))
	if err := validateMaintenance(e); err != nil {
		return g, err
	}
	return withVehicle(g, id, func(v *models.Vehicle) error {
		if entryIndex(v.MaintenanceLog, e.ID, maintenanceID) >= 0 {
			return duplicateEntry(e.ID)
		}
		v.MaintenanceLog = append([]models.MaintenanceEntry{e.Clone()}, v.MaintenanceLog...)
		return nil
	})
}

// EditMaintenance patches maintenance entry entryID.
func EditMaintenance(g models.Garage, id, entryID string, p models.MaintenancePatch) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		i := entryIndex(v.MaintenanceLog, entryID, maintenanceID)
		if i < 0 {
			return entryNotFound(entryID)
		}
		e := v.MaintenanceLog[i]
		p.Apply(&e)
		if err := validateMaintenance(e); err != nil {
			return err
		}
		v.MaintenanceLog[i] = e
		return nil
	})
}

// DeleteMaintenance removes maintenance entry entryID.
func DeleteMaintenance(g models.Garage, id, entryID string) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		i := entryIndex(v.MaintenanceLog, entryID, maintenanceID)
		if i < 0 {
			return entryNotFound(entryID)
		}
		v.MaintenanceLog = append(v.MaintenanceLog[:i], v.MaintenanceLog[i+1:]...)
		return nil
	})
}

// AddReminder prepends r to the reminders of vehicle id.
func AddReminder(g models.Garage, id string, r models.Reminder) (models.Garage, error) {
	if err := validateReminder(r); err != nil {
		return g, err
	}
	return withVehicle(g, id, func(v *models.Vehicle) error {
		if entryIndex(v.Reminders, r.ID, reminderID) >= 0 {
			return duplicateEntry(r.ID)
		}
		v.Reminders = append([]models.Reminder{r.Clone()}, v.Reminders...)
		return nil
	})
}

// EditReminder patches reminder entryID.
func EditReminder(g models.Garage, id, entryID string, p models.ReminderPatch) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		i := entryIndex(v.Reminders, entryID, reminderID)
		if i < 0 {
			return entryNotFound(entryID)
		}
		r := v.Reminders[i]
		p.Apply(&r)
		if err := validateReminder(r); err != nil {
			return err
		}
		v.Reminders[i] = r
		return nil
	})
}

// DeleteReminder removes reminder entryID.
func DeleteReminder(g models.Garage, id, entryID string) (models.Garage, error) {
	return withVehicle(g, id, func(v *models.Vehicle) error {
		i := entryIndex(v.Reminders, entryID, reminderID)
		if i < 0 {
			return entryNotFound(entryID)
		}
		v.Reminders = append(v.Reminders[:i], v.Reminders[i+1:]...)
		return nil
	})
}

func validateMileage(e models.MileageEntry) error {
	switch {
	case e.ID == "":
		return invalid("id is required")
	case e.Km < 0:
		return invalid("km must not be negative")
	case !datex.Valid(e.Date):
		return invalid("date %q is not valid", e.Date)
	}
	return nil
}

func validateMaintenance(e models.MaintenanceEntry) error {
	switch {
	case e.ID == "":
		return invalid("id is required")
	case !datex.Valid(e.Date):
		return invalid("date %q is not valid", e.Date)
	case strings.TrimSpace(e.Description) == "":
		return invalid("description is required")
	case e.Km < 0:
		return invalid("km must not be negative")
	case e.Cost != nil && *e.Cost < 0:
		return invalid("cost must not be negative")
	}
	return nil
}

func validateReminder(r models.Reminder) error {
	switch {
	case r.ID == "":
		return invalid("id is required")
	case strings.TrimSpace(r.Label) == "":
		return invalid("label is required")
	case r.DueDate == "" && r.DueKm == nil:
		return invalid("a due date or a due km is required")
	case r.DueDate != "" && !datex.Valid(r.DueDate):
		return invalid("due date %q is not valid", r.DueDate)
	case r.DueKm != nil && *r.DueKm < 0:
		return invalid("due km must not be negative")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrValidation}, args...)...)
}

func entryNotFound(id string) error {
	return fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
}

func duplicateEntry(id string) error {
	return invalid("duplicate entry id %s", id)
}

func mileageID(e models.MileageEntry) string         { return e.ID }
func maintenanceID(e models.MaintenanceEntry) string { return e.ID }
func reminderID(r models.Reminder) string            { return r.ID }

func entryIndex[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/deadline"
	"github.com/dmitrijs2005/garagebook/internal/garage"
	"github.com/dmitrijs2005/garagebook/internal/logging"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// Store persists the whole garage.
type Store interface {
	Load(ctx context.Context) (models.Garage, error)
	Save(ctx context.Context, g models.Garage) error
}

type GarageService interface {
	// Load reads the stored garage; call once at startup.
	Load(ctx context.Context) error
	// Snapshot returns a copy of the current garage.
	Snapshot() models.Garage
	// Active returns the active vehicle or common.ErrNoActiveVehicle.
	Active() (models.Vehicle, error)

	AddVehicle(ctx context.Context, t models.VehicleType) (models.Vehicle, error)
	SelectVehicle(ctx context.Context, id string) error
	DeleteVehicle(ctx context.Context, id string) error
	UpdateVehicle(ctx context.Context, p models.VehicleInfoPatch) error

	AddMileage(ctx context.Context, e models.MileageEntry) (models.MileageEntry, error)
	EditMileage(ctx context.Context, entryID string, p models.MileagePatch) error
	DeleteMileage(ctx context.Context, entryID string) error

	AddMaintenance(ctx context.Context, e models.MaintenanceEntry) (models.MaintenanceEntry, error)
	EditMaintenance(ctx context.Context, entryID string, p models.MaintenancePatch) error
	DeleteMaintenance(ctx context.Context, entryID string) error

	AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error)
	EditReminder(ctx context.Context, entryID string, p models.ReminderPatch) error
	DeleteReminder(ctx context.Context, entryID string) error

	// Status evaluates the fixed intervals and the reminders of the active
	// vehicle at now.
	Status(now time.Time) (StatusReport, error)
	// Dashboard summarizes the active vehicle.
	Dashboard() (Dashboard, error)

	// ExportCSV writes the active vehicle to dir and returns the file path.
	ExportCSV(ctx context.Context, dir string) (string, error)
	// ImportCSV merges the file at path into the active vehicle.
	ImportCSV(ctx context.Context, path string) (ImportSummary, error)
	// ExportPDF writes the vehicle sheet of the active vehicle to dir.
	ExportPDF(ctx context.Context, dir string, now time.Time) (string, error)
}

type garageService struct {
	mu     sync.Mutex
	garage models.Garage

	store      Store
	thresholds deadline.Thresholds
	log        logging.Logger

	newID func() string
	now   func() time.Time
}

func NewGarageService(store Store, th deadline.Thresholds, log logging.Logger) GarageService {
	g := models.Garage{}
	g.Normalize()
	return &garageService{
		garage:     g,
		store:      store,
		thresholds: th,
		log:        log,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

func (s *garageService) Load(ctx context.Context) error {
	g, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load garage: %w", err)
	}

	s.mu.Lock()
	s.garage = g
	s.mu.Unlock()

	s.log.Info(ctx, "garage loaded", "vehicles", len(g.Vehicles))
	return nil
}

func (s *garageService) Snapshot() models.Garage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.garage.Clone()
}

func (s *garageService) Active() (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.garage.Active()
	if !ok {
		return models.Vehicle{}, common.ErrNoActiveVehicle
	}
	return v.Clone(), nil
}

// apply runs cmd on the current garage, saves the result and makes it
// current.
func (s *garageService) apply(ctx context.Context, op string, cmd func(g models.Garage) (models.Garage, error)) error {
	ctx = logging.WithOp(ctx, op)

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cmd(s.garage)
	if err != nil {
		s.log.Debug(ctx, "command rejected", "error", err)
		return err
	}

	if err := s.store.Save(ctx, next); err != nil {
		s.log.Error(ctx, "save failed", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.garage = next
	s.log.Debug(ctx, "command applied")
	return nil
}

// applyActive is apply for commands scoped to the active vehicle.
func (s *garageService) applyActive(ctx context.Context, op string, cmd func(g models.Garage, vehicleID string) (models.Garage, error)) error {
	return s.apply(ctx, op, func(g models.Garage) (models.Garage, error) {
		if g.ActiveVehicleID == nil {
			return g, common.ErrNoActiveVehicle
		}
		return cmd(g, *g.ActiveVehicleID)
	})
}

func (s *garageService) AddVehicle(ctx context.Context, t models.VehicleType) (models.Vehicle, error) {
	id := s.newID()
	err := s.apply(ctx, "add vehicle", func(g models.Garage) (models.Garage, error) {
		return garage.AddVehicle(g, t, id, s.now())
	})
	if err != nil {
		return models.Vehicle{}, err
	}
	s.log.Info(ctx, "vehicle added", "vehicle_id", id, "type", t)
	return s.Active()
}

func (s *garageService) SelectVehicle(ctx context.Context, id string) error {
	return s.apply(ctx, "select vehicle", func(g models.Garage) (models.Garage, error) {
		return garage.SelectVehicle(g, id)
	})
}

func (s *garageService) DeleteVehicle(ctx context.Context, id string) error {
	err := s.apply(ctx, "delete vehicle", func(g models.Garage) (models.Garage, error) {
		return garage.DeleteVehicle(g, id)
	})
	if err == nil {
		s.log.Info(ctx, "vehicle deleted", "vehicle_id", id)
	}
	return err
}

func (s *garageService) UpdateVehicle(ctx context.Context, p models.VehicleInfoPatch) error {
	return s.applyActive(ctx, "update vehicle", func(g models.Garage, id string) (models.Garage, error) {
		return garage.UpdateVehicle(g, id, p)
	})
}

func (s *garageService) AddMileage(ctx context.Context, e models.MileageEntry) (models.MileageEntry, error) {
	e.ID = s.newID()
	err := s.applyActive(ctx, "add mileage", func(g models.Garage, id string) (models.Garage, error) {
		return garage.AddMileage(g, id, e)
	})
	if err != nil {
		return models.MileageEntry{}, err
	}
	return e, nil
}

func (s *garageService) EditMileage(ctx context.Context, entryID string, p models.MileagePatch) error {
	return s.applyActive(ctx, "edit mileage", func(g models.Garage, id string) (models.Garage, error) {
		return garage.EditMileage(g, id, entryID, p)
	})
}

func (s *garageService) DeleteMileage(ctx context.Context, entryID string) error {
	return s.applyActive(ctx, "delete mileage", func(g models.Garage, id string) (models.Garage, error) {
		return garage.DeleteMileage(g, id, entryID)
	})
}

func (s *garageService) AddMaintenance(ctx context.Context, e models.MaintenanceEntry) (models.MaintenanceEntry, error) {
	e.ID = s.newID()
	e.Type = models.ParseMaintenanceType(string(e.Type))
	err := s.applyActive(ctx, "add maintenance", func(g models.Garage, id string) (models.Garage, error) {
		return garage.AddMaintenance(g, id, e)
	})
	if err != nil {
		return models.MaintenanceEntry{}, err
	}
	return e, nil
}

func (s *garageService) EditMaintenance(ctx context.Context, entryID string, p models.MaintenancePatch) error {
	return s.applyActive(ctx, "edit maintenance", func(g models.Garage, id string) (models.Garage, error) {
		return garage.EditMaintenance(g, id, entryID, p)
	})
}

func (s *garageService) DeleteMaintenance(ctx context.Context, entryID string) error {
	return s.applyActive(ctx, "delete maintenance", func(g models.Garage, id string) (models.Garage, error) {
		return garage.DeleteMaintenance(g, id, entryID)
	})
}

func (s *garageService) AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	r.ID = s.newID()
	err := s.applyActive(ctx, "add reminder", func(g models.Garage, id string) (models.Garage, error) {
		return garage.AddReminder(g, id, r)
	})
	if err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

func (s *garageService) EditReminder(ctx context.Context, entryID string, p models.ReminderPatch) error {
	return s.applyActive(ctx, "edit reminder", func(g models.Garage, id string) (models.Garage, error) {
		return garage.EditReminder(g, id, entryID, p)
	})
}

func (s *garageService) DeleteReminder(ctx context.Context, entryID string) error {
	return s.applyActive(ctx, "delete reminder", func(g models.Garage, id string) (models.Garage, error) {
		return garage.DeleteReminder(g, id, entryID)
	})
}

// Package storage persists the garage as one JSON snapshot in the local
// SQLite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/dbx"
	"github.com/dmitrijs2005/garagebook/internal/logging"
	"github.com/dmitrijs2005/garagebook/internal/models"
	"github.com/dmitrijs2005/garagebook/internal/repositories/metadata"
)

// ErrCorruptSnapshot is returned when a stored snapshot cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// SnapshotStore reads and rewrites the whole garage.
type SnapshotStore struct {
	db    *sql.DB
	repo  metadata.Repository
	log   logging.Logger
	newID func() string
}

func NewSnapshotStore(db *sql.DB, log logging.Logger) *SnapshotStore {
	return &SnapshotStore{
		db:    db,
		repo:  metadata.NewSQLiteRepository(db),
		log:   log,
		newID: uuid.NewString,
	}
}

// Load returns the stored garage.
//
// When only a legacy single-vehicle snapshot exists it is wrapped into a
// one-vehicle garage; the new snapshot is written and the legacy key
// removed in the same transaction. With nothing stored Load returns an
// empty garage.
func (s *SnapshotStore) Load(ctx context.Context) (models.Garage, error) {
	raw, err := s.repo.Get(ctx, common.GarageSnapshotKey)
	if err != nil {
		return models.Garage{}, fmt.Errorf("load garage: %w", err)
	}
	if raw != nil {
		var g models.Garage
		if err := json.Unmarshal(raw, &g); err != nil {
			return models.Garage{}, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, common.GarageSnapshotKey, err)
		}
		g.Normalize()
		return g, nil
	}

	legacy, err := s.repo.Get(ctx, common.LegacySnapshotKey)
	if err != nil {
		return models.Garage{}, fmt.Errorf("load legacy snapshot: %w", err)
	}
	if legacy == nil {
		g := models.Garage{}
		g.Normalize()
		return g, nil
	}

	return s.migrateLegacy(ctx, legacy)
}

func (s *SnapshotStore) migrateLegacy(ctx context.Context, raw []byte) (models.Garage, error) {
	var car models.LegacyCar
	if err := json.Unmarshal(raw, &car); err != nil {
		return models.Garage{}, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, common.LegacySnapshotKey, err)
	}

	v := car.ToVehicle(s.newID())
	g := models.Garage{Vehicles: []models.Vehicle{v}, ActiveVehicleID: models.Ptr(v.ID)}
	g.Normalize()

	data, err := json.Marshal(g)
	if err != nil {
		return models.Garage{}, fmt.Errorf("encode garage: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.GarageSnapshotKey, data); err != nil {
			return err
		}
		return repo.Delete(ctx, common.LegacySnapshotKey)
	})
	if err != nil {
		return models.Garage{}, fmt.Errorf("migrate legacy snapshot: %w", err)
	}

	s.log.Info(ctx, "legacy snapshot migrated", "vehicle_id", v.ID)
	return g, nil
}

// Save rewrites the whole snapshot.
func (s *SnapshotStore) Save(ctx context.Context, g models.Garage) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode garage: %w", err)
	}
	if err := s.repo.Set(ctx, common.GarageSnapshotKey, data); err != nil {
		return fmt.Errorf("save garage: %w", err)
	}
	s.log.Debug(ctx, "garage saved", "vehicles", len(g.Vehicles), "bytes", len(data))
	return nil
}

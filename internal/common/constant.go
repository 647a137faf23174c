// Package common contains shared constants and sentinel errors used across
// garagebook components.
package common

// Storage keys of the persisted snapshots.
const (
	// GarageSnapshotKey holds the garage root (vehicles + active vehicle id).
	GarageSnapshotKey = "garage-data"

	// LegacySnapshotKey holds the single-vehicle snapshot written by older
	// versions. It is migrated into the garage on first load and removed.
	LegacySnapshotKey = "car-data"
)

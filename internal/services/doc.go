// Package services owns the in-memory garage for a session.
//
// GarageService is the only writer: each command is applied to a copy of
// the current garage, the whole result is saved, and only after a
// successful save does it become the current state. A failed command or a
// failed save leaves the previous garage in place.
package services

// Package common defines shared constants and sentinel errors used across
// the storage, service and CLI layers of garagebook. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors: a required field is missing or out of range.
	ErrValidation = errors.New("validation error")

	// Garage-level errors.
	ErrNoActiveVehicle = errors.New("no active vehicle")

	// Import/export errors.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// Package models defines the garage data model: vehicles, their mileage and
// maintenance logs, user reminders, and the garage root that tracks the
// active vehicle. JSON tags follow the persisted snapshot layout.
package models

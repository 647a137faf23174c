// Package garage holds the commands that change a models.Garage.
//
// Every command takes a garage value and returns a new one; the argument
// is never modified. On error the original garage is returned unchanged,
// so a caller can keep using it as the authoritative state.
package garage

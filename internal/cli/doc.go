// Package cli is the interactive garagebook command line.
//
// It wires configuration, the local database, the garage service and a
// read-eval-print loop. Commands act on the active vehicle; "help" lists
// them. Every failure is reported as one line and the session goes on.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli

// Package store provides persistence for chomp parse runs.
package store

import "time"

// Run is one recorded parse: the input given, whether it succeeded, the
// unconsumed remainder on failure, and the bindings it produced, rendered
// one per line.
type Run struct {
	ID        string
	Ts        time.Time
	Input     string
	Success   bool
	Remaining string
	Bindings  string
}

// Store is the interface for run history persistence.
type Store interface {
	// Save records a completed run.
	Save(r Run) error
	// Recent returns up to limit runs, newest first.
	Recent(limit int) ([]Run, error)
	// Close releases resources.
	Close() error
}

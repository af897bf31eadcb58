// Package chomp provides the public API for the chomp parser engine.
package chomp

import (
	"nickandperla.net/chomp/internal/diag"
	"nickandperla.net/chomp/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// Logger is the diagnostics capability a Runtime carries.
type Logger = diag.Logger

// Store is the run-history persistence interface, for custom stores.
type Store = store.Store

// WithLogger installs a custom diagnostics logger.
func WithLogger(l Logger) Option {
	return func(r *Runtime) {
		r.logger = l
	}
}

// WithDiagnostics installs the standard stderr diagnostics logger.
func WithDiagnostics() Option {
	return func(r *Runtime) {
		r.logger = diag.New()
	}
}

// WithColor toggles styled failure diagnostics.
func WithColor(on bool) Option {
	return func(r *Runtime) {
		r.color = on
	}
}

// WithSQLiteStore configures SQLite run history at the given path.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err == nil {
			r.history = s
		}
	}
}

// WithMemoryStore configures an in-memory run history (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) {
		r.history = store.NewMemory()
	}
}

// WithStore configures a custom run history.
func WithStore(s Store) Option {
	return func(r *Runtime) {
		r.history = s
	}
}

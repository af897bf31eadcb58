package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory run history for tests and db-less REPL sessions.
type Memory struct {
	mu   sync.RWMutex
	runs []Run
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save records a completed run.
func (m *Memory) Save(r Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Ts.IsZero() {
		r.Ts = time.Now().UTC()
	}
	m.runs = append(m.runs, r)
	return nil
}

// Recent returns up to limit runs, newest first.
func (m *Memory) Recent(limit int) ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Run
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

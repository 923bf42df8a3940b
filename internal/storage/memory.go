package storage

import (
	"context"
	"sync"

	"github.com/brsaude/patient-intake/internal/patients"
)

// MemoryStore is an in-memory Repository used in tests and as a
// fallback when no durable backend is configured in development.
type MemoryStore struct {
	mu  sync.RWMutex
	set []patients.Patient

	// LoadErr and SaveErr, when set, make the next calls fail.
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates an empty in-memory repository.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{set: []patients.Patient{}}
}

// Load returns a copy of the stored set.
func (s *MemoryStore) Load(ctx context.Context) ([]patients.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]patients.Patient, len(s.set))
	copy(out, s.set)
	return out, nil
}

// Save replaces the stored set with a copy of the given one.
func (s *MemoryStore) Save(ctx context.Context, set []patients.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.set = make([]patients.Patient, len(set))
	copy(s.set, set)
	return nil
}

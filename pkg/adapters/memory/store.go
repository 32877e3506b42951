package memory

import (
	"context"
	"sync"

	"github.com/soleret/hamming/pkg/fingerprint"
	"github.com/soleret/hamming/pkg/ports"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]fingerprint.Fingerprint
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]fingerprint.Fingerprint),
	}
}

// Save persists the fingerprint in memory.
func (s *Store) Save(ctx context.Context, fp fingerprint.Fingerprint) error {
	// Copy the vector to ensure isolation, similar to serialization
	copied := fingerprint.Fingerprint{
		Name:   fp.Name,
		Vector: append([]byte(nil), fp.Vector...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[copied.Name] = copied
	return nil
}

// Load retrieves a fingerprint from memory.
func (s *Store) Load(ctx context.Context, name string) (fingerprint.Fingerprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fp, ok := s.data[name]
	if !ok {
		return fingerprint.Fingerprint{}, ports.ErrNotFound
	}

	// Copy on read so caller can't mutate store state through the slice
	fp.Vector = append([]byte(nil), fp.Vector...)
	return fp, nil
}

// Delete removes the fingerprint. Deleting a missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns all stored fingerprints in no particular order.
func (s *Store) List(ctx context.Context) ([]fingerprint.Fingerprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]fingerprint.Fingerprint, 0, len(s.data))
	for _, fp := range s.data {
		fp.Vector = append([]byte(nil), fp.Vector...)
		all = append(all, fp)
	}
	return all, nil
}

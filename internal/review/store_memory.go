package review

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and local development.
// It mirrors the per-key atomicity of the Redis store with a single lock.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get returns the entry stored under id, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores an entry under id, overwriting any previous value.
func (s *MemoryStore) Set(_ context.Context, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.entries[id] = stored
	return nil
}

// Delete removes the entry under id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// List returns a copy of all stored entries keyed by ID.
func (s *MemoryStore) List(_ context.Context) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(map[string][]byte, len(s.entries))
	for id, data := range s.entries {
		out := make([]byte, len(data))
		copy(out, data)
		entries[id] = out
	}
	return entries, nil
}

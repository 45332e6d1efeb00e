package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/mallcloud/mallctl/internal/ports"
)

// memStore is an in-memory KVStore for tests.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

var _ ports.KVStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{entries: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", key, ports.ErrKeyNotFound)
	}

	return value, nil
}

func (s *memStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.entries[key] = copied

	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	return ok
}

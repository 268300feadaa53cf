package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryKVRepo is a map-backed KVRepo. It backs the legacy JSON file codec
// and tests that do not need SQLite.
type MemoryKVRepo struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{entries: make(map[string][]byte)}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryKVRepo) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryKVRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}

func (r *MemoryKVRepo) Keys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

package repository

import (
	"context"
	"sync"
)

type memoryBlobStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryBlobStore creates an in-memory BlobStore. Used by tests and as
// a fallback when no database path is configured.
func NewMemoryBlobStore() BlobStore {
	return &memoryBlobStore{data: make(map[string]string)}
}

func (m *memoryBlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryBlobStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryBlobStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

package storage

import "sync"

// MemoryStorage keeps slots in process memory. Nothing survives a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

var _ Store = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

// Set replaces the value stored under key.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

// Close is a no-op.
func (m *MemoryStorage) Close() error {
	return nil
}

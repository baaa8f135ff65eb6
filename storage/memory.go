package storage

import (
	"strconv"
	"sync"
)

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (int, error) {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	return parseValue(key, raw)
}

func (m *MemoryStore) Set(key string, value int) error {
	m.mu.Lock()
	m.values[key] = strconv.Itoa(value)
	m.mu.Unlock()
	return nil
}

// SetRaw stores text as-is, bypassing integer encoding.
func (m *MemoryStore) SetRaw(key, raw string) {
	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
}

func (m *MemoryStore) Close() error {
	return nil
}

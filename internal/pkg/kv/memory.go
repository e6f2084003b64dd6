// internal/pkg/kv/memory.go
package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It backs tests and deployments that run
// without Redis; contents do not survive a process restart.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

// Load retrieves a value by key
func (m *Memory) Load(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Save stores a value under key
func (m *Memory) Save(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete removes a key
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

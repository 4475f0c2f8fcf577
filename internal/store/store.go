// Package store provides the keyed stores that hold claim tests and
// interview sessions for the lifetime of the process.
package store

import "sync"

// Store is a keyed put/get container. Values are treated as immutable once
// stored; there is no eviction, so entries live until the process exits.
// An implementation with TTL-based eviction can be swapped in here without
// touching the services.
type Store[T any] interface {
	Put(key string, value T)
	Get(key string) (T, bool)
}

// Memory is the in-process map implementation. The mutex only guards the
// map itself; stored values are never mutated after Put, so concurrent
// reads of the same entry are safe.
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{items: make(map[string]T)}
}

func (m *Memory[T]) Put(key string, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

func (m *Memory[T]) Get(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[key]
	return value, ok
}

// Len reports the number of stored entries, for monitoring.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

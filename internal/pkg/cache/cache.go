// Package cache provides the small string cache used for catalog lookups.
// The backend is a deployment choice: Redis when an address is configured,
// an in-process map otherwise. Callers never know which one they got.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get returns the cached value, or "" on a miss. A miss is not an error.
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryCache struct {
	mu          sync.RWMutex
	entries     map[string]memoryEntry
	serviceName string
}

// NewMemoryCache returns an in-process Cache. Used when no Redis address is
// configured; entries are lost on restart, which is fine for catalog data
// that is re-read from the database anyway.
func NewMemoryCache(serviceName string) Cache {
	return &memoryCache{
		entries:     make(map[string]memoryEntry),
		serviceName: serviceName,
	}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = memoryEntry{value: fmt.Sprint(value), expiresAt: expiresAt}
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", nil
	}
	return entry.value, nil
}

func (m *memoryCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", m.serviceName, operation, key)
}

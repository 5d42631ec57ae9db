package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/ports"
)

var _ ports.CacheService = (*MemoryCache)(nil)

// MemoryCache implementación en memoria del puerto de cache, para desarrollo
// sin Redis y para tests. Mismo contrato que RedisCache: payloads JSON,
// expiración absoluta y feature flag fail-open.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	enabled bool
	now     func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache construye la cache en memoria.
func NewMemoryCache(enabled bool) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		enabled: enabled,
		now:     time.Now,
	}
}

// Get deserializa en dest el valor cacheado; false si miss, expirada o cache apagada.
func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if !c.enabled {
		return false, nil
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set guarda el valor con expiración absoluta ttl, sobreescribiendo la entrada previa.
func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Remove expulsa la entrada; no-op si no existe.
func (c *MemoryCache) Remove(_ context.Context, key string) error {
	if !c.enabled {
		return nil
	}
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

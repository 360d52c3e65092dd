package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"gobarber/internal/domain/service"
)

// memoryCache is an in-process CacheProvider for local runs and tests.
// Values round-trip through JSON so behavior matches the redis implementation.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() service.CacheProvider {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Save(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal cache value for %s", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = data

	return nil
}

func (c *memoryCache) Recover(_ context.Context, key string, target any) (bool, error) {
	c.mu.RLock()
	data, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return false, errors.Wrapf(err, "failed to unmarshal cache value for %s", key)
	}

	return true, nil
}

func (c *memoryCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)

	return nil
}

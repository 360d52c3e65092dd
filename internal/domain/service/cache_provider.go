package service

import "context"

// ProvidersListCacheKey is the cache entry holding the serialized provider list.
// It is invalidated on every user mutation to avoid staleness.
const ProvidersListCacheKey = "providers-list"

// CacheProvider abstracts a key-value cache with JSON-serialized values.
type CacheProvider interface {
	// Save stores value under key, replacing any previous entry.
	Save(ctx context.Context, key string, value any) error

	// Recover loads the entry under key into target.
	// It returns false when the key is absent, without touching target.
	Recover(ctx context.Context, key string, target any) (bool, error)

	// Invalidate drops the entry under key. Missing keys are ignored.
	Invalidate(ctx context.Context, key string) error
}

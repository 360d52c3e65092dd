package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, cache.Save(ctx, "key", payload{Name: "barber", Count: 3}))

	var recovered payload
	hit, err := cache.Recover(ctx, "key", &recovered)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, payload{Name: "barber", Count: 3}, recovered)
}

func TestMemoryCacheMiss(t *testing.T) {
	cache := NewMemoryCache()

	var target string
	hit, err := cache.Recover(context.Background(), "absent", &target)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "key", "value"))
	require.NoError(t, cache.Invalidate(ctx, "key"))

	var target string
	hit, err := cache.Recover(ctx, "key", &target)
	require.NoError(t, err)
	assert.False(t, hit)

	// Invalidating an absent key is a no-op.
	require.NoError(t, cache.Invalidate(ctx, "key"))
}

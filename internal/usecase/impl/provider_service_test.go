package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderList(t *testing.T) {
	t.Run("excludes the requesting user", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		requester := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		other := userRepo.mustCreate(t, "Jane Doe", "janedoe@example.com", "hashed:123456")
		svc := NewProviderService(userRepo, newFakeCache(), testLogger())

		providers, err := svc.List(context.Background(), requester.ID)
		require.NoError(t, err)

		require.Len(t, providers, 1)
		assert.Equal(t, other.ID, providers[0].ID)
	})

	t.Run("serves repeated calls from the cache", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		requester := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		userRepo.mustCreate(t, "Jane Doe", "janedoe@example.com", "hashed:123456")
		cache := newFakeCache()
		svc := NewProviderService(userRepo, cache, testLogger())

		_, err := svc.List(context.Background(), requester.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, userRepo.findAllCalls)
		assert.Equal(t, 1, cache.saves)

		_, err = svc.List(context.Background(), requester.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, userRepo.findAllCalls)
	})

	t.Run("one cache entry serves different requesters", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		john := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		jane := userRepo.mustCreate(t, "Jane Doe", "janedoe@example.com", "hashed:123456")
		svc := NewProviderService(userRepo, newFakeCache(), testLogger())

		johnView, err := svc.List(context.Background(), john.ID)
		require.NoError(t, err)
		janeView, err := svc.List(context.Background(), jane.ID)
		require.NoError(t, err)

		require.Len(t, johnView, 1)
		require.Len(t, janeView, 1)
		assert.Equal(t, jane.ID, johnView[0].ID)
		assert.Equal(t, john.ID, janeView[0].ID)
		assert.Equal(t, 1, userRepo.findAllCalls)
	})

	t.Run("a broken cache degrades to a repository read", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		requester := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		userRepo.mustCreate(t, "Jane Doe", "janedoe@example.com", "hashed:123456")
		cache := newFakeCache()
		cache.recoverErr = errors.New("cache unavailable")
		svc := NewProviderService(userRepo, cache, testLogger())

		providers, err := svc.List(context.Background(), requester.ID)
		require.NoError(t, err)
		assert.Len(t, providers, 1)
		assert.Equal(t, 1, userRepo.findAllCalls)
	})
}

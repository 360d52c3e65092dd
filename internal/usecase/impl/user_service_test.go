package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceForTest(userRepo *fakeUserRepo, cache *fakeCache) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager: newFakeTxManager(userRepo, newFakeUserTokenRepo()),
		Hasher:    fakeHasher{},
		Cache:     cache,
		Logger:    testLogger(),
	})
}

func TestRegister(t *testing.T) {
	t.Run("creates a user with a hashed password", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		cache := newFakeCache()
		svc := newUserServiceForTest(userRepo, cache)

		output, err := svc.Register(context.Background(), &usecase.RegisterInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "123456",
		})
		require.NoError(t, err)
		require.NotNil(t, output.User)

		assert.NotEqual(t, "", output.User.ID.String())
		assert.Equal(t, "John Doe", output.User.Name)
		assert.Equal(t, "johndoe@example.com", output.User.Email)
		assert.NotEqual(t, "123456", output.User.PasswordHash)

		stored, err := userRepo.FindByEmail(context.Background(), "johndoe@example.com")
		require.NoError(t, err)
		assert.Equal(t, output.User.ID, stored.ID)
	})

	t.Run("invalidates the providers cache", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		cache := newFakeCache()
		svc := newUserServiceForTest(userRepo, cache)

		_, err := svc.Register(context.Background(), &usecase.RegisterInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "123456",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, cache.invalidations)
	})

	t.Run("rejects an email that is already registered", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := newUserServiceForTest(userRepo, newFakeCache())

		input := &usecase.RegisterInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "123456",
		}
		_, err := svc.Register(context.Background(), input)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
	})
}

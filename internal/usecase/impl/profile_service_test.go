package impl

import (
	"context"
	"testing"

	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileServiceSetup() (*fakeUserRepo, *fakeCache, usecase.ProfileUsecase) {
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	txManager := newFakeTxManager(userRepo, newFakeUserTokenRepo())
	svc := NewProfileService(txManager, userRepo, fakeHasher{}, cache, testLogger())

	return userRepo, cache, svc
}

func TestProfileShow(t *testing.T) {
	t.Run("returns the user's profile", func(t *testing.T) {
		userRepo, _, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")

		found, err := svc.Show(context.Background(), user.ID)
		require.NoError(t, err)

		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "John Doe", found.Name)
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		_, _, svc := newProfileServiceSetup()

		_, err := svc.Show(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestProfileUpdate(t *testing.T) {
	t.Run("updates name and email", func(t *testing.T) {
		userRepo, cache, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")

		updated, err := svc.Update(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:  "John Trê",
			Email: "johntre@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "John Trê", updated.Name)
		assert.Equal(t, "johntre@example.com", updated.Email)
		assert.Equal(t, 1, cache.invalidations)
	})

	t.Run("keeping the same email is not a collision", func(t *testing.T) {
		userRepo, _, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")

		updated, err := svc.Update(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:  "John Doe Jr",
			Email: "johndoe@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "John Doe Jr", updated.Name)
	})

	t.Run("rejects an email owned by another account", func(t *testing.T) {
		userRepo, _, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		userRepo.mustCreate(t, "Jane Doe", "janedoe@example.com", "hashed:123456")

		_, err := svc.Update(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:  "John Doe",
			Email: "janedoe@example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
	})

	t.Run("changes the password when the old one matches", func(t *testing.T) {
		userRepo, _, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")

		updated, err := svc.Update(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:        "John Doe",
			Email:       "johndoe@example.com",
			OldPassword: "123456",
			Password:    "654321",
		})
		require.NoError(t, err)
		assert.Equal(t, "hashed:654321", updated.PasswordHash)
	})

	t.Run("rejects a password change without the old password", func(t *testing.T) {
		userRepo, _, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")

		_, err := svc.Update(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "654321",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))
	})

	t.Run("rejects a password change with a wrong old password", func(t *testing.T) {
		userRepo, _, svc := newProfileServiceSetup()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")

		_, err := svc.Update(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:        "John Doe",
			Email:       "johndoe@example.com",
			OldPassword: "wrong-old-password",
			Password:    "654321",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))

		stored, err := userRepo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hashed:123456", stored.PasswordHash)
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		_, _, svc := newProfileServiceSetup()

		_, err := svc.Update(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
			Name:  "Ghost",
			Email: "ghost@example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

package impl

import (
	"context"
	"testing"

	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		user := userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		svc := NewSessionService(userRepo, fakeHasher{}, fakeTokenService{}, testLogger())

		output, err := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
			Email:    "johndoe@example.com",
			Password: "123456",
		})
		require.NoError(t, err)

		assert.Equal(t, user.ID, output.User.ID)
		assert.Equal(t, "token-"+user.ID.String(), output.Token)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.mustCreate(t, "John Doe", "johndoe@example.com", "hashed:123456")
		svc := NewSessionService(userRepo, fakeHasher{}, fakeTokenService{}, testLogger())

		_, unknownErr := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
			Email:    "nobody@example.com",
			Password: "123456",
		})
		require.Error(t, unknownErr)
		assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))

		_, wrongErr := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
			Email:    "johndoe@example.com",
			Password: "wrong-password",
		})
		require.Error(t, wrongErr)
		assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
	})

	t.Run("propagates repository failures without masking them as credentials", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.failOnFindByMail = errors.New("connection refused")
		svc := NewSessionService(userRepo, fakeHasher{}, fakeTokenService{}, testLogger())

		_, err := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
			Email:    "johndoe@example.com",
			Password: "123456",
		})
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

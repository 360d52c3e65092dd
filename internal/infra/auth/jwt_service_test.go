package auth

import (
	"testing"
	"time"

	"gobarber/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		Secret:   "test-secret",
		TokenTTL: ttl,
	}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTServiceRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsForeignSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	other, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: "other-secret"}})
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	svc.tokenTTL = -time.Minute

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	require.Error(t, err)
}

func TestJWTServiceTokenDuration(t *testing.T) {
	svc := newTestTokenService(t, 0)
	assert.Equal(t, defaultTokenTTL, svc.GetTokenDuration())
}

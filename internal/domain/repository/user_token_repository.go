package repository

import (
	"context"
	"errors"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserTokenNotFound is returned when a password reset token does not exist.
var ErrUserTokenNotFound = errors.New("user token not found")

// UserTokenRepository manages single-use password reset tokens.
type UserTokenRepository interface {
	// Generate creates and persists a fresh reset token for the given user.
	Generate(ctx context.Context, userID uuid.UUID) (*entity.UserToken, error)

	// FindByToken retrieves a token record by its token value.
	FindByToken(ctx context.Context, token uuid.UUID) (*entity.UserToken, error)

	// Delete removes a token record, consuming it.
	Delete(ctx context.Context, id uuid.UUID) error
}

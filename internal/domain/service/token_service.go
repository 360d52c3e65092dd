package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying credential tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed, time-bound access token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns the subject user ID.
	ValidateToken(tokenString string) (uuid.UUID, error)

	// GetTokenDuration returns the configured token time-to-live.
	GetTokenDuration() time.Duration
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserToken is a single-use, time-bound password reset token persisted against a user.
// The Token value itself is a random UUID handed to the user by mail; the record is
// deleted once consumed so it cannot be replayed.
type UserToken struct {
	ID        uuid.UUID
	Token     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// ExpiredAt returns the instant after which the token is no longer valid.
func (t *UserToken) ExpiredAt(ttl time.Duration) time.Time {
	return t.CreatedAt.Add(ttl)
}

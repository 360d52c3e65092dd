// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// Every user may act as a provider (someone who can be booked for appointments),
// so there is no separate provider entity.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`                // bcrypt digest, never serialized outward.
	Avatar       string    `json:"avatar,omitempty"` // Stored file name; empty when no avatar has been uploaded.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasAvatar reports whether the user currently has a stored avatar file.
func (u *User) HasAvatar() bool {
	return u.Avatar != ""
}

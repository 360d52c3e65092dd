package usecase

import (
	"context"

	"gobarber/internal/domain/entity"
)

// AuthenticateInput defines the data required for a user to log in.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateOutput returns the authenticated user and their credential token.
type AuthenticateOutput struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// SessionUsecase defines the interface for credential authentication.
type SessionUsecase interface {
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}

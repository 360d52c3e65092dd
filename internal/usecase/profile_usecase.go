package usecase

import (
	"context"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the data accepted by a profile update.
// Password and OldPassword are both optional; requesting a password change
// without the matching old password fails.
type UpdateProfileInput struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty" validate:"eqfield=Password"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	Show(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

package usecase

import (
	"context"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// AvatarUsecase defines the interface for replacing a user's avatar file.
type AvatarUsecase interface {
	// Update stores the uploaded file at tempPath as the user's avatar,
	// deleting any previous avatar file best-effort.
	Update(ctx context.Context, userID uuid.UUID, tempPath string) (*entity.User, error)
}

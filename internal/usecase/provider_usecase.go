package usecase

import (
	"context"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderUsecase lists the users eligible to be booked for appointments.
type ProviderUsecase interface {
	// List returns every provider except the requesting user, served from
	// cache when a fresh entry exists.
	List(ctx context.Context, exceptID uuid.UUID) ([]*entity.User, error)
}

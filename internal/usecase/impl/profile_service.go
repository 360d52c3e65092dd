package impl

import (
	"context"
	"log/slog"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	cache     service.CacheProvider
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	cache service.CacheProvider,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		cache:     cache,
		logger:    logger,
	}
}

// Show retrieves the profile of the given user.
func (srv *profileService) Show(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", slog.Any("userID", userID))

	// Single read, no transaction needed.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// Update modifies name and email, and optionally the password when the matching
// old password is supplied.
func (srv *profileService) Update(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", slog.Any("userID", userID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Load the user.
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		// 2. A changed email must not collide with another account.
		if input.Email != user.Email {
			if owner, err := userRepo.FindByEmail(ctx, input.Email); err == nil && owner.ID != user.ID {
				return domainerrors.ErrEmailAlreadyInUse.WrapMessage("profile update failed")
			} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email ownership")
			}
		}

		// 3. A password change requires the matching old password.
		if input.Password != "" {
			if input.OldPassword == "" || !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
				return errors.Wrap(domainerrors.ErrIncorrectPassword, "profile update failed")
			}

			hashedPassword, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash new password")
			}
			user.PasswordHash = hashedPassword
		}

		user.Name = input.Name
		user.Email = input.Email

		// 4. Persist. The unique email index still guards the race between the
		// ownership check and this write.
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		updatedUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Failed to execute profile update transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	invalidateProvidersCache(ctx, srv.cache, srv.logger)

	srv.logger.Debug("User profile updated", slog.Any("userID", userID))

	return updatedUser, nil
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "gobarber/internal/delivery/context"
	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// avatarService implements the AvatarUsecase interface.
type avatarService struct {
	userRepo repository.UserRepository
	storage  service.StorageProvider
	cache    service.CacheProvider
	logger   *slog.Logger
}

// NewAvatarService is the constructor for avatarService.
func NewAvatarService(
	userRepo repository.UserRepository,
	storage service.StorageProvider,
	cache service.CacheProvider,
	logger *slog.Logger,
) usecase.AvatarUsecase {
	return &avatarService{
		userRepo: userRepo,
		storage:  storage,
		cache:    cache,
		logger:   logger,
	}
}

func (srv *avatarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Update replaces the user's stored avatar with the uploaded file at tempPath.
func (srv *avatarService) Update(ctx context.Context, userID uuid.UUID, tempPath string) (*entity.User, error) {
	srv.log(ctx).Info("Updating user avatar", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "avatar update failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Deleting the previous avatar is best-effort cleanup: an orphaned file
	// must not block the new upload.
	if user.HasAvatar() {
		if err := srv.storage.DeleteFile(ctx, user.Avatar); err != nil {
			srv.log(ctx).Warn("Failed to delete old avatar file",
				slog.Any("userID", userID),
				slog.String("avatar", user.Avatar),
				slog.Any("error", err),
			)
		}
	}

	storedName, err := srv.storage.SaveFile(ctx, tempPath)
	if err != nil {
		srv.log(ctx).Error("Failed to save avatar file", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save avatar file")
	}

	user.Avatar = storedName
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user avatar")
	}

	invalidateProvidersCache(ctx, srv.cache, srv.log(ctx))

	srv.log(ctx).Debug("User avatar updated", slog.Any("userID", userID), slog.String("avatar", storedName))

	return user, nil
}

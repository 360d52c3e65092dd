package impl

import (
	"context"
	"log/slog"

	"gobarber/internal/domain/entity"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	userRepo repository.UserRepository
	cache    service.CacheProvider
	logger   *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(
	userRepo repository.UserRepository,
	cache service.CacheProvider,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	return &providerService{
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// List returns every provider except the requesting user. The full provider set
// is cached under a single key; the requester is filtered out per call so one
// entry serves all users and a single invalidation covers every mutation.
func (srv *providerService) List(ctx context.Context, exceptID uuid.UUID) ([]*entity.User, error) {
	var cached []*entity.User

	hit, err := srv.cache.Recover(ctx, service.ProvidersListCacheKey, &cached)
	if err != nil {
		// A broken cache degrades to a repository read.
		srv.logger.Warn("Failed to recover providers cache", slog.Any("error", err))
	}
	if hit && err == nil {
		srv.logger.Debug("Providers list served from cache", slog.Int("count", len(cached)))

		return filterProviders(cached, exceptID), nil
	}

	providers, err := srv.userRepo.FindAllProviders(ctx, uuid.Nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	if err := srv.cache.Save(ctx, service.ProvidersListCacheKey, providers); err != nil {
		srv.logger.Warn("Failed to save providers cache", slog.Any("error", err))
	}

	return filterProviders(providers, exceptID), nil
}

func filterProviders(providers []*entity.User, exceptID uuid.UUID) []*entity.User {
	if exceptID == uuid.Nil {
		return providers
	}

	filtered := make([]*entity.User, 0, len(providers))
	for _, p := range providers {
		if p.ID != exceptID {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

package impl

import (
	"context"
	"log/slog"

	"gobarber/internal/domain/service"
)

// invalidateProvidersCache drops the providers-list cache entry after a user
// mutation. Cache failures never abort the surrounding operation; a stale
// cache is preferable to a failed write.
func invalidateProvidersCache(ctx context.Context, cache service.CacheProvider, logger *slog.Logger) {
	if err := cache.Invalidate(ctx, service.ProvidersListCacheKey); err != nil {
		logger.Warn("Failed to invalidate providers cache", slog.Any("error", err))
	}
}

// Package cache provides CacheProvider implementations selected by configuration.
package cache

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"gobarber/config"
	"gobarber/internal/domain/service"
)

const (
	providerRedis  = "redis"
	providerMemory = "memory"
)

// CacheParams holds dependencies for CacheProvider, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCacheProvider creates a CacheProvider based on configuration
func NewCacheProvider(params CacheParams) (service.CacheProvider, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	// If the cache is not configured, fall back to the in-process store
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Cache not configured, using in-memory store")

		return NewMemoryCache(), nil
	}

	switch cfg.Provider {
	case providerMemory:
		logger.Info("Using in-memory cache")

		return NewMemoryCache(), nil

	case providerRedis:
		if cfg.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis cache", slog.String("addr", cfg.Addr))

		redisStore, err := NewRedisCache(cfg)
		if err != nil {
			return nil, err
		}

		// Register lifecycle hook to close the client on shutdown
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing redis cache client")

				return redisStore.Close()
			},
		})

		return redisStore, nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"gobarber/config"
	"gobarber/internal/domain/lifecycle"
)

// redisCache implements CacheProvider on a shared redis instance.
// Values are stored as JSON so any serializable type can pass through.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to redis and verifies the connection with a ping.
func NewRedisCache(cfg *config.CacheConfig) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Save marshals the value as JSON and stores it under the key with the configured TTL.
func (c *redisCache) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal cache value for %s", key)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to save cache key %s", key)
	}

	return nil
}

// Recover loads a key into target. It reports false without error on a miss.
func (c *redisCache) Recover(ctx context.Context, key string, target any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to recover cache key %s", key)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return false, errors.Wrapf(err, "failed to unmarshal cache value for %s", key)
	}

	return true, nil
}

// Invalidate removes a key. Deleting an absent key is a no-op.
func (c *redisCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to invalidate cache key %s", key)
	}

	return nil
}

// Close releases the underlying redis client.
func (c *redisCache) Close() error {
	return c.client.Close()
}

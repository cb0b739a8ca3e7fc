package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/radar-match/internal/config"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Get returns ("", nil) on a cache miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// KeyForProfile generates the Redis key for a cached profile summary.
func (c *RedisCache) KeyForProfile(userID string) string {
	return fmt.Sprintf("profile:summary:%s", userID)
}

// KeyForQuota generates the Redis hash key for one user's operation counter.
// The braces keep all of a user's quota keys in one cluster slot.
func (c *RedisCache) KeyForQuota(userID, operation string) string {
	return fmt.Sprintf("quota:{%s}:%s", userID, operation)
}

// KeyForQuotaIndex generates the set of operations a user has counters for.
func (c *RedisCache) KeyForQuotaIndex(userID string) string {
	return fmt.Sprintf("quota:{%s}:ops", userID)
}

// internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/minimarket/marketplace-backend/internal/config"
)

// Cache is a thin JSON read-through cache over Redis. When Redis is not
// configured every Get is a miss and writes are no-ops, so callers never
// have to branch on its presence.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg config.RedisConfig) *Cache {
	if cfg.Addr == "" {
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Cache{
		rdb: rdb,
		ttl: time.Duration(cfg.CacheTTL) * time.Second,
	}
}

// Get unmarshals the cached value into dest, reporting whether it was found.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache read failed")
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache entry malformed")
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).Warn("cache invalidation failed")
	}
}

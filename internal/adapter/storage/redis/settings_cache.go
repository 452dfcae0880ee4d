package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SettingsCache implements ports.SettingsCache: a short-TTL cache in front
// of the durable settings store, invalidated on write so admin tuning takes
// effect within one TTL at worst and immediately on the writing instance.
type SettingsCache struct {
	client *goredis.Client
	prefix string
}

// NewSettingsCache creates a new Redis-backed settings cache.
func NewSettingsCache(client *goredis.Client) *SettingsCache {
	return &SettingsCache{
		client: client,
		prefix: "settings:",
	}
}

// Get retrieves a cached setting. The bool is false on a miss.
func (c *SettingsCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis settings get: %w", err)
	}
	return val, true, nil
}

// Set caches a setting with TTL.
func (c *SettingsCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis settings set: %w", err)
	}
	return nil
}

// Invalidate drops a cached setting.
func (c *SettingsCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis settings invalidate: %w", err)
	}
	return nil
}

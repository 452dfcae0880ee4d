package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RefillLock implements ports.RefillLock using Redis SET NX. It prevents
// overlapping pool refill runs across process instances; the TTL bounds the
// hold time if a refill dies mid-run.
type RefillLock struct {
	client *goredis.Client
	key    string
}

// NewRefillLock creates a new Redis-backed refill lock.
func NewRefillLock(client *goredis.Client) *RefillLock {
	return &RefillLock{
		client: client,
		key:    "fairness:refill:lock",
	}
}

// TryAcquire returns true if the lock was free and is now held.
func (l *RefillLock) TryAcquire(ctx context.Context, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists: a refill is in flight
			return false, nil
		}
		return false, fmt.Errorf("redis refill lock: %w", err)
	}
	return result == "OK", nil
}

// Release drops the lock.
func (l *RefillLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, l.key).Err(); err != nil {
		return fmt.Errorf("redis refill unlock: %w", err)
	}
	return nil
}

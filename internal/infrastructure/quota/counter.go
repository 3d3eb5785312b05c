package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/EugeniaBD/AIWriteCheck/internal/infrastructure/cache"
)

// RedisCounter makes quota enforcement exact under concurrency: a slot is
// reserved with an atomic increment-and-check before the scorer runs, and
// released if the submission never commits. The counter is seeded from
// the store-derived count on first use, so enabling exact mode mid-period
// starts from the right number. Keys expire with the billing period.
type RedisCounter struct {
	client *cache.RedisClient
}

func NewRedisCounter(client *cache.RedisClient) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Reserve(ctx context.Context, ownerID int64, periodStart time.Time, limit, observed int64) (bool, error) {
	key := usageKey(ownerID, periodStart)
	periodEnd := periodStart.AddDate(0, 1, 0)

	if _, err := c.client.SetNX(ctx, key, observed, time.Until(periodEnd)).Result(); err != nil {
		return false, fmt.Errorf("failed to seed usage counter: %w", err)
	}

	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment usage counter: %w", err)
	}

	if limit >= 0 && n > limit {
		if err := c.client.Decr(ctx, key).Err(); err != nil {
			return false, fmt.Errorf("failed to roll back reservation: %w", err)
		}
		return false, nil
	}

	return true, nil
}

func (c *RedisCounter) Release(ctx context.Context, ownerID int64, periodStart time.Time) error {
	if err := c.client.Decr(ctx, usageKey(ownerID, periodStart)).Err(); err != nil {
		return fmt.Errorf("failed to release reservation: %w", err)
	}
	return nil
}

func usageKey(ownerID int64, periodStart time.Time) string {
	return fmt.Sprintf("usage:%d:%s", ownerID, periodStart.Format("2006-01"))
}

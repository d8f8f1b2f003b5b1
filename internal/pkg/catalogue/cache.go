package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/itinerary"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SnapshotCache stores the catalogue snapshot in Redis so concurrent
// searches share a single upstream fetch. The lock key guards cache
// population, never the search algorithm itself.
type SnapshotCache struct {
	redis RedisClient
}

func NewSnapshotCache(redis RedisClient) *SnapshotCache {
	return &SnapshotCache{
		redis: redis,
	}
}

func (c *SnapshotCache) GetLockKey() string {
	return "catalogue:lock:snapshot"
}

func (c *SnapshotCache) GetCacheKey() string {
	return "catalogue:cache:snapshot"
}

func (c *SnapshotCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *SnapshotCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *SnapshotCache) SetLegs(ctx context.Context, key string,
	legs []itinerary.Leg, expiration time.Duration,
) error {
	data, err := json.Marshal(legs)
	if err != nil {
		return fmt.Errorf("failed to marshal legs: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set legs: %w", err)
	}

	return nil
}

func (c *SnapshotCache) GetLegs(ctx context.Context, key string) ([]itinerary.Leg, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var legs []itinerary.Leg
	if err := json.Unmarshal(data, &legs); err != nil {
		return nil, err
	}

	return legs, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campstead/reservation-api/internal/api/metrics"
	"github.com/campstead/reservation-api/internal/core/domain"
)

const (
	spotCacheKey = "spots:list"
	spotCacheTTL = 30 * time.Second
)

// SpotCache caches the spot listing in Redis with a short TTL. A miss
// returns (nil, nil) so callers fall through to the store.
type SpotCache struct {
	client *redis.Client
}

// NewSpotCache creates a SpotCache wrapping the given Redis client.
func NewSpotCache(client *redis.Client) *SpotCache {
	return &SpotCache{client: client}
}

func (c *SpotCache) Get(ctx context.Context) ([]domain.Spot, error) {
	data, err := c.client.Get(ctx, spotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SpotCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("spot cache get: %w", err)
	}

	var spots []domain.Spot
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, fmt.Errorf("spot cache decode: %w", err)
	}

	metrics.SpotCacheTotal.WithLabelValues("hit").Inc()
	return spots, nil
}

func (c *SpotCache) Set(ctx context.Context, spots []domain.Spot) error {
	data, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("spot cache encode: %w", err)
	}
	return c.client.Set(ctx, spotCacheKey, data, spotCacheTTL).Err()
}

func (c *SpotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, spotCacheKey).Err()
}

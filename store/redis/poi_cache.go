package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	internalstore "github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

var _ internalstore.POICache = (*poiCache)(nil)

type poiCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewPOICache creates a per-region candidate pool cache with the given TTL.
func NewPOICache(client redis.UniversalClient, ttl time.Duration) internalstore.POICache {
	return &poiCache{client: client, ttl: ttl}
}

// GetPool returns the cached pool for a region. Any failure (missing key,
// Redis down, corrupt payload) is a cache miss, never an error the planner
// has to see.
func (c *poiCache) GetPool(ctx context.Context, region string) ([]types.PointOfInterest, bool) {
	raw, err := c.client.Get(ctx, poolKey(region)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().Warnw("POI cache read failed", "region", region, "error", err)
		}
		return nil, false
	}
	var pool []types.PointOfInterest
	if err := json.Unmarshal(raw, &pool); err != nil {
		logger.GetLogger().Warnw("Discarding corrupt POI cache entry", "region", region, "error", err)
		return nil, false
	}
	return pool, true
}

// SetPool caches a region's pool; failures are logged and swallowed.
func (c *poiCache) SetPool(ctx context.Context, region string, pool []types.PointOfInterest) {
	raw, err := json.Marshal(pool)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, poolKey(region), string(raw), c.ttl).Err(); err != nil {
		logger.GetLogger().Warnw("POI cache write failed", "region", region, "error", err)
	}
}

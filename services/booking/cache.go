package booking

import (
	"context"
	"encoding/json"
	"time"

	"glowdesk/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReferenceCache seeds reconciliation with previously resolved references so
// repeat dashboard loads skip refetching ids that have not changed.
type ReferenceCache interface {
	Load(ctx context.Context, stylistID models.ID) (serviceNames, slotTimes map[models.ID]string)
	Store(ctx context.Context, stylistID models.ID, serviceNames, slotTimes map[models.ID]string)
}

const (
	serviceCachePrefix = "refcache:services:"
	slotCachePrefix    = "refcache:slots:"
)

// RedisReferenceCache keeps per-stylist reference snapshots under a short
// TTL. Every failure degrades to a cache miss; the cache is never load
// bearing for correctness, only for fetch count.
type RedisReferenceCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (c *RedisReferenceCache) Load(ctx context.Context, stylistID models.ID) (map[models.ID]string, map[models.ID]string) {
	return c.loadKey(ctx, serviceCachePrefix+stylistID.String()),
		c.loadKey(ctx, slotCachePrefix+stylistID.String())
}

func (c *RedisReferenceCache) Store(ctx context.Context, stylistID models.ID, serviceNames, slotTimes map[models.ID]string) {
	c.storeKey(ctx, serviceCachePrefix+stylistID.String(), serviceNames)
	c.storeKey(ctx, slotCachePrefix+stylistID.String(), slotTimes)
}

func (c *RedisReferenceCache) loadKey(ctx context.Context, key string) map[models.ID]string {
	data, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var snapshot map[models.ID]string
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		// Corrupt snapshots self-heal by deletion.
		c.Client.Del(ctx, key)
		return nil
	}
	return snapshot
}

func (c *RedisReferenceCache) storeKey(ctx context.Context, key string, snapshot map[models.ID]string) {
	if len(snapshot) == 0 {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil && c.Logger != nil {
		c.Logger.Warn("failed to store reference cache snapshot", zap.String("key", key), zap.Error(err))
	}
}

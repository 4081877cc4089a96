package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// BackendPinger reports whether the external booking backend answers at all.
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is one snapshot of the gateway's dependencies: the booking
// backend it fronts, the Redis databases, and the audit store.
type HealthStatus struct {
	Backend   bool      `json:"backend"`
	Redis     []bool    `json:"redis"`
	Audit     bool      `json:"audit"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// CollectHealth probes every dependency once. The backend counts as healthy
// when it answers at all; an HTTP error status still means reachable.
func CollectHealth(ctx context.Context, backend BackendPinger, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now().UTC()}

	if backend != nil {
		status.Backend = backend.Ping(ctx) == nil
	}
	for _, client := range redisClients {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}
	if mongoClient != nil {
		status.Audit = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

// StartHealthMonitor takes an immediate snapshot and then refreshes it once
// a minute, so /health never serves a zero-value status for long.
func StartHealthMonitor(backend BackendPinger, redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		refresh := func() {
			snapshot := CollectHealth(ctx, backend, redisClients, mongoClient)
			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}

		refresh()
		for range ticker.C {
			refresh()
		}
	}()
}

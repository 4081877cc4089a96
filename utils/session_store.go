package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glowdesk/models"

	"github.com/go-redis/redis/v8"
)

const SessionPrefix = "session:"

// SaveSession stores a dashboard session in Redis under the token hash.
func SaveSession(ctx context.Context, client *redis.Client, tokenHash string, session models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := client.Set(ctx, SessionPrefix+tokenHash, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a dashboard session from Redis. A corrupt entry is
// deleted and reported as a miss so the caller treats it as unauthenticated.
func GetSession(ctx context.Context, client *redis.Client, tokenHash string) (*models.Session, error) {
	data, err := client.Get(ctx, SessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		client.Del(ctx, SessionPrefix+tokenHash)
		return nil, redis.Nil
	}
	return &session, nil
}

// DeleteSession removes a dashboard session from Redis.
func DeleteSession(ctx context.Context, client *redis.Client, tokenHash string) error {
	return client.Del(ctx, SessionPrefix+tokenHash).Err()
}

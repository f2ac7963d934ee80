package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore implements TokenStore backed by Redis, for clients that
// share a credential across processes or hosts. The credential lives under a
// single fixed key with an optional TTL.
type RedisTokenStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisTokenStore creates a Redis-backed token store. A zero ttl stores
// the credential without expiry.
func NewRedisTokenStore(client *redis.Client, key string, ttl time.Duration) (*RedisTokenStore, error) {
	if client == nil {
		return nil, ErrNoRedisClient
	}
	if key == "" {
		key = "panelkit:token"
	}
	return &RedisTokenStore{client: client, key: key, ttl: ttl}, nil
}

// Load retrieves the persisted credential. A missing key means no entry.
func (r *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load token from redis: %w", err)
	}
	return token, nil
}

// Save persists the credential.
func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save token to redis: %w", err)
	}
	return nil
}

// Clear removes the entry.
func (r *RedisTokenStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear token from redis: %w", err)
	}
	return nil
}

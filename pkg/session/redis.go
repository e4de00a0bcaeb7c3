package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"goppo-soppo/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a fixed TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

// NewRedisStoreWithClient is used by tests to point the store at miniredis.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create writes a token -> identity mapping with TTL and returns the token.
func (s *RedisStore) Create(ctx context.Context, identity entity.Identity) (string, error) {
	token := uuid.New().String()

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("marshal session identity: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Get resolves a token to its identity. Returns nil for unknown or
// expired tokens.
func (s *RedisStore) Get(ctx context.Context, token string) (*entity.Identity, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity entity.Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		return nil, fmt.Errorf("decode session identity: %w", err)
	}

	return &identity, nil
}

// Delete removes a token mapping. Deleting an absent token is a no-op.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Package cache provides a redis backed read-through cache for book lookups.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Store is the key/value surface the cache needs
type Store interface {
	// Get returns the value and whether the key was present
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisStore implements Store on a go-redis client
type RedisStore struct {
	rdb redis.UniversalClient
}

// NewRedisStore wraps an existing client
func NewRedisStore(rdb redis.UniversalClient) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// NewRedisClient creates a client from settings and checks that the server answers.
func NewRedisClient(ctx context.Context, settings config.CacheSettings) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", settings.Addr, err)
	}
	return rdb, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	return s.rdb.Del(ctx, keys...).Err()
}

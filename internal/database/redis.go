package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements the KeyValueStore interface for Redis
type RedisStore struct {
	client *redis.Client
	config Config
}

// NewRedisStore creates a new RedisStore instance
func NewRedisStore(cfg Config) *RedisStore {
	return &RedisStore{
		config: cfg,
	}
}

// Connect establishes a connection to Redis
func (s *RedisStore) Connect(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:        s.config.Addr,
		Password:    s.config.Password,
		DB:          s.config.DB,
		DialTimeout: s.config.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	s.client = client
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Ping checks the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrConnection
	}
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Get returns the value for key, or ErrNotFound when absent or expired
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if s.client == nil {
		return "", ErrConnection
	}

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return val, nil
}

// SetEx stores value under key with a fresh TTL
func (s *RedisStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.client == nil {
		return ErrConnection
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Exists reports whether key is present
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	if s.client == nil {
		return false, ErrConnection
	}

	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return n > 0, nil
}

// Scan returns a batch of keys matching pattern starting from cursor
func (s *RedisStore) Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	if s.client == nil {
		return nil, 0, ErrConnection
	}

	keys, next, err := s.client.Scan(ctx, cursor, pattern, count).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return keys, next, nil
}

package database

import (
	"context"
	"errors"
	"time"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested key does not exist or has expired.
	ErrNotFound = errors.New("key not found")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("store connection error")
)

// KeyValueStore defines the interface for the backing key-value store.
//
// The store provides atomicity only for single-key get/set; there are no
// multi-key transactions and no compare-and-swap. Callers that need to update
// part of a record must read the whole value, mutate it in memory, and write
// the whole value back.
type KeyValueStore interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// SetEx stores value under key with a fresh time-to-live. Writing an
	// existing key resets its TTL to the full window.
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error

	// Exists reports whether key is present (and unexpired).
	Exists(ctx context.Context, key string) (bool, error)

	// Scan returns up to count keys matching pattern starting from cursor,
	// plus the next cursor. A returned cursor of 0 means the scan is complete.
	Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error)
}

// Config holds store connection configuration
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

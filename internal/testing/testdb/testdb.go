// Package testdb provides an in-memory KeyValueStore fake for testing.
//
// The fake honors TTL semantics against an injectable clock and exposes
// failure-injection knobs so tests can exercise the repository's
// retry-with-verification loop and error handling without a real Redis:
//
//   - DropWrites: the next N SetEx calls report success but discard the
//     write, simulating a racing writer whose copy clobbered ours
//   - FailWrites / FailReads / FailScans: the next N calls return
//     database.ErrConnection
//   - ExistsOverride: replaces Exists entirely (e.g. to force id collisions)
//   - BeforeSet: hook invoked before each applied write, for interleaving a
//     competing write inside a read-modify-write cycle
//
// Usage:
//
//	store := testdb.New()
//	store.DropWrites = 1
//	repo := repository.NewEventRepository(store, 0)
package testdb

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/forgo/datematch/api/internal/database"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-memory database.KeyValueStore with TTL support.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]entry
	now  time.Time

	// Failure injection. Counters decrement as they fire.
	DropWrites int
	FailWrites int
	FailReads  int
	FailScans  int
	FailPings  int

	// ExistsOverride, when set, replaces the Exists implementation.
	ExistsOverride func(key string) (bool, error)

	// BeforeSet runs before each applied write, outside the store lock's
	// critical section for the hooked key's mutation.
	BeforeSet func(key string)

	// Call counters for asserting retry behavior.
	SetCalls int
	GetCalls int
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now(),
	}
}

// Advance moves the fake clock forward, expiring keys whose TTL has elapsed.
func (s *MemoryStore) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

// Connect is a no-op for the in-memory store.
func (s *MemoryStore) Connect(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Ping succeeds unless a failure is injected.
func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPings > 0 {
		s.FailPings--
		return database.ErrConnection
	}
	return nil
}

func (s *MemoryStore) live(key string) (entry, bool) {
	e, ok := s.data[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !s.now.Before(e.expiresAt) {
		delete(s.data, key)
		return entry{}, false
	}
	return e, true
}

// Get returns the value for key, or database.ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.GetCalls++
	if s.FailReads > 0 {
		s.FailReads--
		return "", database.ErrConnection
	}

	e, ok := s.live(key)
	if !ok {
		return "", database.ErrNotFound
	}
	return e.value, nil
}

// SetEx stores value under key with the given TTL, honoring injected failures.
func (s *MemoryStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	s.SetCalls++
	if s.FailWrites > 0 {
		s.FailWrites--
		s.mu.Unlock()
		return database.ErrConnection
	}
	if s.DropWrites > 0 {
		s.DropWrites--
		s.mu.Unlock()
		return nil
	}
	hook := s.BeforeSet
	s.mu.Unlock()

	if hook != nil {
		hook(key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now.Add(ttl)
	}
	s.data[key] = entry{value: value, expiresAt: expiresAt}
	return nil
}

// Exists reports whether key is present and unexpired.
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ExistsOverride != nil {
		return s.ExistsOverride(key)
	}
	_, ok := s.live(key)
	return ok, nil
}

// Scan returns up to count keys matching pattern starting at cursor. Only
// trailing-star patterns ("event:*") are supported, which is all the
// repository uses.
func (s *MemoryStore) Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailScans > 0 {
		s.FailScans--
		return nil, 0, database.ErrConnection
	}

	prefix := strings.TrimSuffix(pattern, "*")
	var matched []string
	for key := range s.data {
		if _, ok := s.live(key); !ok {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}

	start := int(cursor)
	if start >= len(matched) {
		return nil, 0, nil
	}
	end := start + int(count)
	if end >= len(matched) {
		return matched[start:], 0, nil
	}
	return matched[start:end], uint64(end), nil
}

// Raw returns the stored value for key without TTL bookkeeping, for
// asserting on persisted bytes.
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[key]
	return e.value, ok
}

// Package database provides the storage abstraction layer for datematch.
//
// This package defines the KeyValueStore interface that abstracts Redis
// operations, allowing for clean separation between business logic and data
// access. The repository layer is written against the interface so tests can
// run against an in-memory fake (see internal/testing/testdb).
//
// # Interface Design
//
// The KeyValueStore interface mirrors the handful of Redis primitives the
// system needs:
//   - Get/SetEx: whole-record read and TTL'd write (SetEx on an existing key
//     resets its TTL, which is how the rolling expiry works)
//   - Exists: id collision checks during event creation
//   - Scan: cursor-based key iteration for the live-event count
//
// There is no compare-and-swap and no multi-key transaction: the store
// guarantees atomicity only for single-key get/set. Concurrent writers
// to the same record are handled above this layer with read-back verification
// and retry (see repository.EventRepository.UpsertParticipantDates).
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: key does not exist or has expired
//   - ErrConnection: store unreachable or command failure
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	store := database.NewRedisStore(cfg)
//	store.Connect(ctx)
//	defer store.Close()
//
//	val, err := store.Get(ctx, "event:2h6jk")
package database

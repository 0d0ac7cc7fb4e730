// Package repository provides the data access layer for datematch.
//
// EventRepository is the sole owner of persisted event state: creation with
// collision-avoiding short ids, participant upserts, renames, removal, invite
// tracking, and the live-event count. Each event is one key ("event:<id>")
// holding the full JSON aggregate with a rolling 90-day TTL refreshed on every
// successful write.
//
// # Concurrency
//
// The backing store has no transactions and no compare-and-swap, so every
// mutation is a whole-record read-modify-write and concurrent writers to the
// same event can race. UpsertParticipantDates, the one hot path, is hit by
// every browser saving its date selection and mitigates this with bounded
// retry-with-verification: write, read back, confirm the target participant's
// fields survived, and retry the whole cycle with linear backoff if a racing
// writer clobbered them. This makes writes read-after-write consistent for a
// single participant updating itself; across distinct participants racing on
// one event it reduces, but does not eliminate, lost updates. See the method
// documentation for details.
package repository

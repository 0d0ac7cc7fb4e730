// Package model defines domain entities and data structures for the datematch API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Event: the shared scheduling poll, keyed by a short public id
//   - Participant: one voter within an event, keyed by a client-held visitor id
//
// An Event holds its participants inline; the whole aggregate is persisted as
// one JSON record. Exactly one participant carries isCreator=true, and
// participant ids are unique within an event.
//
// # JSON Serialization
//
// All models use camelCase json struct tags matching the persisted record
// layout and the wire contract:
//
//	type Participant struct {
//	    ID            string   `json:"id"`
//	    Name          string   `json:"name"`
//	    SelectedDates []string `json:"selectedDates"`
//	    IsCreator     bool     `json:"isCreator"`
//	}
//
// Calendar days are opaque YYYY-MM-DD strings with no timezone or time-of-day
// component; lexicographic order is chronological order.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model

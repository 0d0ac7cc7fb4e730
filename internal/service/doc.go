// Package service contains the business logic layer for datematch.
//
// EventService sits between the HTTP handlers and the repository: request
// fields are validated at the boundary (see the model request types) before
// any store access, repository outcomes are translated to the sentinel errors
// in errors.go, and every returned event snapshot carries its derived
// matching dates.
//
// MatchingDates is the consensus computation: a pure, storage-free function
// over an event snapshot returning the sorted days every current participant
// has selected. It lives here rather than in the repository because it reads
// a snapshot any caller may hold; it has no dependencies at all.
package service

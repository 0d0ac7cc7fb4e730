package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.
//
// Absent and unauthorized are deliberately conflated: a caller without a
// valid visitor id learns nothing about whether an event exists.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("event or participant not found")
)

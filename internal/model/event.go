package model

import (
	"sort"
	"time"
)

// Validation limits
const (
	MaxTitleLength    = 200
	MaxNameLength     = 100
	MaxEmailLength    = 254
	MaxSelectedDates  = 366
	CalendarDayLayout = "2006-01-02"
)

// Participant is one voter within an event, keyed by a client-held opaque id.
// The id is generated by the browser and never verified server-side; whoever
// presents it is that participant.
type Participant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SelectedDates []string `json:"selectedDates"`
	IsCreator     bool     `json:"isCreator"`
}

// Event is the shared scheduling poll, keyed by a short public id.
// It is persisted as a single JSON record; every mutation rewrites the whole
// record.
type Event struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	CreatorName   string        `json:"creatorName"`
	Participants  []Participant `json:"participants"`
	InvitedEmails []string      `json:"invitedEmails,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// EventWithMatches is the response shape for event reads and mutations:
// the event plus the computed list of days every participant has free.
type EventWithMatches struct {
	Event
	MatchingDates []string `json:"matchingDates"`
}

// FindParticipant returns the participant with the given id, or nil.
func (e *Event) FindParticipant(id string) *Participant {
	for i := range e.Participants {
		if e.Participants[i].ID == id {
			return &e.Participants[i]
		}
	}
	return nil
}

// Creator returns the participant with isCreator=true, or nil.
// Creator identity is always determined by the flag, never by list position.
func (e *Event) Creator() *Participant {
	for i := range e.Participants {
		if e.Participants[i].IsCreator {
			return &e.Participants[i]
		}
	}
	return nil
}

// IsCalendarDay reports whether s is a well-formed YYYY-MM-DD calendar day.
// Days carry no timezone or time component anywhere in the system.
func IsCalendarDay(s string) bool {
	if len(s) != len(CalendarDayLayout) {
		return false
	}
	_, err := time.Parse(CalendarDayLayout, s)
	return err == nil
}

// NormalizeDates returns a sorted copy of dates with duplicates removed.
// Selected dates are a set; persisting them sorted keeps comparisons and
// responses stable.
func NormalizeDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// ============================================================================
// Request Types
// ============================================================================

// CreateEventRequest is the body for POST /v1/events
type CreateEventRequest struct {
	Title       string `json:"title"`
	CreatorName string `json:"creatorName"`
}

// Validate checks the create request fields
func (r *CreateEventRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 200 characters or less"})
	}
	if r.CreatorName == "" {
		errors = append(errors, FieldError{Field: "creatorName", Message: "creatorName is required"})
	} else if len(r.CreatorName) > MaxNameLength {
		errors = append(errors, FieldError{Field: "creatorName", Message: "creatorName must be 100 characters or less"})
	}

	return errors
}

// UpsertDatesRequest is the body for POST /v1/events/{eventId}/dates.
// An unknown visitor id joins the event as a new participant; a known one has
// its name and date selection replaced.
type UpsertDatesRequest struct {
	VisitorID string   `json:"visitorId"`
	Name      string   `json:"name"`
	Dates     []string `json:"dates"`
}

// Validate checks the upsert request fields
func (r *UpsertDatesRequest) Validate() []FieldError {
	var errors []FieldError

	if r.VisitorID == "" {
		errors = append(errors, FieldError{Field: "visitorId", Message: "visitorId is required"})
	}
	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if r.Dates == nil {
		errors = append(errors, FieldError{Field: "dates", Message: "dates array is required"})
	} else if len(r.Dates) > MaxSelectedDates {
		errors = append(errors, FieldError{Field: "dates", Message: "dates must contain 366 entries or fewer"})
	} else {
		for _, d := range r.Dates {
			if !IsCalendarDay(d) {
				errors = append(errors, FieldError{Field: "dates", Message: "dates must be YYYY-MM-DD calendar days"})
				break
			}
		}
	}

	return errors
}

// RenameParticipantRequest is the body for PUT /v1/events/{eventId}/name
type RenameParticipantRequest struct {
	VisitorID string `json:"visitorId"`
	Name      string `json:"name"`
}

// Validate checks the rename request fields
func (r *RenameParticipantRequest) Validate() []FieldError {
	var errors []FieldError

	if r.VisitorID == "" {
		errors = append(errors, FieldError{Field: "visitorId", Message: "visitorId is required"})
	}
	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}

	return errors
}

// RenameEventRequest is the body for PUT /v1/events/{eventId}/title
type RenameEventRequest struct {
	VisitorID string `json:"visitorId"`
	Title     string `json:"title"`
}

// Validate checks the title rename request fields
func (r *RenameEventRequest) Validate() []FieldError {
	var errors []FieldError

	if r.VisitorID == "" {
		errors = append(errors, FieldError{Field: "visitorId", Message: "visitorId is required"})
	}
	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 200 characters or less"})
	}

	return errors
}

// RemoveParticipantRequest is the body for DELETE /v1/events/{eventId}/participant
type RemoveParticipantRequest struct {
	RequesterID   string `json:"requesterId"`
	ParticipantID string `json:"participantId"`
}

// Validate checks the removal request fields
func (r *RemoveParticipantRequest) Validate() []FieldError {
	var errors []FieldError

	if r.RequesterID == "" {
		errors = append(errors, FieldError{Field: "requesterId", Message: "requesterId is required"})
	}
	if r.ParticipantID == "" {
		errors = append(errors, FieldError{Field: "participantId", Message: "participantId is required"})
	}

	return errors
}

// InviteRequest is the body for POST /v1/events/{eventId}/invite
type InviteRequest struct {
	Email string `json:"email"`
}

// Validate checks the invite request fields
func (r *InviteRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if len(r.Email) > MaxEmailLength {
		errors = append(errors, FieldError{Field: "email", Message: "email must be 254 characters or less"})
	}

	return errors
}

// InviteResponse is returned by the invite endpoint. No email is actually
// sent; the caller shares the URL out of band.
type InviteResponse struct {
	Success  bool   `json:"success"`
	ShareURL string `json:"shareUrl"`
	Message  string `json:"message"`
}

// StatsResponse is returned by GET /v1/stats
type StatsResponse struct {
	Count int `json:"count"`
}

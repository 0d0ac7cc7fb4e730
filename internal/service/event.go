package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/forgo/datematch/api/internal/model"
	"github.com/forgo/datematch/api/internal/repository"
)

// EventRepositoryInterface defines the repository interface
type EventRepositoryInterface interface {
	Create(ctx context.Context, title, creatorName string) (*model.Event, error)
	Get(ctx context.Context, id string) (*model.Event, error)
	UpsertParticipantDates(ctx context.Context, eventID, visitorID, name string, dates []string) (*model.Event, error)
	RenameParticipant(ctx context.Context, eventID, visitorID, newName string) (*model.Event, error)
	RenameEvent(ctx context.Context, eventID, requesterID, newTitle string) (*model.Event, error)
	RemoveParticipant(ctx context.Context, eventID, requesterID, targetID string) (*model.Event, error)
	AddInvitedEmail(ctx context.Context, eventID, email string) (*model.Event, error)
	CountEvents(ctx context.Context) int
}

// EventService orchestrates event operations: it runs boundary validation
// before any store access, delegates persistence to the repository, and
// attaches the computed matching dates to every event it returns.
type EventService struct {
	repo    EventRepositoryInterface
	baseURL string
}

// EventServiceConfig holds the event service dependencies
type EventServiceConfig struct {
	Repo    EventRepositoryInterface
	BaseURL string // public base URL used to build share links
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		repo:    cfg.Repo,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// withMatches pairs an event snapshot with its derived matching dates.
func withMatches(event *model.Event) *model.EventWithMatches {
	return &model.EventWithMatches{
		Event:         *event,
		MatchingDates: MatchingDates(event),
	}
}

// translate maps repository failures to service errors. Corrupt records are
// logged and reported as not found: one unreadable record must not take down
// the caller, and there is nothing a client can do about it.
func translate(err error, fallback error) error {
	if errors.Is(err, repository.ErrCorruptRecord) {
		slog.Error("unreadable event record", slog.String("error", err.Error()))
		return fallback
	}
	return err
}

// Create allocates a new event with the requester as creator.
func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.EventWithMatches, error) {
	event, err := s.repo.Create(ctx, req.Title, req.CreatorName)
	if err != nil {
		return nil, err
	}
	return withMatches(event), nil
}

// Get fetches an event snapshot with its matching dates.
func (s *EventService) Get(ctx context.Context, id string) (*model.EventWithMatches, error) {
	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrEventNotFound)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return withMatches(event), nil
}

// UpsertDates saves a participant's name and date selection, joining the
// event when the visitor id is new.
func (s *EventService) UpsertDates(ctx context.Context, eventID string, req *model.UpsertDatesRequest) (*model.EventWithMatches, error) {
	event, err := s.repo.UpsertParticipantDates(ctx, eventID, req.VisitorID, req.Name, req.Dates)
	if err != nil {
		return nil, translate(err, ErrEventNotFound)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return withMatches(event), nil
}

// RenameParticipant updates a participant's display name.
func (s *EventService) RenameParticipant(ctx context.Context, eventID string, req *model.RenameParticipantRequest) (*model.EventWithMatches, error) {
	event, err := s.repo.RenameParticipant(ctx, eventID, req.VisitorID, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, translate(err, ErrParticipantNotFound)
	}
	if event == nil {
		return nil, ErrParticipantNotFound
	}
	return withMatches(event), nil
}

// RenameEvent updates the event title on behalf of the creator.
func (s *EventService) RenameEvent(ctx context.Context, eventID string, req *model.RenameEventRequest) (*model.EventWithMatches, error) {
	event, err := s.repo.RenameEvent(ctx, eventID, req.VisitorID, strings.TrimSpace(req.Title))
	if err != nil {
		return nil, translate(err, ErrEventNotFound)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return withMatches(event), nil
}

// RemoveParticipant removes a participant under the removal policy enforced
// by the repository.
func (s *EventService) RemoveParticipant(ctx context.Context, eventID string, req *model.RemoveParticipantRequest) (*model.EventWithMatches, error) {
	event, err := s.repo.RemoveParticipant(ctx, eventID, req.RequesterID, req.ParticipantID)
	if err != nil {
		return nil, translate(err, ErrEventNotFound)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return withMatches(event), nil
}

// Invite records an invited email on the event and returns the share link.
// No email is delivered; sharing the link is the caller's job.
func (s *EventService) Invite(ctx context.Context, eventID string, req *model.InviteRequest) (*model.InviteResponse, error) {
	email := strings.TrimSpace(req.Email)
	event, err := s.repo.AddInvitedEmail(ctx, eventID, email)
	if err != nil {
		return nil, translate(err, ErrEventNotFound)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	shareURL := fmt.Sprintf("%s/event/%s?email=%s", s.baseURL, event.ID, url.QueryEscape(email))
	return &model.InviteResponse{
		Success:  true,
		ShareURL: shareURL,
		Message:  fmt.Sprintf("Share this link with %s: %s", email, shareURL),
	}, nil
}

// Count returns the approximate number of live events. Best-effort; it
// never fails.
func (s *EventService) Count(ctx context.Context) int {
	return s.repo.CountEvents(ctx)
}

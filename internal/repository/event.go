package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/forgo/datematch/api/internal/database"
	"github.com/forgo/datematch/api/internal/model"
)

// ErrCorruptRecord indicates a persisted event failed to deserialize.
// Callers must treat the record as unreadable, not crash.
var ErrCorruptRecord = errors.New("corrupt event record")

const (
	eventKeyPrefix = "event:"

	// Lowercase letters and digits, excluding visually ambiguous characters
	// (0, o, l, 1). 31 symbols.
	idAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

	shortIDLength = 5
	longIDLength  = 8
	idAttempts    = 10

	// Bounded retry for the read-modify-write race in UpsertParticipantDates.
	// Backoff grows linearly: 100ms, 200ms, ...
	upsertAttempts   = 3
	retryBackoffStep = 100 * time.Millisecond

	scanBatchSize = 100

	// DefaultEventTTL is the rolling expiry window: 90 days from the most
	// recent successful write.
	DefaultEventTTL = 90 * 24 * time.Hour
)

// EventRepository owns all persisted event state. It is the only component
// that touches the key-value store, and every operation here is a whole-record
// read or write: the store has no partial-field update primitive.
type EventRepository struct {
	store database.KeyValueStore
	ttl   time.Duration
}

// NewEventRepository creates a new event repository. A zero ttl selects the
// default 90-day window.
func NewEventRepository(store database.KeyValueStore, ttl time.Duration) *EventRepository {
	if ttl == 0 {
		ttl = DefaultEventTTL
	}
	return &EventRepository{store: store, ttl: ttl}
}

func eventKey(id string) string {
	return eventKeyPrefix + id
}

// generateUniqueID allocates a short id not currently in use.
//
// The 5-character space over the 31-symbol alphabet holds 31^5 ≈ 28.6M ids.
// By the birthday bound, m live events see a collision with probability
// ≈ m²/(2·31^5), which is non-trivial at scale: ten fresh candidates are tried
// against the store, and if all collide the id escalates to 8 characters
// (31^8 ≈ 852 billion), driving collision probability near zero. The guarantee
// is probabilistic, not deterministic.
func (r *EventRepository) generateUniqueID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < idAttempts; attempt++ {
		id, err := gonanoid.Generate(idAlphabet, shortIDLength)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		exists, err := r.store.Exists(ctx, eventKey(id))
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}

	id, err := gonanoid.Generate(idAlphabet, longIDLength)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

// Create builds and persists a new event with the creator as its sole
// participant. The creator's participant id is the only participant id the
// server ever generates; all others arrive from clients.
func (r *EventRepository) Create(ctx context.Context, title, creatorName string) (*model.Event, error) {
	id, err := r.generateUniqueID(ctx)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:          id,
		Title:       title,
		CreatorName: creatorName,
		Participants: []model.Participant{{
			ID:            uuid.New().String(),
			Name:          creatorName,
			SelectedDates: []string{},
			IsCreator:     true,
		}},
		CreatedAt: time.Now().UTC(),
	}

	if err := r.save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get reads and deserializes the event record. Absent or expired records
// return (nil, nil); malformed records return ErrCorruptRecord.
func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	data, err := r.store.Get(ctx, eventKey(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, id, err)
	}
	return &event, nil
}

// save persists the whole event record, resetting the rolling expiry to the
// full window.
func (r *EventRepository) save(ctx context.Context, event *model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.ID, err)
	}
	return r.store.SetEx(ctx, eventKey(event.ID), string(data), r.ttl)
}

// UpsertParticipantDates replaces the named participant's name and date
// selection, appending a new non-creator participant when the visitor id is
// unknown. Returns (nil, nil) when the event is absent.
//
// The store offers whole-record get/set only, so two concurrent writers can
// each read a stale copy and one write can silently clobber the other. After
// each write the record is read back and the target participant's name and
// date set are compared against what was written; a mismatch means a racing
// writer won, and the whole read-modify-write cycle is retried after a
// linearly growing pause. When the retry budget runs out the current store
// contents are returned rather than an error: a stale-but-valid response
// beats a failed save for the single browser polling its own selections.
func (r *EventRepository) UpsertParticipantDates(ctx context.Context, eventID, visitorID, name string, dates []string) (*model.Event, error) {
	dates = model.NormalizeDates(dates)

	for attempt := 0; attempt < upsertAttempts; attempt++ {
		event, err := r.Get(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, nil
		}

		if p := event.FindParticipant(visitorID); p != nil {
			p.Name = name
			p.SelectedDates = dates
		} else {
			event.Participants = append(event.Participants, model.Participant{
				ID:            visitorID,
				Name:          name,
				SelectedDates: dates,
				IsCreator:     false,
			})
		}

		if err := r.save(ctx, event); err != nil {
			return nil, err
		}

		verified, err := r.Get(ctx, eventID)
		if err == nil && verified != nil {
			if p := verified.FindParticipant(visitorID); p != nil && p.Name == name && datesEqual(p.SelectedDates, dates) {
				return verified, nil
			}
		}

		time.Sleep(retryBackoffStep * time.Duration(attempt+1))
	}

	// Retry budget exhausted: surface whatever the store holds now.
	return r.Get(ctx, eventID)
}

// datesEqual compares two date selections as sets.
func datesEqual(a, b []string) bool {
	a = model.NormalizeDates(a)
	b = model.NormalizeDates(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RenameParticipant updates a participant's display name. Renaming the
// creator also updates the event's denormalized creatorName. Name edits are
// rare and never polled concurrently the way date toggles are, so this is a
// single read-modify-write without the retry loop.
func (r *EventRepository) RenameParticipant(ctx context.Context, eventID, visitorID, newName string) (*model.Event, error) {
	event, err := r.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	p := event.FindParticipant(visitorID)
	if p == nil {
		return nil, nil
	}

	p.Name = newName
	if p.IsCreator {
		event.CreatorName = newName
	}

	if err := r.save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// RenameEvent updates the event title. Only the creator may rename; any other
// requester gets (nil, nil), indistinguishable from a missing event.
func (r *EventRepository) RenameEvent(ctx context.Context, eventID, requesterID, newTitle string) (*model.Event, error) {
	event, err := r.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	requester := event.FindParticipant(requesterID)
	if requester == nil || !requester.IsCreator {
		return nil, nil
	}

	event.Title = newTitle

	if err := r.save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// RemoveParticipant removes a participant from the event. The creator may
// remove any non-creator participant, and a non-creator participant may
// remove themselves. The creator can never be removed: the event must always
// have exactly one. Any disallowed combination returns (nil, nil).
func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, requesterID, targetID string) (*model.Event, error) {
	event, err := r.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	target := event.FindParticipant(targetID)
	requester := event.FindParticipant(requesterID)
	if target == nil || requester == nil || target.IsCreator {
		return nil, nil
	}
	if !requester.IsCreator && requesterID != targetID {
		return nil, nil
	}

	kept := event.Participants[:0]
	for _, p := range event.Participants {
		if p.ID != targetID {
			kept = append(kept, p)
		}
	}
	event.Participants = kept

	if err := r.save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// AddInvitedEmail records an invited email address on the event. Duplicate
// invites are a no-op. No email is sent.
func (r *EventRepository) AddInvitedEmail(ctx context.Context, eventID, email string) (*model.Event, error) {
	event, err := r.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	for _, e := range event.InvitedEmails {
		if e == email {
			return event, nil
		}
	}
	event.InvitedEmails = append(event.InvitedEmails, email)

	if err := r.save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// CountEvents counts live (unexpired) event keys via a cursor scan. The count
// is approximate and best-effort: a scan failure logs a warning and returns
// whatever was counted so far, 0 on total failure. It never returns an error.
func (r *EventRepository) CountEvents(ctx context.Context) int {
	var count int
	var cursor uint64

	for {
		keys, next, err := r.store.Scan(ctx, cursor, eventKeyPrefix+"*", scanBatchSize)
		if err != nil {
			slog.Warn("event count scan failed", slog.String("error", err.Error()))
			return count
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			return count
		}
	}
}

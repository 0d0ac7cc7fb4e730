package service

import (
	"testing"

	"github.com/forgo/datematch/api/internal/model"
)

func eventWith(participants ...model.Participant) *model.Event {
	return &model.Event{
		ID:           "ev123",
		Title:        "Trip",
		Participants: participants,
	}
}

func assertDates(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMatchingDates_NoParticipants_Empty(t *testing.T) {
	t.Parallel()

	got := MatchingDates(eventWith())
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	assertDates(t, got, []string{})
}

func TestMatchingDates_SingleParticipant_Empty(t *testing.T) {
	t.Parallel()

	got := MatchingDates(eventWith(
		model.Participant{ID: "a", SelectedDates: []string{"2024-06-01", "2024-06-02"}},
	))
	assertDates(t, got, []string{})
}

func TestMatchingDates_StrictUnanimity(t *testing.T) {
	t.Parallel()

	got := MatchingDates(eventWith(
		model.Participant{ID: "a", SelectedDates: []string{"2024-06-01", "2024-06-02"}},
		model.Participant{ID: "b", SelectedDates: []string{"2024-06-01"}},
	))
	assertDates(t, got, []string{"2024-06-01"})
}

func TestMatchingDates_MajorityIsNotEnough(t *testing.T) {
	t.Parallel()

	// Two of three selected the day; unanimity requires all three.
	got := MatchingDates(eventWith(
		model.Participant{ID: "a", SelectedDates: []string{"2024-06-01"}},
		model.Participant{ID: "b", SelectedDates: []string{"2024-06-01"}},
		model.Participant{ID: "c", SelectedDates: []string{"2024-06-02"}},
	))
	assertDates(t, got, []string{})
}

func TestMatchingDates_SortedChronologically(t *testing.T) {
	t.Parallel()

	got := MatchingDates(eventWith(
		model.Participant{ID: "a", SelectedDates: []string{"2024-12-25", "2024-06-01", "2024-09-15"}},
		model.Participant{ID: "b", SelectedDates: []string{"2024-09-15", "2024-12-25", "2024-06-01"}},
	))
	assertDates(t, got, []string{"2024-06-01", "2024-09-15", "2024-12-25"})
}

func TestMatchingDates_ParticipantOrderIrrelevant(t *testing.T) {
	t.Parallel()

	a := model.Participant{ID: "a", SelectedDates: []string{"2024-06-01", "2024-06-03"}}
	b := model.Participant{ID: "b", SelectedDates: []string{"2024-06-01"}}
	c := model.Participant{ID: "c", SelectedDates: []string{"2024-06-01", "2024-06-03"}}

	forward := MatchingDates(eventWith(a, b, c))
	backward := MatchingDates(eventWith(c, b, a))

	assertDates(t, forward, []string{"2024-06-01"})
	assertDates(t, backward, forward)
}

func TestMatchingDates_DuplicateSelectionsDoNotFakeUnanimity(t *testing.T) {
	t.Parallel()

	// A duplicated entry in one persisted selection must count once, not
	// stand in for the missing second participant.
	got := MatchingDates(eventWith(
		model.Participant{ID: "a", SelectedDates: []string{"2024-06-01", "2024-06-01"}},
		model.Participant{ID: "b", SelectedDates: []string{"2024-06-02"}},
	))
	assertDates(t, got, []string{})
}

func TestMatchingDates_Idempotent(t *testing.T) {
	t.Parallel()

	event := eventWith(
		model.Participant{ID: "a", SelectedDates: []string{"2024-06-01", "2024-06-02"}},
		model.Participant{ID: "b", SelectedDates: []string{"2024-06-02", "2024-06-01"}},
	)

	first := MatchingDates(event)
	second := MatchingDates(event)

	assertDates(t, first, []string{"2024-06-01", "2024-06-02"})
	assertDates(t, second, first)
}

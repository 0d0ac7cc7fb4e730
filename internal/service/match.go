package service

import (
	"sort"

	"github.com/forgo/datematch/api/internal/model"
)

// MatchingDates derives the calendar days every current participant has
// selected. Pure function: no storage access, no side effects, deterministic
// for a given event snapshot regardless of participant ordering.
//
// Consensus is strict unanimity: a day qualifies only when its selection
// count equals the current participant count. With fewer than two
// participants there is no meaningful consensus and the result is empty.
// Output is sorted lexicographically, which for YYYY-MM-DD strings is
// chronological order.
func MatchingDates(event *model.Event) []string {
	matches := []string{}
	if len(event.Participants) < 2 {
		return matches
	}

	total := len(event.Participants)
	counts := make(map[string]int)
	for _, p := range event.Participants {
		// Guard against duplicate entries in a persisted selection: each
		// participant contributes at most one count per day.
		seen := make(map[string]struct{}, len(p.SelectedDates))
		for _, d := range p.SelectedDates {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			counts[d]++
		}
	}

	for d, n := range counts {
		if n == total {
			matches = append(matches, d)
		}
	}
	sort.Strings(matches)
	return matches
}

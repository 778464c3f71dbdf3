package state

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/remtui/rem/internal/reminders"
)

// Scope selects the data source a search runs against.
type Scope int

const (
	// ScopeLocal filters the items of a single collection.
	ScopeLocal Scope = iota
	// ScopeGlobal filters the union of items across all collections.
	ScopeGlobal
)

// EscapeWindow is the interval within which a second Escape upgrades an
// exit-keep-results into a full clear.
const EscapeWindow = time.Second

// EscapeOutcome reports what an Escape press did to the search state.
type EscapeOutcome int

const (
	// EscapeNone: escape had no search to act on.
	EscapeNone EscapeOutcome = iota
	// EscapeKept: search mode exited, query and results retained.
	EscapeKept
	// EscapeCleared: second escape within the window, everything reset.
	EscapeCleared
)

// Search holds the query, scope, and activity state of the search engine.
// Filtering itself is pure: FilterItems and FilterGlobal derive views without
// mutating the source slices.
type Search struct {
	Active     bool
	Query      string
	Scope      Scope
	HasResults bool

	lastEscape time.Time
	escapeSet  bool
}

// Start activates search in the given scope with an empty query.
func (s *Search) Start(scope Scope) {
	s.Active = true
	s.Scope = scope
	s.Query = ""
	s.HasResults = false
	s.escapeSet = false
}

// PushChar appends a character to the query. No-op while inactive.
func (s *Search) PushChar(r rune) {
	if !s.Active {
		return
	}
	s.Query += string(r)
	s.HasResults = s.Query != ""
}

// PopChar removes the last character of the query. No-op while inactive or
// when the query is already empty.
func (s *Search) PopChar() {
	if !s.Active || s.Query == "" {
		return
	}
	runes := []rune(s.Query)
	s.Query = string(runes[:len(runes)-1])
	s.HasResults = s.Query != ""
}

// ExitKeepResults leaves search mode but retains the query so the filtered
// view stays in place.
func (s *Search) ExitKeepResults() {
	s.Active = false
}

// Clear resets every field to its initial state.
func (s *Search) Clear() {
	s.Active = false
	s.Query = ""
	s.Scope = ScopeLocal
	s.HasResults = false
	s.escapeSet = false
}

// Escape applies the double-escape rule: a second press within EscapeWindow
// of the previous one clears everything; otherwise search mode exits keeping
// its results and the timer is armed. Returns EscapeNone when there was
// neither an active search nor a retained query to act on.
func (s *Search) Escape(now time.Time) EscapeOutcome {
	if s.escapeSet && now.Sub(s.lastEscape) < EscapeWindow {
		s.Clear()
		return EscapeCleared
	}
	if !s.Active && s.Query == "" {
		return EscapeNone
	}
	s.lastEscape = now
	s.escapeSet = true
	if s.Active {
		s.ExitKeepResults()
	}
	return EscapeKept
}

// EscapeArmed reports whether a prior Escape within the window makes the next
// one a full clear.
func (s *Search) EscapeArmed(now time.Time) bool {
	return s.escapeSet && now.Sub(s.lastEscape) < EscapeWindow
}

func (s *Search) matches(it reminders.Item, showCompleted bool) bool {
	if it.Completed && !showCompleted {
		return false
	}
	if s.Query == "" {
		return true
	}
	q := strings.ToLower(s.Query)
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	return it.Notes != "" && strings.Contains(strings.ToLower(it.Notes), q)
}

// FilterItems returns the items visible under the current query and the
// show-completed flag. Source order is preserved.
func (s *Search) FilterItems(items []reminders.Item, showCompleted bool) []reminders.Item {
	out := make([]reminders.Item, 0, len(items))
	for _, it := range items {
		if s.matches(it, showCompleted) {
			out = append(out, it)
		}
	}
	return out
}

// FilterGlobal is FilterItems over the global index.
func (s *Search) FilterGlobal(entries []reminders.GlobalEntry, showCompleted bool) []reminders.GlobalEntry {
	out := make([]reminders.GlobalEntry, 0, len(entries))
	for _, e := range entries {
		if s.matches(e.Item, showCompleted) {
			out = append(out, e)
		}
	}
	return out
}

// BestMatchIndex ranks the filtered titles against the query and returns the
// index of the closest match, so confirming a search can land the cursor on
// the most likely target. Falls back to 0; -1 for an empty slice.
func BestMatchIndex(titles []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(titles) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(titles) {
		return 0
	}
	return best.OriginalIndex
}

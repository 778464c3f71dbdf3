package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCollectionsViewShowsNamesAndCounts(t *testing.T) {
	h, _, _ := newTestHarness(t)
	view := h.View()
	if !strings.Contains(view, "Inbox") || !strings.Contains(view, "Errands") {
		t.Fatalf("expected collection names, got:\n%s", view)
	}
	if !strings.Contains(view, "3 reminders") || !strings.Contains(view, "1 reminder") {
		t.Fatalf("expected pluralised counts, got:\n%s", view)
	}
	if !strings.Contains(view, "▶") {
		t.Fatalf("expected selection marker, got:\n%s", view)
	}
}

func TestItemsViewShowsCheckboxes(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Key(tea.KeyEnter)
	h.Type("h")
	view := h.View()
	if !strings.Contains(view, "☐") || !strings.Contains(view, "☑") {
		t.Fatalf("expected both checkbox states, got:\n%s", view)
	}
}

func TestSearchBarRendersQuery(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Key(tea.KeyEnter)
	h.Type("/dent")
	view := h.View()
	if !strings.Contains(view, "dent") {
		t.Fatalf("expected query in search bar, got:\n%s", view)
	}
	if !strings.Contains(view, "Call dentist") {
		t.Fatalf("expected matching item, got:\n%s", view)
	}
}

func TestEmptyFilterMessageNamesQuery(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Key(tea.KeyEnter)
	h.Type("/zzz")
	view := h.View()
	if !strings.Contains(view, `No reminders match "zzz"`) {
		t.Fatalf("expected empty-filter message, got:\n%s", view)
	}
}

func TestCreateFormRendersFields(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Type("c")
	view := h.View()
	for _, label := range []string{"Title", "Notes", "Due", "List", "Priority"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %q label, got:\n%s", label, view)
		}
	}
	if !strings.Contains(view, "Inbox") {
		t.Fatalf("expected preselected list name, got:\n%s", view)
	}
}

func TestViewClipsToWidth(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 10, Height: 20})
	view := h.View()
	for _, line := range strings.Split(view, "\n") {
		if plain := stripANSI(line); len([]rune(plain)) > 10 {
			t.Fatalf("expected lines clipped to 10 cells, got %q", plain)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

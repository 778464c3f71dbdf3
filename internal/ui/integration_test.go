package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/reminders"
	"github.com/remtui/rem/internal/store"
)

func newTestHarness(t *testing.T) (*Harness, *store.Memory, *fakeClock) {
	t.Helper()
	mem := store.NewMemory(
		[]reminders.Collection{
			{ID: "inbox", Name: "Inbox", Color: "#1E6FFF"},
			{ID: "errands", Name: "Errands", Color: "#2ECC40"},
		},
		map[string][]reminders.Item{
			"inbox": {
				{ID: "1", Title: "Buy groceries"},
				{ID: "2", Title: "Call dentist", Notes: "Reschedule the appointment"},
				{ID: "3", Title: "Buy stamps", Completed: true},
			},
			"errands": {
				{ID: "4", Title: "Water plants"},
			},
		},
	)
	collections, err := mem.Collections(context.Background())
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	clock := newFakeClock()
	session := NewSession(collections, clock.now)
	model := NewModel(mem, session, nil, false)
	return NewHarness(model), mem, clock
}

func TestOpenCollectionShowsItems(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Key(tea.KeyEnter)

	session := h.Model().Session()
	if session.View().Kind != ViewItems {
		t.Fatalf("expected item view, got %v", session.View().Kind)
	}
	view := h.View()
	if !strings.Contains(view, "Buy groceries") || !strings.Contains(view, "Call dentist") {
		t.Fatalf("expected inbox items rendered, got:\n%s", view)
	}
	if strings.Contains(view, "Buy stamps") {
		t.Fatalf("expected completed item hidden, got:\n%s", view)
	}
}

func TestToggleRoundTripPreservesOrder(t *testing.T) {
	h, mem, _ := newTestHarness(t)
	h.Key(tea.KeyEnter)

	// Complete the first item; it disappears from the default view.
	h.Key(tea.KeySpace)
	view := h.View()
	if strings.Contains(view, "Buy groceries") {
		t.Fatalf("expected completed item hidden, got:\n%s", view)
	}

	// Reveal completed and toggle it back.
	h.Type("h")
	view = h.View()
	if !strings.Contains(view, "Buy groceries") {
		t.Fatalf("expected completed item visible after h, got:\n%s", view)
	}
	h.Key(tea.KeySpace)

	items, err := mem.Items(context.Background(), "inbox")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if items[0].ID != "1" || items[0].Completed {
		t.Fatalf("expected item 1 incomplete and first, got %#v", items[0])
	}
}

func TestDeleteChordRemovesFromStore(t *testing.T) {
	h, mem, clock := newTestHarness(t)
	h.Key(tea.KeyEnter)

	h.Type("d")
	clock.advance(200 * time.Millisecond)
	h.Type("d")

	items, err := mem.Items(context.Background(), "inbox")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	for _, it := range items {
		if it.ID == "1" {
			t.Fatalf("expected item 1 deleted, still present: %#v", items)
		}
	}
}

func TestGlobalSearchAcrossCollections(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Type("/")

	session := h.Model().Session()
	if !session.View().Global {
		t.Fatalf("expected global view, got %#v", session.View())
	}
	view := h.View()
	if !strings.Contains(view, "Water plants") || !strings.Contains(view, "Errands") {
		t.Fatalf("expected entries from all lists with names, got:\n%s", view)
	}

	h.Type("buy")
	view = h.View()
	if !strings.Contains(view, "Buy groceries") {
		t.Fatalf("expected matching entry, got:\n%s", view)
	}
	if strings.Contains(view, "Water plants") {
		t.Fatalf("expected non-matching entry filtered, got:\n%s", view)
	}
}

func TestCreateReminderEndToEnd(t *testing.T) {
	h, mem, _ := newTestHarness(t)
	h.Key(tea.KeyEnter)
	h.Type("c")
	h.Type("Buy cheese")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	items, err := mem.Items(context.Background(), "inbox")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	found := false
	for _, it := range items {
		if it.Title == "Buy cheese" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected created reminder in store, got %#v", items)
	}
	view := h.View()
	if !strings.Contains(view, "Buy cheese") {
		t.Fatalf("expected refreshed view to show the new reminder, got:\n%s", view)
	}
}

func TestStoreErrorSurfacesInStatus(t *testing.T) {
	h, _, _ := newTestHarness(t)
	// Point the session at a collection the store does not know.
	h.Model().Session().SetCollections([]reminders.Collection{{ID: "ghost", Name: "Ghost"}})
	h.Key(tea.KeyEnter)

	view := h.View()
	if !strings.Contains(view, "❌") {
		t.Fatalf("expected error in status log, got:\n%s", view)
	}
}

func TestQuitStopsRendering(t *testing.T) {
	h, _, _ := newTestHarness(t)
	h.Type("q")
	if view := h.View(); view != "" {
		t.Fatalf("expected empty view after quit, got %q", view)
	}
}

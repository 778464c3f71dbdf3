package store

import (
	"context"
	"testing"

	"github.com/remtui/rem/internal/reminders"
)

func newTestMemory() *Memory {
	return NewMemory(
		[]reminders.Collection{{ID: "a", Name: "Inbox"}},
		map[string][]reminders.Item{
			"a": {
				{ID: "1", Title: "First"},
				{ID: "2", Title: "Second"},
			},
		},
	)
}

func TestMemoryCollectionsRefreshCounts(t *testing.T) {
	m := newTestMemory()
	cols, err := m.Collections(context.Background())
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if cols[0].Count != 2 {
		t.Fatalf("expected count 2, got %d", cols[0].Count)
	}

	if err := m.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cols, _ = m.Collections(context.Background())
	if cols[0].Count != 1 {
		t.Fatalf("expected count 1 after delete, got %d", cols[0].Count)
	}
}

func TestMemoryToggleRoundTrip(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()
	if err := m.Toggle(ctx, "1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	items, _ := m.Items(ctx, "a")
	if !items[0].Completed {
		t.Fatal("expected item completed after toggle")
	}
	if err := m.Toggle(ctx, "1"); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	items, _ = m.Items(ctx, "a")
	if items[0].Completed {
		t.Fatal("expected item incomplete after second toggle")
	}
	if items[0].ID != "1" || items[1].ID != "2" {
		t.Fatalf("expected order preserved, got %#v", items)
	}
}

func TestMemoryCreateAssignsID(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()
	err := m.Create(ctx, reminders.NewItem{Title: "Third", CollectionID: "a", Priority: 12})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	items, _ := m.Items(ctx, "a")
	last := items[len(items)-1]
	if last.ID == "" || last.Title != "Third" {
		t.Fatalf("unexpected created item %#v", last)
	}
	if last.Priority != reminders.MaxPriority {
		t.Fatalf("expected priority clamped, got %d", last.Priority)
	}
}

func TestMemoryUnknownIDs(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()
	if _, err := m.Items(ctx, "ghost"); err == nil {
		t.Fatal("expected error for unknown collection")
	}
	if err := m.Toggle(ctx, "ghost"); err == nil {
		t.Fatal("expected error for unknown reminder")
	}
	if err := m.Create(ctx, reminders.NewItem{Title: "x", CollectionID: "ghost"}); err == nil {
		t.Fatal("expected error for unknown target collection")
	}
}

func TestMemoryAllItemsFollowsCollectionOrder(t *testing.T) {
	m := NewMemory(
		[]reminders.Collection{
			{ID: "a", Name: "Inbox"},
			{ID: "b", Name: "Errands"},
		},
		map[string][]reminders.Item{
			"a": {{ID: "1", Title: "First"}},
			"b": {{ID: "2", Title: "Second"}},
		},
	)
	entries, err := m.AllItems(context.Background())
	if err != nil {
		t.Fatalf("all items: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].CollectionName != "Inbox" || entries[1].CollectionName != "Errands" {
		t.Fatalf("expected collection order preserved, got %#v", entries)
	}
}

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/remtui/rem/internal/reminders"
)

// Memory is an in-process store used by demo mode and tests. It is safe for
// concurrent use because the collection watcher polls it from its own
// goroutine.
type Memory struct {
	mu          sync.Mutex
	collections []reminders.Collection
	items       map[string][]reminders.Item
	nextID      int
}

// NewMemory builds a store over the given collections and their items, keyed
// by collection id.
func NewMemory(collections []reminders.Collection, items map[string][]reminders.Item) *Memory {
	m := &Memory{
		collections: append([]reminders.Collection(nil), collections...),
		items:       make(map[string][]reminders.Item, len(items)),
		nextID:      1,
	}
	for id, list := range items {
		m.items[id] = append([]reminders.Item(nil), list...)
	}
	m.refreshCounts()
	return m
}

// NewDemo seeds a Memory store with a small fixed data set.
func NewDemo() *Memory {
	return NewMemory(
		[]reminders.Collection{
			{ID: "inbox", Name: "Inbox", Color: "#1E6FFF"},
			{ID: "errands", Name: "Errands", Color: "#2ECC40"},
		},
		map[string][]reminders.Item{
			"inbox": {
				{ID: "demo-1", Title: "Review pull requests", Priority: 2},
				{ID: "demo-2", Title: "Write release notes", Notes: "v0.3 changelog", Priority: 1},
				{ID: "demo-3", Title: "File expense report", Completed: true},
			},
			"errands": {
				{ID: "demo-4", Title: "Buy groceries", Notes: "milk, eggs"},
				{ID: "demo-5", Title: "Pick up dry cleaning", DueDate: "Friday"},
			},
		},
	)
}

func (m *Memory) refreshCounts() {
	for i := range m.collections {
		m.collections[i].Count = uint32(len(m.items[m.collections[i].ID]))
	}
}

// Collections implements Store.
func (m *Memory) Collections(ctx context.Context) ([]reminders.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCounts()
	return append([]reminders.Collection(nil), m.collections...), nil
}

// Items implements Store.
func (m *Memory) Items(ctx context.Context, collectionID string) ([]reminders.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list, ok := m.items[collectionID]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collectionID)
	}
	return append([]reminders.Item(nil), list...), nil
}

// AllItems implements Store.
func (m *Memory) AllItems(ctx context.Context) ([]reminders.GlobalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []reminders.GlobalEntry
	for _, c := range m.collections {
		for _, it := range m.items[c.ID] {
			out = append(out, reminders.GlobalEntry{Item: it, CollectionName: c.Name})
		}
	}
	return out, nil
}

// Toggle implements Store.
func (m *Memory) Toggle(ctx context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, list := range m.items {
		for i := range list {
			if list[i].ID == itemID {
				list[i].Completed = !list[i].Completed
				m.items[id] = list
				return nil
			}
		}
	}
	return fmt.Errorf("unknown reminder %q", itemID)
}

// Delete implements Store.
func (m *Memory) Delete(ctx context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, list := range m.items {
		for i := range list {
			if list[i].ID == itemID {
				m.items[id] = append(list[:i:i], list[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("unknown reminder %q", itemID)
}

// Create implements Store.
func (m *Memory) Create(ctx context.Context, item reminders.NewItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.CollectionID]; !ok {
		return fmt.Errorf("unknown collection %q", item.CollectionID)
	}
	id := fmt.Sprintf("mem-%d", m.nextID)
	m.nextID++
	m.items[item.CollectionID] = append(m.items[item.CollectionID], reminders.Item{
		ID:       id,
		Title:    item.Title,
		Notes:    item.Notes,
		Priority: reminders.ClampPriority(item.Priority),
		DueDate:  item.DueDate,
	})
	return nil
}

// Permission implements Store; the in-memory store is always accessible.
func (m *Memory) Permission(ctx context.Context) (Permission, error) {
	return PermissionAuthorized, nil
}

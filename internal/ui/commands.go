package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/reminders"
	"github.com/remtui/rem/internal/ui/command"
)

type collectionsLoadedMsg struct {
	collections []reminders.Collection
}

type itemsLoadedMsg struct {
	collectionID string
	items        []reminders.Item
}

type globalLoadedMsg struct {
	entries []reminders.GlobalEntry
}

func (m *Model) loadCollectionsCmd() tea.Cmd {
	return m.bus.Execute(command.Request{Op: "collections", Run: func(ctx context.Context) (tea.Msg, error) {
		collections, err := m.store.Collections(ctx)
		if err != nil {
			return nil, err
		}
		return collectionsLoadedMsg{collections: collections}, nil
	}})
}

func (m *Model) loadItemsCmd(collectionID string) tea.Cmd {
	return m.bus.Execute(command.Request{Op: "items", Run: func(ctx context.Context) (tea.Msg, error) {
		items, err := m.store.Items(ctx, collectionID)
		if err != nil {
			return nil, err
		}
		return itemsLoadedMsg{collectionID: collectionID, items: items}, nil
	}})
}

func (m *Model) loadAllCmd() tea.Cmd {
	return m.bus.Execute(command.Request{Op: "all-items", Run: func(ctx context.Context) (tea.Msg, error) {
		entries, err := m.store.AllItems(ctx)
		if err != nil {
			return nil, err
		}
		return globalLoadedMsg{entries: entries}, nil
	}})
}

// mutateCmd runs a store mutation and then re-fetches the data behind the
// view active at dispatch time, so the UI reflects the change without a
// manual refresh.
func (m *Model) mutateCmd(op string, mutate func(context.Context) error) tea.Cmd {
	view := m.session.View()
	return m.bus.Execute(command.Request{Op: op, Run: func(ctx context.Context) (tea.Msg, error) {
		if err := mutate(ctx); err != nil {
			return nil, err
		}
		switch {
		case view.Kind == ViewItems && view.Global:
			entries, err := m.store.AllItems(ctx)
			if err != nil {
				return nil, err
			}
			return globalLoadedMsg{entries: entries}, nil
		case view.Kind == ViewItems:
			items, err := m.store.Items(ctx, view.CollectionID)
			if err != nil {
				return nil, err
			}
			return itemsLoadedMsg{collectionID: view.CollectionID, items: items}, nil
		default:
			collections, err := m.store.Collections(ctx)
			if err != nil {
				return nil, err
			}
			return collectionsLoadedMsg{collections: collections}, nil
		}
	}})
}

func (m *Model) toggleCmd(itemID string) tea.Cmd {
	return m.mutateCmd("toggle", func(ctx context.Context) error {
		return m.store.Toggle(ctx, itemID)
	})
}

func (m *Model) deleteCmd(itemID string) tea.Cmd {
	return m.mutateCmd("delete", func(ctx context.Context) error {
		return m.store.Delete(ctx, itemID)
	})
}

func (m *Model) createCmd(item reminders.NewItem) tea.Cmd {
	return m.mutateCmd("create", func(ctx context.Context) error {
		return m.store.Create(ctx, item)
	})
}

func (m *Model) refreshCmd() tea.Cmd {
	view := m.session.View()
	switch {
	case view.Kind == ViewItems && view.Global:
		return m.loadAllCmd()
	case view.Kind == ViewItems:
		return m.loadItemsCmd(view.CollectionID)
	default:
		return m.loadCollectionsCmd()
	}
}

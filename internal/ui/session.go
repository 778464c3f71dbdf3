package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/logging/events"
	"github.com/remtui/rem/internal/reminders"
	"github.com/remtui/rem/internal/ui/state"
)

// ViewKind identifies the active screen.
type ViewKind int

const (
	ViewLoading ViewKind = iota
	ViewCollections
	ViewItems
	ViewCreate
)

// View is the active screen plus, for item views, the scope it shows:
// one collection or the global union across all of them.
type View struct {
	Kind         ViewKind
	Global       bool
	CollectionID string
}

func viewName(v View) string {
	switch v.Kind {
	case ViewLoading:
		return "loading"
	case ViewCollections:
		return "collections"
	case ViewItems:
		if v.Global {
			return "items:global"
		}
		return "items:" + v.CollectionID
	case ViewCreate:
		return "create"
	default:
		return "unknown"
	}
}

// maxStatusLines bounds the rolling status log.
const maxStatusLines = 5

// Session is the interactive core: it owns the view stack, the search and
// chord state, the cursors, and the create form, and it queues intents for
// the host to fulfil. It performs no I/O itself; data arrives through the
// setters and actions leave through Drain.
type Session struct {
	now func() time.Time

	view     View
	returnTo View

	collections []reminders.Collection
	items       []reminders.Item
	global      []reminders.GlobalEntry

	search        state.Search
	chords        state.KeySequence
	showCompleted bool

	collectionList state.List
	itemList       state.List

	form *state.Form

	status  []string
	intents []reminders.Intent
}

// NewSession builds a session over the given collections. With none known
// yet it starts on the loading screen and waits for SetCollections.
func NewSession(collections []reminders.Collection, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		now:            now,
		collections:    collections,
		collectionList: state.NewList(len(collections)),
		itemList:       state.NewList(0),
	}
	if len(collections) > 0 {
		s.view = View{Kind: ViewCollections}
	} else {
		s.view = View{Kind: ViewLoading}
	}
	return s
}

// View returns the active view.
func (s *Session) View() View { return s.view }

// ShowCompleted reports whether completed reminders are visible.
func (s *Session) ShowCompleted() bool { return s.showCompleted }

// SetShowCompleted sets the visibility of completed reminders, normally the
// startup default from configuration.
func (s *Session) SetShowCompleted(v bool) {
	s.showCompleted = v
	s.reclampItems()
}

// Status returns the rolling status log, oldest first.
func (s *Session) Status() []string { return s.status }

// Drain returns the queued intents and empties the queue.
func (s *Session) Drain() []reminders.Intent {
	out := s.intents
	s.intents = nil
	return out
}

func (s *Session) push(intent reminders.Intent) {
	s.intents = append(s.intents, intent)
	events.UI.Intent(fmt.Sprintf("%T", intent))
}

func (s *Session) setView(v View) {
	if v == s.view {
		return
	}
	events.UI.ViewChange(viewName(s.view), viewName(v))
	s.view = v
}

// AppendStatus adds a line to the status log, evicting the oldest once the
// log is full.
func (s *Session) AppendStatus(msg string) {
	s.status = append(s.status, msg)
	if len(s.status) > maxStatusLines {
		s.status = s.status[len(s.status)-maxStatusLines:]
	}
	events.UI.Status(msg)
}

// HandleKey routes one keypress to the active view. The returned command is
// non-nil only when the create form's text input needs to schedule work.
func (s *Session) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.view.Kind {
	case ViewLoading:
		s.handleLoadingKey(msg)
	case ViewCollections:
		s.handleCollectionsKey(msg)
	case ViewItems:
		s.handleItemsKey(msg)
	case ViewCreate:
		return s.handleCreateKey(msg)
	}
	return nil
}

func (s *Session) handleLoadingKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		s.push(reminders.Quit{})
	}
}

func (s *Session) handleCollectionsKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		s.push(reminders.Quit{})
	case "up", "k":
		if s.collectionList.MoveUp() {
			events.UI.Cursor(viewName(s.view), s.collectionList.Cursor)
		}
	case "down", "j":
		if s.collectionList.MoveDown() {
			events.UI.Cursor(viewName(s.view), s.collectionList.Cursor)
		}
	case "enter":
		s.enterCollection()
	case "c":
		var preselect string
		if idx, ok := s.collectionList.Selected(); ok {
			preselect = s.collections[idx].ID
		}
		s.openForm(preselect)
	case "h":
		s.showCompleted = !s.showCompleted
	case "r":
		s.push(reminders.Refresh{})
	case "/":
		s.startGlobalSearch()
	}
}

func (s *Session) enterCollection() {
	idx, ok := s.collectionList.Selected()
	if !ok {
		return
	}
	c := s.collections[idx]
	s.search.Clear()
	s.chords.Reset()
	s.items = nil
	s.itemList = state.NewList(0)
	s.setView(View{Kind: ViewItems, CollectionID: c.ID})
	s.push(reminders.SelectCollection{ID: c.ID})
	s.push(reminders.ShowLoading{Message: "Loading " + c.Name + "…"})
}

func (s *Session) startGlobalSearch() {
	s.search.Start(state.ScopeGlobal)
	s.chords.Reset()
	s.global = nil
	s.itemList = state.NewList(0)
	s.setView(View{Kind: ViewItems, Global: true})
	s.push(reminders.GlobalSearch{Query: ""})
	s.push(reminders.ShowLoading{Message: "Searching all reminders…"})
	events.Search.Start("global")
}

func (s *Session) handleItemsKey(msg tea.KeyMsg) {
	if s.search.Active {
		s.handleSearchKey(msg)
		return
	}

	key := msg.String()
	chord := s.chords.Observe(key, s.now())

	switch key {
	case "ctrl+c":
		s.push(reminders.Quit{})
	case "q":
		s.back()
	case "esc":
		if s.search.EscapeArmed(s.now()) {
			s.clearSearch()
			return
		}
		if s.search.Query != "" {
			// Retained query: first press arms the clear window.
			s.search.Escape(s.now())
			return
		}
		s.back()
	case "up", "k":
		if s.itemList.MoveUp() {
			events.UI.Cursor(viewName(s.view), s.itemList.Cursor)
		}
	case "down", "j":
		if s.itemList.MoveDown() {
			events.UI.Cursor(viewName(s.view), s.itemList.Cursor)
		}
	case "enter", " ":
		if id, ok := s.selectedItemID(); ok {
			s.push(reminders.ToggleItem{ID: id})
		}
	case "d":
		if chord {
			events.Keys.Chord("dd")
			if id, ok := s.selectedItemID(); ok {
				s.push(reminders.DeleteItem{ID: id})
			}
		}
	case "delete":
		if id, ok := s.selectedItemID(); ok {
			s.push(reminders.DeleteItem{ID: id})
		}
	case "c":
		s.openForm(s.formPreselect())
	case "h":
		s.showCompleted = !s.showCompleted
		s.reclampItems()
		s.push(reminders.ToggleCompletedVisibility{})
	case "r":
		s.push(reminders.Refresh{})
		s.push(reminders.ShowLoading{Message: "Refreshing…"})
	case "/":
		if s.view.Global {
			s.search.Start(state.ScopeGlobal)
			events.Search.Start("global")
		} else {
			s.search.Start(state.ScopeLocal)
			events.Search.Start("local")
		}
		s.reclampItems()
	}
}

func (s *Session) handleSearchKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			s.search.PushChar(r)
		}
		s.reclampItems()
		events.Search.Query(s.search.Query)
	case tea.KeySpace:
		s.search.PushChar(' ')
		s.reclampItems()
	case tea.KeyBackspace:
		s.search.PopChar()
		s.reclampItems()
		events.Search.Query(s.search.Query)
	case tea.KeyEnter:
		query := s.search.Query
		s.search.ExitKeepResults()
		events.Search.Exit(true)
		if idx := state.BestMatchIndex(s.visibleTitles(), query); idx >= 0 {
			s.itemList.Select(idx)
		}
	case tea.KeyEsc:
		switch s.search.Escape(s.now()) {
		case state.EscapeCleared:
			events.Search.Clear()
			s.afterSearchCleared()
		case state.EscapeKept:
			events.Search.Exit(true)
		}
	case tea.KeyCtrlC:
		s.push(reminders.Quit{})
	}
}

func (s *Session) clearSearch() {
	s.search.Clear()
	events.Search.Clear()
	s.afterSearchCleared()
}

// afterSearchCleared restores the unfiltered view; clearing a global search
// also navigates back to the collection list.
func (s *Session) afterSearchCleared() {
	if s.view.Global {
		s.setView(View{Kind: ViewCollections})
		s.collectionList.SetLength(len(s.collections))
		return
	}
	s.reclampItems()
}

func (s *Session) back() {
	wasGlobal := s.view.Global
	s.push(reminders.Back{})
	if wasGlobal {
		s.search.Clear()
	}
	s.setView(View{Kind: ViewCollections})
	s.collectionList.SetLength(len(s.collections))
}

func (s *Session) formPreselect() string {
	if !s.view.Global {
		return s.view.CollectionID
	}
	return ""
}

func (s *Session) openForm(preselectID string) {
	s.returnTo = s.view
	s.form = state.NewForm(s.collections, preselectID)
	s.setView(View{Kind: ViewCreate})
}

func (s *Session) closeForm() {
	s.form = nil
	ret := s.returnTo
	if ret.Kind == ViewLoading || ret.Kind == ViewCreate {
		ret = View{Kind: ViewCollections}
	}
	s.setView(ret)
	if ret.Kind == ViewCollections {
		s.collectionList.SetLength(len(s.collections))
		return
	}
	s.reclampItems()
}

func (s *Session) handleCreateKey(msg tea.KeyMsg) tea.Cmd {
	f := s.form
	if f == nil {
		return nil
	}
	switch msg.String() {
	case "ctrl+c":
		s.push(reminders.Quit{})
	case "esc":
		s.push(reminders.Back{})
		s.closeForm()
	case "tab", "enter":
		f.Next()
	case "shift+tab":
		f.Prev()
	case "ctrl+s":
		s.submitForm()
	case "up":
		switch f.Field() {
		case state.FieldCollection:
			f.CycleCollection(-1)
		case state.FieldPriority:
			f.AdjustPriority(1)
		default:
			return f.Update(msg)
		}
	case "down":
		switch f.Field() {
		case state.FieldCollection:
			f.CycleCollection(1)
		case state.FieldPriority:
			f.AdjustPriority(-1)
		default:
			return f.Update(msg)
		}
	default:
		if f.TextFieldActive() {
			return f.Update(msg)
		}
		switch msg.String() {
		case "q":
			s.push(reminders.Back{})
			s.closeForm()
		case "left":
			if f.Field() == state.FieldCollection {
				f.CycleCollection(-1)
			} else {
				f.AdjustPriority(-1)
			}
		case "right":
			if f.Field() == state.FieldCollection {
				f.CycleCollection(1)
			} else {
				f.AdjustPriority(1)
			}
		}
	}
	return nil
}

func (s *Session) submitForm() {
	item, ok := s.form.Build()
	if !ok {
		s.AppendStatus("⚠️ A title is required")
		return
	}
	s.push(reminders.CreateItem{Item: item})
	s.push(reminders.ShowLoading{Message: "Saving reminder…"})
	s.closeForm()
}

// visibleItems is the local item view filtered by the current query and the
// show-completed flag.
func (s *Session) visibleItems() []reminders.Item {
	return s.search.FilterItems(s.items, s.showCompleted)
}

func (s *Session) visibleGlobal() []reminders.GlobalEntry {
	return s.search.FilterGlobal(s.global, s.showCompleted)
}

func (s *Session) visibleTitles() []string {
	if s.view.Global {
		entries := s.visibleGlobal()
		titles := make([]string, len(entries))
		for i, e := range entries {
			titles[i] = e.Item.Title
		}
		return titles
	}
	items := s.visibleItems()
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	return titles
}

func (s *Session) selectedItemID() (string, bool) {
	idx, ok := s.itemList.Selected()
	if !ok {
		return "", false
	}
	if s.view.Global {
		entries := s.visibleGlobal()
		if idx >= len(entries) {
			return "", false
		}
		return entries[idx].Item.ID, true
	}
	items := s.visibleItems()
	if idx >= len(items) {
		return "", false
	}
	return items[idx].ID, true
}

func (s *Session) reclampItems() {
	if s.view.Kind != ViewItems {
		return
	}
	if s.view.Global {
		s.itemList.SetLength(len(s.visibleGlobal()))
		return
	}
	s.itemList.SetLength(len(s.visibleItems()))
}

// SetCollections replaces the known collections. It moves the session off
// the loading screen on first delivery and keeps an open create form's
// picker in sync.
func (s *Session) SetCollections(collections []reminders.Collection) {
	s.collections = collections
	s.collectionList.SetLength(len(collections))
	if s.form != nil {
		s.form.SetCollections(collections)
	}
	if s.view.Kind == ViewLoading {
		s.setView(View{Kind: ViewCollections})
	}
	events.Store.Loaded("collections", len(collections))
}

// SetItems replaces the items of the current collection view. Calling it
// while a global view is active degrades gracefully: the items are adopted
// as the global index with their collection names unknown, and the mismatch
// is logged and surfaced.
func (s *Session) SetItems(items []reminders.Item) {
	s.items = items
	if s.view.Kind == ViewItems && s.view.Global {
		events.Store.LocalSetterInGlobalScope()
		s.AppendStatus("⚠️ Refreshed without list names")
		entries := make([]reminders.GlobalEntry, len(items))
		for i, it := range items {
			entries[i] = reminders.GlobalEntry{Item: it}
		}
		s.global = entries
	}
	s.reclampItems()
	s.push(reminders.DataLoaded{})
	events.Store.Loaded("items", len(items))
}

// SetItemsWithGlobalIndex delivers both the flat items and the entries that
// carry collection names, for hosts that fetch the global index in one pass.
func (s *Session) SetItemsWithGlobalIndex(items []reminders.Item, entries []reminders.GlobalEntry) {
	s.items = items
	s.global = entries
	s.reclampItems()
	s.push(reminders.DataLoaded{})
	events.Store.Loaded("items+global", len(entries))
}

// SetAllItems replaces the global index backing a global search view.
func (s *Session) SetAllItems(entries []reminders.GlobalEntry) {
	s.global = entries
	s.reclampItems()
	s.push(reminders.DataLoaded{})
	events.Store.Loaded("global", len(entries))
}

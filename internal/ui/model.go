package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/backend"
	"github.com/remtui/rem/internal/logging/events"
	"github.com/remtui/rem/internal/reminders"
	"github.com/remtui/rem/internal/store"
	"github.com/remtui/rem/internal/theme"
	"github.com/remtui/rem/internal/ui/command"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model is the Bubble Tea shell around the session: it routes messages,
// fulfils drained intents against the store, and renders the views.
type Model struct {
	session *Session
	store   store.Store
	bus     *command.Bus
	backend *backend.Watcher

	spin       spinner.Model
	loadingMsg string
	backendErr string

	width   int
	height  int
	verbose bool

	handlers map[reflect.Type]msgHandler
	quitting bool
}

// NewModel wires a session to its store and background watcher.
func NewModel(s store.Store, session *Session, watcher *backend.Watcher, verbose bool) *Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if styles.Loading != nil {
		spin.Style = *styles.Loading
	}
	m := &Model{
		session: session,
		store:   s,
		bus:     command.New(),
		backend: watcher,
		spin:    spin,
		verbose: verbose,
	}
	m.registerHandlers()
	return m
}

// Session exposes the underlying session, mainly for tests.
func (m *Model) Session() *Session { return m.session }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if m.showSpinner() {
		cmds = append(cmds, m.spin.Tick)
	}
	return batch(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):      m.handleSpinnerTickMsg,
		reflect.TypeOf(collectionsLoadedMsg{}): m.handleCollectionsLoadedMsg,
		reflect.TypeOf(itemsLoadedMsg{}):       m.handleItemsLoadedMsg,
		reflect.TypeOf(globalLoadedMsg{}):      m.handleGlobalLoadedMsg,
		reflect.TypeOf(command.Error{}):        m.handleCommandErrorMsg,
		reflect.TypeOf(backendEventMsg{}):      m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):       m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.session.HandleKey(keyMsg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.dispatchIntents(&cmds)
	return batch(cmds)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = sizeMsg.Width
	m.height = sizeMsg.Height
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.showSpinner() {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return cmd
}

func (m *Model) handleCollectionsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(collectionsLoadedMsg)
	if !ok {
		return nil
	}
	m.session.SetCollections(loaded.collections)
	cmds := make([]tea.Cmd, 0, 2)
	m.dispatchIntents(&cmds)
	return batch(cmds)
}

func (m *Model) handleItemsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(itemsLoadedMsg)
	if !ok {
		return nil
	}
	view := m.session.View()
	if view.Kind != ViewItems || view.Global || view.CollectionID != loaded.collectionID {
		// Stale fetch for a view we already left.
		m.loadingMsg = ""
		return nil
	}
	m.session.SetItems(loaded.items)
	if m.verbose {
		m.session.AppendStatus("✅ Reminders loaded")
	}
	cmds := make([]tea.Cmd, 0, 2)
	m.dispatchIntents(&cmds)
	return batch(cmds)
}

func (m *Model) handleGlobalLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(globalLoadedMsg)
	if !ok {
		return nil
	}
	view := m.session.View()
	if view.Kind != ViewItems || !view.Global {
		m.loadingMsg = ""
		return nil
	}
	m.session.SetAllItems(loaded.entries)
	if m.verbose {
		m.session.AppendStatus("🔍 Global search ready")
	}
	cmds := make([]tea.Cmd, 0, 2)
	m.dispatchIntents(&cmds)
	return batch(cmds)
}

func (m *Model) handleCommandErrorMsg(msg tea.Msg) tea.Cmd {
	errMsg, ok := msg.(command.Error)
	if !ok || errMsg.Err == nil {
		return nil
	}
	m.loadingMsg = ""
	events.Store.Error(errMsg.Op, errMsg.Err)
	m.session.AppendStatus("❌ " + errMsg.Op + ": " + errMsg.Err.Error())
	return nil
}

func (m *Model) dispatchIntents(cmds *[]tea.Cmd) {
	for _, intent := range m.session.Drain() {
		switch it := intent.(type) {
		case reminders.Quit:
			m.quitting = true
			*cmds = append(*cmds, tea.Quit)
		case reminders.SelectCollection:
			*cmds = append(*cmds, m.loadItemsCmd(it.ID))
		case reminders.GlobalSearch:
			*cmds = append(*cmds, m.loadAllCmd())
		case reminders.ToggleItem:
			*cmds = append(*cmds, m.toggleCmd(it.ID))
		case reminders.DeleteItem:
			*cmds = append(*cmds, m.deleteCmd(it.ID))
		case reminders.CreateItem:
			*cmds = append(*cmds, m.createCmd(it.Item))
		case reminders.Refresh:
			*cmds = append(*cmds, m.refreshCmd())
		case reminders.ShowLoading:
			m.loadingMsg = it.Message
			*cmds = append(*cmds, m.spin.Tick)
		case reminders.DataLoaded:
			m.loadingMsg = ""
		case reminders.Back, reminders.ToggleCompletedVisibility:
			// view-local; already traced by the session
		}
	}
}

func (m *Model) showSpinner() bool {
	return m.session.View().Kind == ViewLoading || m.loadingMsg != ""
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

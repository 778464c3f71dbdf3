package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/reminders"
)

// Form field indices, in tab order.
const (
	FieldTitle = iota
	FieldNotes
	FieldDueDate
	FieldCollection
	FieldPriority

	fieldCount
)

// Form is the create-reminder form: three text fields, a collection picker,
// and a priority stepper. The active field index wraps in both directions.
type Form struct {
	inputs      [3]textinput.Model
	collections []reminders.Collection
	collection  int
	priority    int
	field       int
}

// NewForm builds a form over the known collections, preselecting the
// collection with the given id. An unknown or empty id falls back to the
// first collection.
func NewForm(collections []reminders.Collection, preselectID string) *Form {
	f := &Form{collections: collections}
	placeholders := [...]string{"What needs doing?", "Optional notes", "e.g. tomorrow 9am"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		f.inputs[i] = ti
	}
	for i, c := range collections {
		if c.ID == preselectID {
			f.collection = i
			break
		}
	}
	f.inputs[FieldTitle].Focus()
	return f
}

// Field returns the index of the active field.
func (f *Form) Field() int { return f.field }

// Priority returns the current priority value.
func (f *Form) Priority() int { return f.priority }

// Value returns the text of one of the three text fields.
func (f *Form) Value(field int) string {
	if field < 0 || field >= len(f.inputs) {
		return ""
	}
	return f.inputs[field].Value()
}

// InputView renders one of the three text fields.
func (f *Form) InputView(field int) string {
	if field < 0 || field >= len(f.inputs) {
		return ""
	}
	return f.inputs[field].View()
}

// SelectedCollection returns the collection the picker currently points at.
func (f *Form) SelectedCollection() (reminders.Collection, bool) {
	if len(f.collections) == 0 {
		return reminders.Collection{}, false
	}
	return f.collections[f.collection], true
}

// SetCollections refreshes the picker choices, keeping the current selection
// when it survives the refresh.
func (f *Form) SetCollections(collections []reminders.Collection) {
	var keep string
	if cur, ok := f.SelectedCollection(); ok {
		keep = cur.ID
	}
	f.collections = collections
	f.collection = 0
	for i, c := range collections {
		if c.ID == keep {
			f.collection = i
			break
		}
	}
}

// TextFieldActive reports whether the active field accepts character input.
func (f *Form) TextFieldActive() bool { return f.field <= FieldDueDate }

// Next advances to the next field, wrapping after priority.
func (f *Form) Next() { f.focusField((f.field + 1) % fieldCount) }

// Prev moves to the previous field, wrapping before title.
func (f *Form) Prev() { f.focusField((f.field + fieldCount - 1) % fieldCount) }

func (f *Form) focusField(idx int) {
	if f.field < len(f.inputs) {
		f.inputs[f.field].Blur()
	}
	f.field = idx
	if f.field < len(f.inputs) {
		f.inputs[f.field].Focus()
	}
}

// Update forwards a message to the active text field. Non-text fields ignore
// the message.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if !f.TextFieldActive() {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.field], cmd = f.inputs[f.field].Update(msg)
	return cmd
}

// CycleCollection moves the picker by delta, wrapping at both ends.
func (f *Form) CycleCollection(delta int) {
	n := len(f.collections)
	if n == 0 {
		return
	}
	f.collection = ((f.collection+delta)%n + n) % n
}

// AdjustPriority shifts priority by delta, clamped to the valid range.
func (f *Form) AdjustPriority(delta int) {
	f.priority = reminders.ClampPriority(f.priority + delta)
}

// Build assembles the create payload. It fails when the title is blank.
func (f *Form) Build() (reminders.NewItem, bool) {
	title := strings.TrimSpace(f.inputs[FieldTitle].Value())
	if title == "" {
		return reminders.NewItem{}, false
	}
	item := reminders.NewItem{
		Title:    title,
		Notes:    strings.TrimSpace(f.inputs[FieldNotes].Value()),
		DueDate:  strings.TrimSpace(f.inputs[FieldDueDate].Value()),
		Priority: f.priority,
	}
	if c, ok := f.SelectedCollection(); ok {
		item.CollectionID = c.ID
	}
	return item, true
}

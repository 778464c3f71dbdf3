// Package reminders defines the value types exchanged between the UI core
// and the reminder store, plus the intents the core emits for the host to
// fulfil.
package reminders

// Collection is a named, colored grouping of reminders (an Apple Reminders
// list). Collections are immutable; a refresh replaces them wholesale.
type Collection struct {
	ID    string
	Name  string
	Color string
	Count uint32
}

// Item is a single reminder. Notes and DueDate are empty when absent.
type Item struct {
	ID        string
	Title     string
	Notes     string
	Completed bool
	Priority  int
	DueDate   string
}

// GlobalEntry pairs an item with the name of the collection it belongs to.
// The global search view works over an ordered sequence of these.
type GlobalEntry struct {
	Item           Item
	CollectionName string
}

// NewItem carries the field values of a create request.
type NewItem struct {
	Title        string
	Notes        string
	DueDate      string
	CollectionID string
	Priority     int
}

// MinPriority and MaxPriority bound reminder priorities.
const (
	MinPriority = 0
	MaxPriority = 9
)

// ClampPriority forces p into the valid priority range.
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

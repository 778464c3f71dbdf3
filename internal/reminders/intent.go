package reminders

// Intent is a discrete action the UI core asks the host to perform against
// the real reminder store. Intents are queued by the session and drained by
// the host after each interactive step.
type Intent interface{ intent() }

// Quit ends the interactive session.
type Quit struct{}

// SelectCollection asks the host to load the items of one collection.
type SelectCollection struct {
	ID string
}

// ToggleItem flips the completion state of an item.
type ToggleItem struct {
	ID string
}

// DeleteItem removes an item.
type DeleteItem struct {
	ID string
}

// CreateItem adds a new reminder built from the create form.
type CreateItem struct {
	Item NewItem
}

// Back reports a navigation step back toward the collection list.
type Back struct{}

// Refresh asks the host to re-fetch the data behind the current view.
type Refresh struct{}

// ToggleCompletedVisibility reports that the user flipped the show-completed
// flag. The toggle itself is view-local; the intent is informational.
type ToggleCompletedVisibility struct{}

// GlobalSearch asks the host to load the union of items across all
// collections. Query is the search text at the time of the request; it is
// empty when the search has just been started.
type GlobalSearch struct {
	Query string
}

// ShowLoading asks the host to surface a loading message while it fetches.
type ShowLoading struct {
	Message string
}

// DataLoaded reports that a setter delivered fresh data to the session.
type DataLoaded struct{}

func (Quit) intent()                      {}
func (SelectCollection) intent()          {}
func (ToggleItem) intent()                {}
func (DeleteItem) intent()                {}
func (CreateItem) intent()                {}
func (Back) intent()                      {}
func (Refresh) intent()                   {}
func (ToggleCompletedVisibility) intent() {}
func (GlobalSearch) intent()              {}
func (ShowLoading) intent()               {}
func (DataLoaded) intent()                {}

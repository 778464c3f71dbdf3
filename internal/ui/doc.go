// Package ui contains the Bubble Tea program that fronts Apple Reminders.
// The package splits into two layers so the interactive semantics stay
// testable without a terminal or a reminder database:
//
//   - Session (session.go) is the pure core. It owns the view machine
//     (loading, collections, items, create form), the search engine with its
//     double-escape timing, the dd chord detector, the wrap-around cursors,
//     and the rolling status log. It never performs I/O: keypresses go in,
//     intents come out of Drain, and fresh data arrives through the setters.
//     Time is injected so tests can step the chord and escape windows
//     deterministically.
//
//   - Model (model.go) is the Bubble Tea shell. Update routes each tea.Msg
//     through a typed handler registry, forwards keypresses to the session,
//     and fulfils drained intents by turning them into store commands via
//     the internal/ui/command bus. Load results come back as typed messages
//     and are handed to the session's setters.
//
// A backend.Watcher streams collection refreshes in the background; Update
// waits for those events and hands them to applyBackendEvent. Rendering
// lives in view.go and reads the session directly.
package ui

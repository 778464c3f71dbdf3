// Package command wraps store operations into Bubble Tea commands so the UI
// loop never blocks on the OS.
package command

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/logging/events"
)

// opTimeout bounds a single store call; osascript can hang on a stale
// Reminders.app connection.
const opTimeout = 30 * time.Second

// Request encapsulates one store operation.
type Request struct {
	Op  string
	Run func(context.Context) (tea.Msg, error)
}

// Error reports a failed request back to the UI loop.
type Error struct {
	Op  string
	Err error
}

// Bus coordinates the execution of store requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace
// logs. Failures come back as a command.Error message.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Op)
	return func() tea.Msg {
		if req.Run == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		msg, err := req.Run(ctx)
		if err != nil {
			events.Command.Error(req.Op, err)
			return Error{Op: req.Op, Err: err}
		}
		events.Command.Result(req.Op, fmt.Sprintf("%T", msg))
		return msg
	}
}

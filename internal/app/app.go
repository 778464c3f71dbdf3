package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/remtui/rem/internal/backend"
	"github.com/remtui/rem/internal/logging"
	"github.com/remtui/rem/internal/logging/events"
	"github.com/remtui/rem/internal/store"
	"github.com/remtui/rem/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Demo          bool
	ShowCompleted bool
	PollInterval  time.Duration
	Verbose       bool
}

// permissionTimeout bounds the startup access probe.
const permissionTimeout = 10 * time.Second

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	var st store.Store
	if cfg.Demo {
		st = store.NewDemo()
	} else {
		st = store.NewScript()
	}

	if err := checkPermission(st); err != nil {
		return err
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	watcher := backend.NewWatcher(st, interval)
	defer watcher.Stop()

	session := ui.NewSession(nil, time.Now)
	session.SetShowCompleted(cfg.ShowCompleted)
	model := ui.NewModel(st, session, watcher, cfg.Verbose)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		// Some terminals reject mouse capture; run once more without it.
		logging.Error(err)
		program = tea.NewProgram(model, tea.WithAltScreen())
		_, err = program.Run()
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func checkPermission(st store.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), permissionTimeout)
	defer cancel()

	perm, err := st.Permission(ctx)
	if err != nil {
		return fmt.Errorf("check reminders access: %w", err)
	}
	events.App.Permission(perm.String())
	if perm != store.PermissionAuthorized {
		return fmt.Errorf("reminders access is %s; grant access under System Settings › Privacy & Security › Reminders", perm)
	}
	return nil
}

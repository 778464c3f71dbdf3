package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Demo || cfg.App.ShowCompleted || cfg.App.Verbose {
		t.Fatalf("expected defaults off, got %#v", cfg.App)
	}
	if cfg.App.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval, got %s", cfg.App.PollInterval)
	}
	if cfg.Logging.Trace {
		t.Fatal("expected trace disabled by default")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-demo",
		"-show-completed",
		"-poll-interval", "5s",
		"-trace",
		"-log-file", "/tmp/rem.log",
	}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.Demo || !cfg.App.ShowCompleted {
		t.Fatalf("expected demo and show-completed, got %#v", cfg.App)
	}
	if cfg.App.PollInterval != 5*time.Second {
		t.Fatalf("expected 5s poll interval, got %s", cfg.App.PollInterval)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/rem.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"REM_DEMO=true",
		"REM_POLL_INTERVAL=750ms",
		"REM_VERBOSE=1",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.Demo || !cfg.App.Verbose {
		t.Fatalf("expected env toggles applied, got %#v", cfg.App)
	}
	if cfg.App.PollInterval != 750*time.Millisecond {
		t.Fatalf("expected env poll interval, got %s", cfg.App.PollInterval)
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-poll-interval", "3s"}, []string{"REM_POLL_INTERVAL=9s"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.PollInterval != 3*time.Second {
		t.Fatalf("expected flag to win, got %s", cfg.App.PollInterval)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"REM_DEMO=maybe", "REM_POLL_INTERVAL=soon"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Demo {
		t.Fatal("expected unparsable bool to fall back to default")
	}
	if cfg.App.PollInterval != defaultPollInterval {
		t.Fatalf("expected unparsable duration to fall back, got %s", cfg.App.PollInterval)
	}
}

func TestNonPositivePollIntervalRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"-poll-interval", "0s"}, nil); err == nil {
		t.Fatal("expected error for zero poll interval")
	}
}

func TestFlagsRecordedForTrace(t *testing.T) {
	cfg, err := LoadArgs([]string{"-demo"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Flags["demo"] != "true" {
		t.Fatalf("expected demo flag recorded, got %#v", cfg.Flags)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "-demo" {
		t.Fatalf("expected argv recorded, got %#v", cfg.Args)
	}
}

package main

import (
	"testing"
	"time"

	"github.com/remtui/rem/internal/app"
	"github.com/remtui/rem/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Demo:          true,
			ShowCompleted: true,
			PollInterval:  2 * time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"demo":          "true",
			"showCompleted": "true",
			"pollInterval":  "2s",
		},
		Args: []string{"-demo", "-show-completed"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["demo"] != "true" {
		t.Fatalf("expected demo flag recorded, got %v", flagsValue["demo"])
	}
	if flagsValue["pollInterval"] != "2s" {
		t.Fatalf("expected poll interval recorded, got %v", flagsValue["pollInterval"])
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 2 {
		t.Fatalf("expected argv recorded, got %v", payload["argv"])
	}
	if _, ok := payload["tty"]; !ok {
		t.Fatal("expected tty details in payload")
	}
}

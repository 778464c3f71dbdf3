package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/remtui/rem/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDemo          = "REM_DEMO"
	envShowCompleted = "REM_SHOW_COMPLETED"
	envPollInterval  = "REM_POLL_INTERVAL"
	envVerbose       = "REM_VERBOSE"
	envTrace         = "REM_TRACE"
	envLogFile       = "REM_LOG_FILE"
)

const defaultPollInterval = 2 * time.Second

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("rem", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	demo := fs.Bool("demo", envOrBool(env, envDemo, false), "run against an in-memory demo store instead of Apple Reminders")
	showCompleted := fs.Bool("show-completed", envOrBool(env, envShowCompleted, false), "show completed reminders at startup")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, defaultPollInterval), "how often to refresh reminder lists in the background")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "surface success messages in the status log")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *pollInterval <= 0 {
		return Config{}, fmt.Errorf("poll-interval must be positive (got %s)", *pollInterval)
	}

	cfg := Config{
		App: app.Config{
			Demo:          *demo,
			ShowCompleted: *showCompleted,
			PollInterval:  *pollInterval,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"demo":          strconv.FormatBool(*demo),
			"showCompleted": strconv.FormatBool(*showCompleted),
			"pollInterval":  pollInterval.String(),
			"trace":         strconv.FormatBool(*trace),
			"verbose":       strconv.FormatBool(*verbose),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive")
	}
	return nil
}

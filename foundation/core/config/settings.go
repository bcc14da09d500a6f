// File: settings.go
// Title: Interpreter Settings
// Description: Declares the configuration keys understood by the interpreter
//              tools, their defaults, and the typed Settings view resolved
//              from a Config.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package config

import (
	"time"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
)

// EnvPrefix is prepended to environment overrides, e.g. SBML_LOG_LEVEL
const EnvPrefix = "SBML"

// Configuration keys
const (
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyOutputColor       = "output.color"
	KeyMaxIterations     = "limits.max_iterations"
	KeyJournalEnabled    = "journal.enabled"
	KeyJournalPath       = "journal.path"
	KeyPlaygroundAddr    = "playground.addr"
	KeyPlaygroundMaxSize = "playground.max_source_bytes"
	KeyPlaygroundTimeout = "playground.timeout"
	KeyWatchDebounce     = "watch.debounce"
)

// Defaults returns the built-in configuration values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyLogLevel:          "warn",
		KeyLogFormat:         "text",
		KeyOutputColor:       true,
		KeyMaxIterations:     0,
		KeyJournalEnabled:    false,
		KeyJournalPath:       "sbml-journal.db",
		KeyPlaygroundAddr:    "127.0.0.1:8088",
		KeyPlaygroundMaxSize: 64 * 1024,
		KeyPlaygroundTimeout: "5s",
		KeyWatchDebounce:     "200ms",
	}
}

// Settings is the typed view of the interpreter configuration
type Settings struct {
	LogLevel          sbmllog.Level
	LogFormat         sbmllog.Format
	Color             bool
	MaxIterations     int
	JournalEnabled    bool
	JournalPath       string
	PlaygroundAddr    string
	PlaygroundMaxSize int
	PlaygroundTimeout time.Duration
	WatchDebounce     time.Duration
}

// Resolve reads and validates Settings from c
func Resolve(c *Config) (Settings, error) {
	s := Settings{
		Color:             c.GetBool(KeyOutputColor, true),
		MaxIterations:     c.GetInt(KeyMaxIterations),
		JournalEnabled:    c.GetBool(KeyJournalEnabled),
		JournalPath:       c.GetString(KeyJournalPath, "sbml-journal.db"),
		PlaygroundAddr:    c.GetString(KeyPlaygroundAddr, "127.0.0.1:8088"),
		PlaygroundMaxSize: c.GetInt(KeyPlaygroundMaxSize, 64*1024),
		PlaygroundTimeout: c.GetDuration(KeyPlaygroundTimeout, 5*time.Second),
		WatchDebounce:     c.GetDuration(KeyWatchDebounce, 200*time.Millisecond),
	}

	var err error
	if s.LogLevel, err = sbmllog.ParseLevel(c.GetString(KeyLogLevel, "warn")); err != nil {
		return s, invalid(KeyLogLevel, err)
	}
	if s.LogFormat, err = sbmllog.ParseFormat(c.GetString(KeyLogFormat, "text")); err != nil {
		return s, invalid(KeyLogFormat, err)
	}

	if s.MaxIterations < 0 {
		return s, invalid(KeyMaxIterations, sbmlerror.New("must not be negative"))
	}
	if s.PlaygroundMaxSize <= 0 {
		return s, invalid(KeyPlaygroundMaxSize, sbmlerror.New("must be positive"))
	}
	if s.PlaygroundTimeout <= 0 {
		return s, invalid(KeyPlaygroundTimeout, sbmlerror.New("must be positive"))
	}
	if s.WatchDebounce < 0 {
		return s, invalid(KeyWatchDebounce, sbmlerror.New("must not be negative"))
	}
	return s, nil
}

func invalid(key string, err error) error {
	return sbmlerror.Wrap(err, "invalid value for "+key).
		WithCode(sbmlerror.CodeInvalidConfig).
		WithOperation("config.Resolve").
		WithDetail("key", key)
}

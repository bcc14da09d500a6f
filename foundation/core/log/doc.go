// Package log provides structured logging for the SBML tools.
//
// Package: log
// Title: SBML Structured Logging
// Description: Leveled logger with persistent context fields, pluggable
//              formatters (text, json, console, logfmt) and operation timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Run ids, Discard logger, interpreter components
//
// Usage:
//
//	import sbmllog "github.com/msto63/sbml/foundation/core/log"
//
//	logger := sbmllog.New().WithField("component", "sbml-parser")
//	logger.Debug("parsed program", sbmllog.Fields{"statements": 12})
//
//	timer := logger.StartTimer("run")
//	defer timer.Stop()
//
// Loggers are immutable: With* methods return a copy. Program output never
// goes through a logger.
package log

// File: timer.go
// Title: Phase Timer
// Description: Measures how long an interpreter phase took and logs it on
//              completion. Used around tokenize, parse and evaluate.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-17 v0.2.0: Reduced to Stop/StopWithError

package log

import (
	"time"
)

// Timer measures the duration of a named operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time at debug level.
// Calling Stop twice returns 0 the second time.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		t.logger.Debug(t.operation+" completed", t.fields, Fields{
			"operation":   t.operation,
			"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
		})
	}
	return elapsed
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		t.logger.WarnWithErr(t.operation+" failed", err, t.fields, Fields{
			"operation":   t.operation,
			"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
		})
	}
	return elapsed
}

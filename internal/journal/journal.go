// File: journal.go
// Title: Run Journal
// Description: Records one entry per program run (status, duration, output
//              size) and lists past runs. SQLite backs the CLI history; the
//              in-memory store serves tests and disabled journaling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package journal

import (
	"context"
	"time"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	"github.com/msto63/sbml/foundation/utils/filex"
)

// Status classifies how a run ended
type Status string

const (
	StatusOK            Status = "ok"
	StatusSyntaxError   Status = "syntax_error"
	StatusSemanticError Status = "semantic_error"
	StatusInterrupted   Status = "interrupted"
	StatusFailed        Status = "failed"
)

// Entry is one journaled run
type Entry struct {
	ID          string        `json:"id"`
	SourcePath  string        `json:"source_path"`
	SourceSHA   string        `json:"source_sha"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	OutputLines int           `json:"output_lines"`
}

// Filter selects entries for List
type Filter struct {
	Status     Status
	SourcePath string
	Limit      int
	Offset     int
}

// Store persists journal entries
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, error)
	Get(ctx context.Context, id string) (*Entry, error)
	Stats(ctx context.Context) (map[Status]int64, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// StatusFromError maps a run error to its journal status
func StatusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case sbmlerror.IsSyntax(err):
		return StatusSyntaxError
	case sbmlerror.IsSemantic(err):
		return StatusSemanticError
	case sbmlerror.HasCode(err, sbmlerror.CodeInterrupted):
		return StatusInterrupted
	}
	return StatusFailed
}

// NewEntry builds the entry for a run of source that started at started
// and ended with runErr.
func NewEntry(id, sourcePath, source string, started time.Time, outputLines int, runErr error) *Entry {
	entry := &Entry{
		ID:          id,
		SourcePath:  sourcePath,
		SourceSHA:   filex.SHA256String(source),
		StartedAt:   started,
		Duration:    time.Since(started),
		Status:      StatusFromError(runErr),
		OutputLines: outputLines,
	}
	if runErr != nil {
		entry.Message = runErr.Error()
	}
	return entry
}

func notFound(id string) error {
	return sbmlerror.New("journal entry not found").
		WithCode(sbmlerror.CodeNotFound).
		WithDetail("id", id).
		WithOperation("journal.Get")
}

func databaseError(err error, message, operation string) error {
	return sbmlerror.Wrap(err, message).
		WithCode(sbmlerror.CodeDatabaseError).
		WithOperation(operation)
}

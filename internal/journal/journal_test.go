// File: journal_test.go
// Title: Run Journal Tests
// Description: Tests for both journal stores and status classification.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tests

package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Status
	}{
		{"nil", nil, StatusOK},
		{"syntax", sbmlerror.NewSyntax("unexpected token", ";", 1, 3), StatusSyntaxError},
		{"semantic", sbmlerror.NewSemantic("division by zero"), StatusSemanticError},
		{"interrupted", sbmlerror.New("stop").WithCode(sbmlerror.CodeInterrupted), StatusInterrupted},
		{"plain", errors.New("disk full"), StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromError(tt.err); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	started := time.Now().Add(-time.Second)
	entry := NewEntry("id-1", "prog.sbml", "{ }", started, 2, sbmlerror.NewSemantic("type mismatch"))

	if entry.Status != StatusSemanticError || entry.Message != "type mismatch" {
		t.Errorf("unexpected status/message: %s %q", entry.Status, entry.Message)
	}
	if entry.Duration < time.Second {
		t.Errorf("duration too short: %s", entry.Duration)
	}
	if len(entry.SourceSHA) != 64 {
		t.Errorf("expected hex sha256, got %q", entry.SourceSHA)
	}
}

func storeImplementations(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLiteStore(SQLiteConfig{Path: filepath.Join(t.TempDir(), "journal", "runs.db")})
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStore_RecordAndList(t *testing.T) {
	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Now().Add(-time.Hour).Truncate(time.Second)

			entries := []*Entry{
				{SourcePath: "a.sbml", StartedAt: base, Status: StatusOK, OutputLines: 3},
				{SourcePath: "b.sbml", StartedAt: base.Add(time.Minute), Status: StatusSyntaxError, Message: "SYNTAX ERROR"},
				{SourcePath: "a.sbml", StartedAt: base.Add(2 * time.Minute), Status: StatusOK, Duration: 5 * time.Millisecond},
			}
			for _, e := range entries {
				if err := store.Record(ctx, e); err != nil {
					t.Fatalf("Record failed: %v", err)
				}
				if e.ID == "" {
					t.Fatal("Record must assign an id")
				}
			}

			all, err := store.List(ctx, Filter{})
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 3 {
				t.Fatalf("expected 3 entries, got %d", len(all))
			}
			if all[0].ID != entries[2].ID {
				t.Errorf("expected newest first")
			}
			if all[0].Duration != 5*time.Millisecond {
				t.Errorf("duration not preserved: %s", all[0].Duration)
			}

			onlyA, _ := store.List(ctx, Filter{SourcePath: "a.sbml"})
			if len(onlyA) != 2 {
				t.Errorf("expected 2 entries for a.sbml, got %d", len(onlyA))
			}

			limited, _ := store.List(ctx, Filter{Limit: 1, Offset: 1})
			if len(limited) != 1 || limited[0].ID != entries[1].ID {
				t.Errorf("unexpected page: %+v", limited)
			}

			got, err := store.Get(ctx, entries[1].ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Status != StatusSyntaxError || got.Message != "SYNTAX ERROR" {
				t.Errorf("unexpected entry: %+v", got)
			}

			stats, _ := store.Stats(ctx)
			if stats[StatusOK] != 2 || stats[StatusSyntaxError] != 1 {
				t.Errorf("unexpected stats: %v", stats)
			}
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "missing")
			if !sbmlerror.HasCode(err, sbmlerror.CodeNotFound) {
				t.Errorf("expected NOT_FOUND, got %v", err)
			}
		})
	}
}

func TestStore_Prune(t *testing.T) {
	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store.Record(ctx, &Entry{SourcePath: "old", StartedAt: time.Now().Add(-48 * time.Hour), Status: StatusOK})
			store.Record(ctx, &Entry{SourcePath: "new", StartedAt: time.Now(), Status: StatusOK})

			removed, err := store.Prune(ctx, 24*time.Hour)
			if err != nil {
				t.Fatal(err)
			}
			if removed != 1 {
				t.Errorf("expected 1 removed, got %d", removed)
			}
			left, _ := store.List(ctx, Filter{})
			if len(left) != 1 || left[0].SourcePath != "new" {
				t.Errorf("unexpected remaining entries: %+v", left)
			}
		})
	}
}

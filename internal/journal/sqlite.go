// File: sqlite.go
// Title: SQLite Journal Store
// Description: Journal store on SQLite in WAL mode.
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
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultSQLiteConfig returns default configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "sbml-journal.db",
	}
}

// NewSQLiteStore opens or creates the journal database at cfg.Path
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, databaseError(err, "failed to create journal directory", "journal.Open")
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, databaseError(err, "failed to open journal", "journal.Open")
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, databaseError(err, "failed to initialize journal schema", "journal.Open")
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		source_sha TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		duration_ns INTEGER NOT NULL,
		status TEXT NOT NULL,
		message TEXT,
		output_lines INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	CREATE INDEX IF NOT EXISTS idx_runs_source_path ON runs(source_path);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores entry, assigning an id and start time when missing
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.StartedAt.IsZero() {
		entry.StartedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_path, source_sha, started_at, duration_ns, status, message, output_lines)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SourcePath, entry.SourceSHA, entry.StartedAt.UTC(), int64(entry.Duration),
		string(entry.Status), entry.Message, entry.OutputLines)
	if err != nil {
		return databaseError(err, "failed to insert journal entry", "journal.Record")
	}
	return nil
}

// List returns entries matching filter, newest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, source_path, source_sha, started_at, duration_ns, status, message, output_lines FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.SourcePath != "" {
		query += " AND source_path = ?"
		args = append(args, filter.SourcePath)
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, databaseError(err, "failed to query journal", "journal.List")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, databaseError(err, "failed to scan journal entry", "journal.List")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, databaseError(err, "failed to read journal", "journal.List")
	}
	return entries, nil
}

// Get returns the entry with the given id
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, source_sha, started_at, duration_ns, status, message, output_lines
		FROM runs WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, databaseError(err, "failed to read journal entry", "journal.Get")
	}
	return entry, nil
}

// Stats counts entries per status
func (s *SQLiteStore) Stats(ctx context.Context) (map[Status]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM runs GROUP BY status`)
	if err != nil {
		return nil, databaseError(err, "failed to query journal stats", "journal.Stats")
	}
	defer rows.Close()

	stats := make(map[Status]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, databaseError(err, "failed to scan journal stats", "journal.Stats")
		}
		stats[Status(status)] = count
	}
	return stats, rows.Err()
}

// Prune removes entries older than the given age
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, databaseError(err, "failed to prune journal", "journal.Prune")
	}
	return result.RowsAffected()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		entry    Entry
		status   string
		message  sql.NullString
		duration int64
	)
	if err := row.Scan(&entry.ID, &entry.SourcePath, &entry.SourceSHA, &entry.StartedAt,
		&duration, &status, &message, &entry.OutputLines); err != nil {
		return nil, err
	}
	entry.Duration = time.Duration(duration)
	entry.Status = Status(status)
	entry.Message = message.String
	return &entry, nil
}

// File: memory.go
// Title: In-Memory Journal Store
// Description: Journal store kept in memory, used when journaling is
//              disabled and in tests.
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
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record stores a copy of entry
func (s *MemoryStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.StartedAt.IsZero() {
		entry.StartedAt = time.Now()
	}
	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

// List returns entries matching filter, newest first
func (s *MemoryStore) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*Entry
	for _, e := range s.entries {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.SourcePath != "" && e.SourcePath != filter.SourcePath {
			continue
		}
		copied := *e
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartedAt.After(matched[j].StartedAt)
	})

	if filter.Limit > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
		if len(matched) > filter.Limit {
			matched = matched[:filter.Limit]
		}
	}
	return matched, nil
}

// Get returns the entry with the given id
func (s *MemoryStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, notFound(id)
}

// Stats counts entries per status
func (s *MemoryStore) Stats(ctx context.Context) (map[Status]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[Status]int64)
	for _, e := range s.entries {
		stats[e.Status]++
	}
	return stats, nil
}

// Prune removes entries older than the given age
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	kept := s.entries[:0]
	var removed int64
	for _, e := range s.entries {
		if e.StartedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

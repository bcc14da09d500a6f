// Package journal records program runs: which source was run, when, for how
// long and how it ended. SQLiteStore keeps the history on disk; MemoryStore
// serves tests and short lived processes.
package journal

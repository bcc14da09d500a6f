// File: filex_test.go
// Title: File Utility Tests
// Description: Tests for source reading and hashing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Size cap tests

package filex

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sbml")
	if err := os.WriteFile(path, []byte("{ print(1); }"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSource(path, 0)
	if err != nil || got != "{ print(1); }" {
		t.Fatalf("ReadSource() = %q, %v", got, err)
	}

	if _, err := ReadSource(path, 13); err != nil {
		t.Errorf("exact-size read failed: %v", err)
	}
	if _, err := ReadSource(path, 5); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
	if _, err := ReadSource(filepath.Join(dir, "missing"), 0); err == nil {
		t.Error("expected error for missing file")
	}

	if !Exists(path) || !IsFile(path) || IsFile(dir) {
		t.Error("Exists/IsFile mismatch")
	}
}

func TestSHA256String(t *testing.T) {
	const emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := SHA256String(""); got != emptyDigest {
		t.Errorf("SHA256String(\"\") = %s", got)
	}
	if SHA256String("a") == SHA256String("b") {
		t.Error("different inputs should differ")
	}
}

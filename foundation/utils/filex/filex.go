// File: filex.go
// Title: File Utilities
// Description: Reads program sources with a size cap and fingerprints them
//              so journal entries can tell edited files apart.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Reduced to source reading and hashing

package filex

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge is returned by ReadSource when the file exceeds the cap
var ErrTooLarge = errors.New("file too large")

// Exists reports whether path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadSource reads a whole file as a string. maxBytes <= 0 disables the cap.
func ReadSource(path string, maxBytes int64) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if maxBytes > 0 {
		r = io.LimitReader(file, maxBytes+1)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return "", fmt.Errorf("%s: %w (limit %d bytes)", path, ErrTooLarge, maxBytes)
	}
	return string(content), nil
}

// SHA256String returns the hex SHA256 digest of s
func SHA256String(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

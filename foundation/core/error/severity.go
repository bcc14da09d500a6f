// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick a log level when reporting an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for interpreter codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a recoverable problem, e.g. a skipped illegal character
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh aborts the current program run
	SeverityHigh

	// SeverityCritical indicates the interpreter itself cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeDatabaseError:
		return SeverityCritical
	case CodeSyntax, CodeSemantic, CodeInterrupted:
		return SeverityHigh
	case CodeLexical:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

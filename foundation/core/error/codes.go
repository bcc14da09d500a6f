// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the sbml interpreter.
//              The language has a two-tier error model (syntax vs. semantic);
//              the remaining codes classify host-side failures such as
//              configuration or I/O problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Reduced to interpreter codes (syntax, semantic, lexical)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Language codes
	CodeSyntax      Code = "SYNTAX"
	CodeSemantic    Code = "SEMANTIC"
	CodeLexical     Code = "LEXICAL"
	CodeInterrupted Code = "INTERRUPTED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeSyntax, CodeSemantic, CodeLexical, CodeInterrupted,
		CodeConfigError, CodeInvalidConfig, CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeSemantic, CodeLexical, CodeInterrupted:
		return "language"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "storage"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status a CLI should use for the code.
// Program failures exit with 1, host failures with 2.
func (c Code) ExitStatus() int {
	switch c {
	case CodeSyntax, CodeSemantic, CodeLexical:
		return 1
	case CodeInterrupted:
		return 130
	default:
		return 2
	}
}

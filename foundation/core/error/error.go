// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type shared by the lexer, parser, and
//              evaluator. An Error carries a code, a severity, an optional
//              source position, and free-form details while staying
//              compatible with the standard error interface.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-17 v0.2.0: Source positions, syntax/semantic constructors
// - 2026-10-17 v0.2.1: End of input is a flag, not a token text

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string

	// Source position, zero when unknown
	line   int
	column int
	token  string
	atEOF  bool
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// NewSyntax creates a SYNTAX error for the offending token at the given line.
// An empty token means the parser ran into the end of input.
func NewSyntax(message, token string, line, column int) *Error {
	e := New(message).WithCode(CodeSyntax).WithPosition(line, column)
	if token == "" {
		e.atEOF = true
		token = "EOF"
	}
	return e.WithToken(token)
}

// NewSemantic creates a SEMANTIC error with the given message
func NewSemantic(message string) *Error {
	return New(message).WithCode(CodeSemantic)
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped := &Error{
			message:   message,
			cause:     err,
			code:      inner.code,
			severity:  inner.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
			line:      inner.line,
			column:    inner.column,
			token:     inner.token,
			atEOF:     inner.atEOF,
		}
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithPosition sets the 1-based source line and column
func (e *Error) WithPosition(line, column int) *Error {
	e.line = line
	e.column = column
	return e
}

// WithToken records the offending token text
func (e *Error) WithToken(token string) *Error {
	e.token = token
	return e
}

// Message returns the error message without the cause chain
func (e *Error) Message() string { return e.message }

// Code returns the error code
func (e *Error) Code() Code { return e.code }

// Severity returns the error severity
func (e *Error) Severity() Severity { return e.severity }

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time { return e.timestamp }

// Operation returns the operation that caused the error
func (e *Error) Operation() string { return e.operation }

// Line returns the 1-based source line, or 0 if unknown
func (e *Error) Line() int { return e.line }

// Column returns the 1-based source column, or 0 if unknown
func (e *Error) Column() int { return e.column }

// Token returns the offending token text, "EOF" at end of input
func (e *Error) Token() string { return e.token }

// AtEOF reports whether a syntax error was raised at the end of input
func (e *Error) AtEOF() bool { return e.atEOF }

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))

	if e.line > 0 {
		parts = append(parts, fmt.Sprintf("Position: %d:%d", e.line, e.column))
	}
	if e.token != "" {
		parts = append(parts, fmt.Sprintf("Token: %s", e.token))
	}
	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if e.line > 0 {
		data["line"] = e.line
		data["column"] = e.column
	}
	if e.token != "" {
		data["token"] = e.token
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the error code from an error, or CodeUnknown if not an *Error
func GetCode(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity, or SeverityMedium if not an *Error
func GetSeverity(err error) Severity {
	if e, ok := As(err); ok {
		return e.severity
	}
	return SeverityMedium
}

// IsSyntax reports whether err is a syntax error
func IsSyntax(err error) bool { return HasCode(err, CodeSyntax) }

// IsSemantic reports whether err is a semantic error
func IsSemantic(err error) bool { return HasCode(err, CodeSemantic) }

// File: diagnostic.go
// Title: SBML Diagnostics
// Description: One-line user-facing diagnostics for run errors.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: End of input detected by flag

package sbml

import (
	"fmt"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
)

const (
	// SemanticErrorText is printed for every SEMANTIC error
	SemanticErrorText = "SEMANTIC ERROR"

	// SyntaxErrorText starts every SYNTAX error diagnostic
	SyntaxErrorText = "SYNTAX ERROR"
)

// Diagnostic returns the single-line diagnostic for err: the offending
// token and line for syntax errors, a fixed text for semantic errors.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	e, ok := sbmlerror.As(err)
	if !ok {
		return "ERROR: " + err.Error()
	}

	switch e.Code() {
	case sbmlerror.CodeSyntax:
		if e.AtEOF() {
			return fmt.Sprintf("%s at end of input (line %d)", SyntaxErrorText, e.Line())
		}
		return fmt.Sprintf("%s near %q on line %d", SyntaxErrorText, e.Token(), e.Line())
	case sbmlerror.CodeSemantic:
		return SemanticErrorText
	case sbmlerror.CodeInterrupted:
		return "INTERRUPTED"
	}
	return "ERROR: " + e.Message()
}

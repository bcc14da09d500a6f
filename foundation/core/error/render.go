// File: render.go
// Title: Source Snippet Rendering
// Description: Renders an Error together with the program source as a
//              numbered snippet with a caret under the offending column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial snippet renderer

package error

import (
	"fmt"
	"strings"
)

// Render formats err with a caret snippet of source. Errors that carry no
// position are rendered as a single header line.
func Render(err error, source string) string {
	e, ok := As(err)
	if !ok {
		return err.Error()
	}

	header := headerFor(e.code)
	if e.line <= 0 {
		return fmt.Sprintf("%s: %s\n", header, e.Error())
	}

	lines := strings.Split(source, "\n")
	line := e.line
	if line > len(lines) {
		line = len(lines)
	}
	col := e.column
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, e.Error())
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

func headerFor(code Code) string {
	switch code {
	case CodeSyntax:
		return "SYNTAX ERROR"
	case CodeSemantic:
		return "SEMANTIC ERROR"
	case CodeLexical:
		return "LEXICAL ERROR"
	default:
		return "ERROR"
	}
}

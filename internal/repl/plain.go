// File: plain.go
// Title: Plain REPL
// Description: Line based REPL loop for terminals without TUI support and
//              for piped input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	prompt             = "sbml> "
	continuationPrompt = "....> "
)

// RunPlain reads inputs from in until EOF, ':quit' or cancellation of ctx.
// Lines are joined while braces or brackets are still open.
func RunPlain(ctx context.Context, session *Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(scanner.Text())

		if !Complete(pending.String()) {
			fmt.Fprint(out, continuationPrompt)
			continue
		}

		result := session.Submit(ctx, pending.String())
		pending.Reset()
		for _, line := range result.Lines() {
			fmt.Fprintln(out, line)
		}
		if result.Quit {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

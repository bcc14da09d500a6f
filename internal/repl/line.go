// File: line.go
// Title: Line Editing REPL
// Description: REPL loop with line editing and a persistent history file,
//              for terminals where the full screen interface is unwanted.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// HistoryFile is the history file name in the home directory
const HistoryFile = ".sbml_history"

// RunLine runs the line editing REPL on the controlling terminal. Ctrl+C
// discards the current input at the prompt and interrupts a running
// evaluation.
func RunLine(ctx context.Context, session *Session, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		source, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		evalCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		result := session.Submit(evalCtx, source)
		stop()

		for _, line := range result.Lines() {
			fmt.Fprintln(out, line)
		}
		if result.Quit || ctx.Err() != nil {
			return nil
		}
	}
}

// readInput prompts until the input is complete. ok is false at EOF.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = continuationPrompt
		}

		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if Complete(b.String()) {
			return b.String(), true
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return HistoryFile
	}
	return filepath.Join(home, HistoryFile)
}

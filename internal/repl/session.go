// File: session.go
// Title: REPL Session
// Description: Line oriented interactive session on top of the interpreter.
//              Snippets share one environment; lines starting with ':' are
//              session commands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml"
	"github.com/msto63/sbml/foundation/sbml/value"
	"github.com/msto63/sbml/foundation/utils/stringx"
)

// HelpText lists the session commands
var HelpText = []string{
	"Enter statements or expressions, e.g. x = [1, 2]; or x[0] + 1",
	":names   list bound names",
	":reset   discard all bindings",
	":help    show this help",
	":quit    leave the session",
}

// Options configures a Session
type Options struct {
	Logger        *sbmllog.Logger
	MaxIterations int
}

// Result is the outcome of one submitted input
type Result struct {
	Input      string
	Output     []string
	Value      value.Value
	Err        error
	Diagnostic string
	Quit       bool
}

// Lines returns everything the session shows for the result: printed
// output, the echoed value and the diagnostic, in that order.
func (r Result) Lines() []string {
	lines := append([]string{}, r.Output...)
	if r.Value != nil {
		lines = append(lines, value.Repr(r.Value))
	}
	if r.Diagnostic != "" {
		lines = append(lines, r.Diagnostic)
	}
	return lines
}

// Session holds the persistent interpreter of a REPL
type Session struct {
	interp *sbml.Interpreter
	out    *bytes.Buffer
	logger *sbmllog.Logger
	count  int
}

// NewSession creates a session with an empty environment
func NewSession(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = sbmllog.GetDefault()
	}
	out := &bytes.Buffer{}
	return &Session{
		interp: sbml.New(sbml.Options{
			Logger:        opts.Logger,
			Output:        out,
			MaxIterations: opts.MaxIterations,
		}),
		out:    out,
		logger: opts.Logger.WithField("component", "repl"),
	}
}

// Submit evaluates one input. Blank input yields an empty result.
func (s *Session) Submit(ctx context.Context, input string) Result {
	input = strings.TrimSpace(input)
	result := Result{Input: input}
	if input == "" {
		return result
	}
	if strings.HasPrefix(input, ":") {
		return s.command(result)
	}

	s.count++
	s.out.Reset()
	v, err := s.interp.Eval(ctx, input)

	result.Output = stringx.Lines(s.out.String())
	result.Value = v
	result.Err = err
	result.Diagnostic = sbml.Diagnostic(err)

	if err != nil {
		s.logger.Debug("snippet failed", sbmllog.Fields{"input": s.count, "error": err.Error()})
	}
	return result
}

func (s *Session) command(result Result) Result {
	switch fields := strings.Fields(result.Input); fields[0] {
	case ":help", ":h", ":?":
		result.Output = HelpText
	case ":names":
		result.Output = s.describeNames()
	case ":reset":
		s.interp.Reset()
		result.Output = []string{"environment cleared"}
	case ":quit", ":q", ":exit":
		result.Quit = true
	default:
		result.Err = sbmlerror.Newf("unknown command %s", fields[0]).
			WithCode(sbmlerror.CodeInvalidInput)
		result.Diagnostic = sbml.Diagnostic(result.Err)
	}
	return result
}

func (s *Session) describeNames() []string {
	names := s.interp.Names()
	if len(names) == 0 {
		return []string{"no names bound"}
	}
	lines := make([]string, 0, len(names))
	for _, name := range names {
		v, _ := s.interp.Lookup(name)
		lines = append(lines, fmt.Sprintf("%s = %s", name, value.Repr(v)))
	}
	return lines
}

// Complete reports whether input has balanced braces and brackets outside
// string literals, i.e. whether it can be submitted as is.
func Complete(input string) bool {
	depth := 0
	var quote rune
	escaped := false
	for _, r := range input {
		switch {
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '{' || r == '[' || r == '(':
			depth++
		case r == '}' || r == ']' || r == ')':
			depth--
		}
	}
	return depth <= 0
}

// File: sbml.go
// Title: SBML Interpreter Interface
// Description: High-level API combining lexer, parser and evaluator.
//              Run executes whole programs in a fresh environment; Eval
//              executes snippets against an environment kept between calls.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial interpreter interface

package sbml

import (
	"context"
	"io"
	"os"
	"sync"

	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml/ast"
	"github.com/msto63/sbml/foundation/sbml/executor"
	"github.com/msto63/sbml/foundation/sbml/parser"
	"github.com/msto63/sbml/foundation/sbml/value"
)

// Interpreter runs SBML programs and snippets
type Interpreter struct {
	engine  *executor.Engine
	env     *executor.Environment
	logger  *sbmllog.Logger
	options Options
	mutex   sync.Mutex
}

// Options configures the interpreter
type Options struct {
	// Logger for diagnostics (optional, defaults to the default logger)
	Logger *sbmllog.Logger

	// Output receives printed values (default: os.Stdout)
	Output io.Writer

	// MaxIterations caps while iterations per run (0: unlimited)
	MaxIterations int

	// MaxSourceBytes rejects larger sources before parsing (0: unlimited)
	MaxSourceBytes int
}

// New creates a new interpreter with an empty snippet environment
func New(opts Options) *Interpreter {
	if opts.Logger == nil {
		opts.Logger = sbmllog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Interpreter{
		engine: executor.New(executor.Options{
			Logger:        opts.Logger,
			Output:        opts.Output,
			MaxIterations: opts.MaxIterations,
		}),
		env:     executor.NewEnvironment(),
		logger:  opts.Logger.WithField("component", "sbml"),
		options: opts,
	}
}

func (i *Interpreter) newParser() *parser.Parser {
	return parser.New(parser.Options{
		Logger:         i.options.Logger,
		MaxInputLength: i.options.MaxSourceBytes,
	})
}

// Tokenize returns the token stream of source and the characters skipped
func (i *Interpreter) Tokenize(source string) ([]parser.Token, []error) {
	l := parser.NewLexer(source).WithLogger(i.options.Logger)
	return l.Tokenize(), l.Errors()
}

// Parse parses a complete program
func (i *Interpreter) Parse(source string) (*ast.Block, error) {
	return i.newParser().ParseProgram(source)
}

// Run parses and executes a program in a fresh environment. Parsing
// completes before anything is evaluated, so a syntax error prints nothing.
func (i *Interpreter) Run(ctx context.Context, source string) error {
	timer := i.logger.StartTimer("run").WithField("bytes", len(source))

	program, err := i.Parse(source)
	if err != nil {
		i.logger.Debug("run rejected by parser", sbmllog.Fields{"error": err.Error()})
		timer.Stop()
		return err
	}

	err = i.engine.Run(ctx, program, executor.NewEnvironment())
	timer.Stop()
	return err
}

// Eval parses and executes a snippet against the persistent environment
// and returns the value of its last expression statement, or nil.
func (i *Interpreter) Eval(ctx context.Context, snippet string) (value.Value, error) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	stmts, err := i.newParser().ParseSnippet(snippet, i.env.Names())
	if err != nil {
		return nil, err
	}
	return i.engine.Eval(ctx, stmts, i.env)
}

// Names returns the names bound by earlier snippets
func (i *Interpreter) Names() []string {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.env.Names()
}

// Lookup returns the value bound to name by earlier snippets
func (i *Interpreter) Lookup(name string) (value.Value, bool) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.env.Get(name)
}

// Reset discards all snippet bindings
func (i *Interpreter) Reset() {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	i.env = executor.NewEnvironment()
}

// Run is a convenience function that runs source with default options,
// writing printed values to out
func Run(ctx context.Context, source string, out io.Writer) error {
	return New(Options{Output: out}).Run(ctx, source)
}

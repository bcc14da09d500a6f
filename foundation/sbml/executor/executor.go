// File: executor.go
// Title: SBML Evaluation Engine
// Description: Tree-walking evaluator. Statements run in textual order
//              against one global environment; every runtime contract
//              violation aborts the run with a SEMANTIC error.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial evaluator implementation
// - 2026-10-17 v0.1.1: Dropped the single expression entry point

package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml/ast"
	"github.com/msto63/sbml/foundation/sbml/value"
)

// Engine evaluates parsed programs and snippets. An Engine holds no run
// state and may be shared, but runs writing to the same Output interleave.
type Engine struct {
	logger  *sbmllog.Logger
	output  io.Writer
	options Options
}

// Options configures evaluator behavior
type Options struct {
	Logger *sbmllog.Logger

	// Output receives printed values, default os.Stdout
	Output io.Writer

	// MaxIterations caps the total number of while iterations per run,
	// 0 means unlimited
	MaxIterations int
}

// New creates a new evaluation engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = sbmllog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Engine{
		logger:  opts.Logger.WithField("component", "sbml-executor"),
		output:  opts.Output,
		options: opts,
	}
}

// run carries the state of a single evaluation
type run struct {
	ctx        context.Context
	env        *Environment
	out        io.Writer
	iterations int
	limit      int
	last       value.Value
}

func (e *Engine) newRun(ctx context.Context, env *Environment) *run {
	if env == nil {
		env = NewEnvironment()
	}
	return &run{ctx: ctx, env: env, out: e.output, limit: e.options.MaxIterations}
}

// Run executes a program block against env. A nil env starts empty.
func (e *Engine) Run(ctx context.Context, program *ast.Block, env *Environment) error {
	r := e.newRun(ctx, env)
	e.logger.Debug("evaluation started", sbmllog.Fields{"statements": len(program.Statements)})

	if err := r.checkInterrupt(program); err != nil {
		return err
	}
	if err := r.exec(program); err != nil {
		e.logger.Debug("evaluation aborted", sbmllog.Fields{"error": err.Error(), "iterations": r.iterations})
		return err
	}

	e.logger.Debug("evaluation completed", sbmllog.Fields{"iterations": r.iterations, "bindings": r.env.Len()})
	return nil
}

// Eval executes snippet statements against env and returns the value of
// the last expression statement, or nil if none was evaluated.
func (e *Engine) Eval(ctx context.Context, stmts []ast.Stmt, env *Environment) (value.Value, error) {
	r := e.newRun(ctx, env)
	for _, stmt := range stmts {
		if err := r.exec(stmt); err != nil {
			return nil, err
		}
	}
	return r.last, nil
}

// Error helpers

func semanticError(message string, node ast.Node) *sbmlerror.Error {
	pos := node.Position()
	return sbmlerror.NewSemantic(message).
		WithPosition(pos.Line, pos.Column).
		WithOperation("executor.Eval")
}

func typeMismatch(node ast.Node, op string, operands ...value.Value) error {
	err := semanticError("type mismatch", node).WithDetail("operator", op)
	for i, v := range operands {
		err = err.WithDetail(fmt.Sprintf("operand%d", i+1), v.Kind().String())
	}
	return err
}

func (r *run) checkInterrupt(node ast.Node) error {
	if err := r.ctx.Err(); err != nil {
		pos := node.Position()
		return sbmlerror.Wrap(err, "evaluation interrupted").
			WithCode(sbmlerror.CodeInterrupted).
			WithPosition(pos.Line, pos.Column).
			WithOperation("executor.Run")
	}
	return nil
}

// Statements

func (r *run) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		for _, inner := range s.Statements {
			if err := r.exec(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.Assign:
		return r.assign(s)

	case *ast.Print:
		v, err := r.eval(s.Expr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, value.Format(v)); err != nil {
			return sbmlerror.Wrap(err, "writing output failed").
				WithCode(sbmlerror.CodeInternal).
				WithOperation("executor.Print")
		}
		return nil

	case *ast.If:
		cond, err := r.condition(s.Cond)
		if err != nil || !cond {
			return err
		}
		return r.exec(s.Then)

	case *ast.IfElse:
		cond, err := r.condition(s.Cond)
		if err != nil {
			return err
		}
		if cond {
			return r.exec(s.Then)
		}
		return r.exec(s.Else)

	case *ast.While:
		return r.loop(s)

	case *ast.ExprStmt:
		v, err := r.eval(s.Expr)
		if err != nil {
			return err
		}
		r.last = v
		return nil
	}

	return semanticError("unsupported statement", stmt).WithDetail("node", ast.TypeName(stmt))
}

func (r *run) loop(s *ast.While) error {
	for {
		if err := r.checkInterrupt(s); err != nil {
			return err
		}
		cond, err := r.condition(s.Cond)
		if err != nil || !cond {
			return err
		}

		r.iterations++
		if r.limit > 0 && r.iterations > r.limit {
			return semanticError("iteration limit exceeded", s).WithDetail("limit", r.limit)
		}
		if err := r.exec(s.Body); err != nil {
			return err
		}
	}
}

func (r *run) condition(expr ast.Expr) (bool, error) {
	v, err := r.eval(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(value.Boolean)
	if !ok {
		return false, semanticError("boolean expected", expr).WithDetail("kind", v.Kind().String())
	}
	return bool(b), nil
}

func (r *run) assign(s *ast.Assign) error {
	v, err := r.eval(s.Value)
	if err != nil {
		return err
	}

	switch target := s.Target.(type) {
	case *ast.VariableRef:
		r.env.Set(target.Name, v)
		return nil

	case *ast.IndexExpr:
		coll, err := r.eval(target.Collection)
		if err != nil {
			return err
		}
		idx, err := r.eval(target.Index)
		if err != nil {
			return err
		}

		switch c := coll.(type) {
		case *value.List:
			i, err := checkIndex(target, idx, c.Len())
			if err != nil {
				return err
			}
			c.Elements[i] = v
			return nil
		case value.String, value.Tuple:
			return semanticError("immutable target", target).WithDetail("kind", c.Kind().String())
		default:
			return typeMismatch(target, "[]=", coll)
		}
	}

	return semanticError("invalid assignment target", s.Target)
}

// Expressions

func (r *run) eval(expr ast.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		if n.IsReal {
			return value.Real(n.Real), nil
		}
		return value.Integer(n.Int), nil

	case *ast.StringLiteral:
		return value.String(n.Value), nil

	case *ast.BooleanLiteral:
		return value.Boolean(n.Value), nil

	case *ast.VariableRef:
		v, ok := r.env.Get(n.Name)
		if !ok {
			return nil, semanticError("undefined name", n).WithDetail("name", n.Name)
		}
		return v, nil

	case *ast.BinaryOp:
		return r.binary(n)

	case *ast.UnaryMinus:
		return r.negate(n)

	case *ast.Comparison:
		return r.compare(n)

	case *ast.Conjunction:
		return r.logical(n, n.Left, n.Right, false)

	case *ast.Disjunction:
		return r.logical(n, n.Left, n.Right, true)

	case *ast.Negation:
		v, err := r.eval(n.Operand)
		if err != nil {
			return nil, err
		}
		b, ok := v.(value.Boolean)
		if !ok {
			return nil, typeMismatch(n, "not", v)
		}
		return !b, nil

	case *ast.Membership:
		return r.membership(n)

	case *ast.Cons:
		head, err := r.eval(n.Head)
		if err != nil {
			return nil, err
		}
		tail, err := r.eval(n.Tail)
		if err != nil {
			return nil, err
		}
		list, ok := tail.(*value.List)
		if !ok {
			return nil, typeMismatch(n, "::", head, tail)
		}
		return value.Prepend(head, list), nil

	case *ast.ListLiteral:
		elems, err := r.evalAll(n.Elements)
		if err != nil {
			return nil, err
		}
		return value.NewList(elems...), nil

	case *ast.TupleLiteral:
		elems, err := r.evalAll(n.Elements)
		if err != nil {
			return nil, err
		}
		return value.Tuple(elems), nil

	case *ast.IndexExpr:
		return r.index(n)

	case *ast.TupleIndex:
		v, err := r.eval(n.Tuple)
		if err != nil {
			return nil, err
		}
		tuple, ok := v.(value.Tuple)
		if !ok {
			return nil, typeMismatch(n, "#", v)
		}
		offset := n.Index - 1
		if offset < 0 || offset >= int64(len(tuple)) {
			return nil, semanticError("index out of range", n).WithDetail("index", n.Index)
		}
		return tuple[offset], nil
	}

	return nil, semanticError("unsupported expression", expr).WithDetail("node", ast.TypeName(expr))
}

func (r *run) evalAll(exprs []ast.Expr) ([]value.Value, error) {
	values := make([]value.Value, len(exprs))
	for i, e := range exprs {
		v, err := r.eval(e)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// logical evaluates andalso (stopOn false) and orelse (stopOn true). The
// right operand is skipped once the left one decides the result.
func (r *run) logical(n ast.Expr, left, right ast.Expr, stopOn bool) (value.Value, error) {
	op := "andalso"
	if stopOn {
		op = "orelse"
	}

	lv, err := r.eval(left)
	if err != nil {
		return nil, err
	}
	lb, ok := lv.(value.Boolean)
	if !ok {
		return nil, typeMismatch(n, op, lv)
	}
	if bool(lb) == stopOn {
		return lb, nil
	}

	rv, err := r.eval(right)
	if err != nil {
		return nil, err
	}
	rb, ok := rv.(value.Boolean)
	if !ok {
		return nil, typeMismatch(n, op, lv, rv)
	}
	return rb, nil
}

func (r *run) compare(n *ast.Comparison) (value.Value, error) {
	left, err := r.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := r.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==", "<>":
		eq, ok := value.Equal(left, right)
		if !ok {
			return nil, typeMismatch(n, n.Op, left, right)
		}
		return value.Boolean(eq == (n.Op == "==")), nil
	}

	result, ok := value.Compare(n.Op, left, right)
	if !ok {
		return nil, typeMismatch(n, n.Op, left, right)
	}
	return value.Boolean(result), nil
}

func (r *run) membership(n *ast.Membership) (value.Value, error) {
	elem, err := r.eval(n.Element)
	if err != nil {
		return nil, err
	}
	coll, err := r.eval(n.Collection)
	if err != nil {
		return nil, err
	}

	switch c := coll.(type) {
	case *value.List:
		return value.Boolean(value.Contains(c, elem)), nil
	case value.String:
		s, ok := elem.(value.String)
		if !ok {
			return nil, typeMismatch(n, "in", elem, coll)
		}
		return value.Boolean(strings.Contains(string(c), string(s))), nil
	}
	return nil, typeMismatch(n, "in", elem, coll)
}

func (r *run) index(n *ast.IndexExpr) (value.Value, error) {
	coll, err := r.eval(n.Collection)
	if err != nil {
		return nil, err
	}
	idx, err := r.eval(n.Index)
	if err != nil {
		return nil, err
	}

	switch c := coll.(type) {
	case *value.List:
		i, err := checkIndex(n, idx, c.Len())
		if err != nil {
			return nil, err
		}
		return c.Elements[i], nil
	case value.String:
		runes := []rune(string(c))
		i, err := checkIndex(n, idx, len(runes))
		if err != nil {
			return nil, err
		}
		return value.String(string(runes[i])), nil
	}
	return nil, typeMismatch(n, "[]", coll, idx)
}

// checkIndex validates a 0-based index against length
func checkIndex(n ast.Node, idx value.Value, length int) (int, error) {
	i, ok := idx.(value.Integer)
	if !ok {
		return 0, semanticError("type mismatch", n).
			WithDetail("operator", "[]").
			WithDetail("index", idx.Kind().String())
	}
	if i < 0 || int64(i) >= int64(length) {
		return 0, semanticError("index out of range", n).
			WithDetail("index", int64(i)).
			WithDetail("length", length)
	}
	return int(i), nil
}

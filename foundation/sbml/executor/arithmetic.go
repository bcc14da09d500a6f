// File: arithmetic.go
// Title: SBML Arithmetic Operators
// Description: Dispatch of + - * / div mod ** and unary minus on operand
//              values. Integer results are checked for overflow.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: div and mod take Integer operands only

package executor

import (
	"math"

	"github.com/msto63/sbml/foundation/sbml/ast"
	"github.com/msto63/sbml/foundation/sbml/value"
	"github.com/msto63/sbml/foundation/utils/mathx"
)

func (r *run) binary(n *ast.BinaryOp) (value.Value, error) {
	left, err := r.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := r.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+":
		return add(n, left, right)
	case "-", "*":
		return numeric(n, left, right)
	case "/":
		return divide(n, left, right)
	case "div", "mod":
		return integerDivision(n, left, right)
	case "**":
		return power(n, left, right)
	}
	return nil, semanticError("unsupported operator", n).WithDetail("operator", n.Op)
}

// add concatenates strings and lists and otherwise adds numbers. Tuples
// cannot be concatenated.
func add(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.String:
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
		return nil, typeMismatch(n, n.Op, left, right)
	case *value.List:
		if r, ok := right.(*value.List); ok {
			return value.Concat(l, r), nil
		}
		return nil, typeMismatch(n, n.Op, left, right)
	}
	return numeric(n, left, right)
}

// numeric applies + - * to two numbers. Two integers give an integer.
func numeric(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	li, lok := left.(value.Integer)
	ri, rok := right.(value.Integer)
	if lok && rok {
		var (
			result int64
			ok     bool
		)
		switch n.Op {
		case "+":
			result, ok = mathx.AddInt64(int64(li), int64(ri))
		case "-":
			result, ok = mathx.SubInt64(int64(li), int64(ri))
		case "*":
			result, ok = mathx.MulInt64(int64(li), int64(ri))
		}
		if !ok {
			return nil, semanticError("integer overflow", n).WithDetail("operator", n.Op)
		}
		return value.Integer(result), nil
	}

	lf, lok := value.ToFloat(left)
	rf, rok := value.ToFloat(right)
	if !lok || !rok {
		return nil, typeMismatch(n, n.Op, left, right)
	}
	switch n.Op {
	case "+":
		return value.Real(lf + rf), nil
	case "-":
		return value.Real(lf - rf), nil
	default:
		return value.Real(lf * rf), nil
	}
}

// divide is true division and always yields a real
func divide(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	lf, lok := value.ToFloat(left)
	rf, rok := value.ToFloat(right)
	if !lok || !rok {
		return nil, typeMismatch(n, n.Op, left, right)
	}
	if rf == 0 {
		return nil, semanticError("division by zero", n).WithDetail("operator", n.Op)
	}
	return value.Real(lf / rf), nil
}

// integerDivision implements div and mod with floor semantics on Integer
// operands.
func integerDivision(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	li, lok := left.(value.Integer)
	ri, rok := right.(value.Integer)
	if !lok || !rok {
		return nil, typeMismatch(n, n.Op, left, right)
	}
	if ri == 0 {
		return nil, semanticError("division by zero", n).WithDetail("operator", n.Op)
	}

	if n.Op == "mod" {
		return value.Integer(mathx.FloorMod(int64(li), int64(ri))), nil
	}
	q, ok := mathx.FloorDiv(int64(li), int64(ri))
	if !ok {
		return nil, semanticError("integer overflow", n).WithDetail("operator", n.Op)
	}
	return value.Integer(q), nil
}

// power yields an integer for an integer base and a non-negative integer
// exponent, and a real otherwise.
func power(n *ast.BinaryOp, left, right value.Value) (value.Value, error) {
	li, lok := left.(value.Integer)
	ri, rok := right.(value.Integer)
	if lok && rok && ri >= 0 {
		result, ok := mathx.PowInt64(int64(li), int64(ri))
		if !ok {
			return nil, semanticError("integer overflow", n).WithDetail("operator", n.Op)
		}
		return value.Integer(result), nil
	}

	base, bok := value.ToFloat(left)
	exp, eok := value.ToFloat(right)
	if !bok || !eok {
		return nil, typeMismatch(n, n.Op, left, right)
	}
	if base == 0 && exp < 0 {
		return nil, semanticError("division by zero", n).WithDetail("operator", n.Op)
	}

	result := math.Pow(base, exp)
	switch {
	case math.IsNaN(result) && !math.IsNaN(base) && !math.IsNaN(exp):
		// negative base with a fractional exponent
		return nil, semanticError("invalid operand", n).WithDetail("operator", n.Op)
	case math.IsInf(result, 0) && !math.IsInf(base, 0) && !math.IsInf(exp, 0):
		return nil, semanticError("numeric overflow", n).WithDetail("operator", n.Op)
	}
	return value.Real(result), nil
}

func (r *run) negate(n *ast.UnaryMinus) (value.Value, error) {
	v, err := r.eval(n.Operand)
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case value.Integer:
		if x == math.MinInt64 {
			return nil, semanticError("integer overflow", n).WithDetail("operator", "-")
		}
		return -x, nil
	case value.Real:
		return -x, nil
	}
	return nil, typeMismatch(n, "-", v)
}

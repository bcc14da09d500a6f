// File: nodes.go
// Title: SBML Syntax Tree Node Definitions
// Description: Defines the statement and expression nodes produced by the
//              parser. Every node carries its source position and renders
//              back to source-like text through String.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial node definitions

package ast

import (
	"strconv"
	"strings"
)

// Node represents the base interface for all syntax tree nodes
type Node interface {
	// String returns source-like text for the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based
	Column int // 1-based
}

// Stmt is implemented by statement nodes
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes
type Expr interface {
	Node
	exprNode()
}

// Statements

// Block is a braced sequence of statements. Blocks do not open a scope.
type Block struct {
	Statements []Stmt
	Pos        Position
}

// Assign binds Value to Target, which is a *VariableRef or an *IndexExpr
type Assign struct {
	Target Expr
	Value  Expr
	Pos    Position
}

// Print writes the canonical text of Expr followed by a newline
type Print struct {
	Expr Expr
	Pos  Position
}

// If runs Then when Cond is true
type If struct {
	Cond Expr
	Then *Block
	Pos  Position
}

// IfElse runs Then or Else depending on Cond
type IfElse struct {
	Cond Expr
	Then *Block
	Else *Block
	Pos  Position
}

// While runs Body until Cond is false
type While struct {
	Cond Expr
	Body *Block
	Pos  Position
}

// ExprStmt is a bare expression statement. Only interactive snippets
// produce it; its value is reported back to the caller.
type ExprStmt struct {
	Expr Expr
	Pos  Position
}

// Expressions

// NumberLiteral is an integer or real literal
type NumberLiteral struct {
	IsReal bool
	Int    int64
	Real   float64
	Raw    string
	Pos    Position
}

// StringLiteral holds the literal content with delimiters removed and
// escapes processed
type StringLiteral struct {
	Value string
	Pos   Position
}

// BooleanLiteral is True or False
type BooleanLiteral struct {
	Value bool
	Pos   Position
}

// VariableRef names a binding in the environment
type VariableRef struct {
	Name string
	Pos  Position
}

// BinaryOp is an arithmetic operation: + - * / ** mod div
type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Position
}

// UnaryMinus negates a numeric operand
type UnaryMinus struct {
	Operand Expr
	Pos     Position
}

// Comparison is one of < <= > >= == <>
type Comparison struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Position
}

// Conjunction is left andalso right
type Conjunction struct {
	Left  Expr
	Right Expr
	Pos   Position
}

// Disjunction is left orelse right
type Disjunction struct {
	Left  Expr
	Right Expr
	Pos   Position
}

// Negation is not operand
type Negation struct {
	Operand Expr
	Pos     Position
}

// Membership is element in collection
type Membership struct {
	Element    Expr
	Collection Expr
	Pos        Position
}

// Cons is head :: tail
type Cons struct {
	Head Expr
	Tail Expr
	Pos  Position
}

// ListLiteral is [e1, e2, ...]
type ListLiteral struct {
	Elements []Expr
	Pos      Position
}

// TupleLiteral is (e1, e2, ...) with at least two elements
type TupleLiteral struct {
	Elements []Expr
	Pos      Position
}

// IndexExpr is collection[index] on a list or string, 0-based
type IndexExpr struct {
	Collection Expr
	Index      Expr
	Pos        Position
}

// TupleIndex is #index tuple, 1-based, with the index fixed at parse time
type TupleIndex struct {
	Index int64
	Tuple Expr
	Pos   Position
}

func (*Block) stmtNode()    {}
func (*Assign) stmtNode()   {}
func (*Print) stmtNode()    {}
func (*If) stmtNode()       {}
func (*IfElse) stmtNode()   {}
func (*While) stmtNode()    {}
func (*ExprStmt) stmtNode() {}

func (*NumberLiteral) exprNode()  {}
func (*StringLiteral) exprNode()  {}
func (*BooleanLiteral) exprNode() {}
func (*VariableRef) exprNode()    {}
func (*BinaryOp) exprNode()       {}
func (*UnaryMinus) exprNode()     {}
func (*Comparison) exprNode()     {}
func (*Conjunction) exprNode()    {}
func (*Disjunction) exprNode()    {}
func (*Negation) exprNode()       {}
func (*Membership) exprNode()     {}
func (*Cons) exprNode()           {}
func (*ListLiteral) exprNode()    {}
func (*TupleLiteral) exprNode()   {}
func (*IndexExpr) exprNode()      {}
func (*TupleIndex) exprNode()     {}

func (n *Block) Position() Position          { return n.Pos }
func (n *Assign) Position() Position         { return n.Pos }
func (n *Print) Position() Position          { return n.Pos }
func (n *If) Position() Position             { return n.Pos }
func (n *IfElse) Position() Position         { return n.Pos }
func (n *While) Position() Position          { return n.Pos }
func (n *ExprStmt) Position() Position       { return n.Pos }
func (n *NumberLiteral) Position() Position  { return n.Pos }
func (n *StringLiteral) Position() Position  { return n.Pos }
func (n *BooleanLiteral) Position() Position { return n.Pos }
func (n *VariableRef) Position() Position    { return n.Pos }
func (n *BinaryOp) Position() Position       { return n.Pos }
func (n *UnaryMinus) Position() Position     { return n.Pos }
func (n *Comparison) Position() Position     { return n.Pos }
func (n *Conjunction) Position() Position    { return n.Pos }
func (n *Disjunction) Position() Position    { return n.Pos }
func (n *Negation) Position() Position       { return n.Pos }
func (n *Membership) Position() Position     { return n.Pos }
func (n *Cons) Position() Position           { return n.Pos }
func (n *ListLiteral) Position() Position    { return n.Pos }
func (n *TupleLiteral) Position() Position   { return n.Pos }
func (n *IndexExpr) Position() Position      { return n.Pos }
func (n *TupleIndex) Position() Position     { return n.Pos }

// String representations. Compound expressions are fully parenthesised so
// the text shows how the parser grouped them.

func (n *Block) String() string {
	if len(n.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, len(n.Statements))
	for i, s := range n.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (n *Assign) String() string {
	return n.Target.String() + " = " + n.Value.String() + ";"
}

func (n *Print) String() string {
	return "print(" + n.Expr.String() + ");"
}

func (n *If) String() string {
	return "if (" + n.Cond.String() + ") " + n.Then.String()
}

func (n *IfElse) String() string {
	return "if (" + n.Cond.String() + ") " + n.Then.String() + " else " + n.Else.String()
}

func (n *While) String() string {
	return "while (" + n.Cond.String() + ") " + n.Body.String()
}

func (n *ExprStmt) String() string {
	return n.Expr.String() + ";"
}

func (n *NumberLiteral) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	if n.IsReal {
		return strconv.FormatFloat(n.Real, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

func (n *StringLiteral) String() string {
	return strconv.Quote(n.Value)
}

func (n *BooleanLiteral) String() string {
	if n.Value {
		return "True"
	}
	return "False"
}

func (n *VariableRef) String() string {
	return n.Name
}

func (n *BinaryOp) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

func (n *UnaryMinus) String() string {
	return "-" + n.Operand.String()
}

func (n *Comparison) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

func (n *Conjunction) String() string {
	return "(" + n.Left.String() + " andalso " + n.Right.String() + ")"
}

func (n *Disjunction) String() string {
	return "(" + n.Left.String() + " orelse " + n.Right.String() + ")"
}

func (n *Negation) String() string {
	return "not " + n.Operand.String()
}

func (n *Membership) String() string {
	return "(" + n.Element.String() + " in " + n.Collection.String() + ")"
}

func (n *Cons) String() string {
	return "(" + n.Head.String() + " :: " + n.Tail.String() + ")"
}

func (n *ListLiteral) String() string {
	return "[" + joinExprs(n.Elements) + "]"
}

func (n *TupleLiteral) String() string {
	return "(" + joinExprs(n.Elements) + ")"
}

func (n *IndexExpr) String() string {
	return n.Collection.String() + "[" + n.Index.String() + "]"
}

func (n *TupleIndex) String() string {
	return "#" + strconv.FormatInt(n.Index, 10) + " " + n.Tuple.String()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// IsBooleanOperand reports whether e may appear as an operand of andalso,
// orelse or not, or as an if/while condition.
func IsBooleanOperand(e Expr) bool {
	switch e.(type) {
	case *Comparison, *Membership, *Conjunction, *Disjunction, *Negation,
		*VariableRef, *BooleanLiteral:
		return true
	default:
		return false
	}
}

// IsLValue reports whether e may appear on the left of an assignment
func IsLValue(e Expr) bool {
	switch e.(type) {
	case *VariableRef, *IndexExpr:
		return true
	default:
		return false
	}
}

// TypeName returns the node's variant name as used in tree dumps
func TypeName(n Node) string {
	switch n.(type) {
	case *Block:
		return "Block"
	case *Assign:
		return "Assign"
	case *Print:
		return "Print"
	case *If:
		return "If"
	case *IfElse:
		return "IfElse"
	case *While:
		return "While"
	case *ExprStmt:
		return "ExprStmt"
	case *NumberLiteral:
		return "NumberLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	case *VariableRef:
		return "VariableRef"
	case *BinaryOp:
		return "BinaryOp"
	case *UnaryMinus:
		return "UnaryMinus"
	case *Comparison:
		return "Comparison"
	case *Conjunction:
		return "Conjunction"
	case *Disjunction:
		return "Disjunction"
	case *Negation:
		return "Negation"
	case *Membership:
		return "Membership"
	case *Cons:
		return "Cons"
	case *ListLiteral:
		return "ListLiteral"
	case *TupleLiteral:
		return "TupleLiteral"
	case *IndexExpr:
		return "IndexExpr"
	case *TupleIndex:
		return "TupleIndex"
	default:
		return "Unknown"
	}
}

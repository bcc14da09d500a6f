// File: visitor.go
// Title: SBML Syntax Tree Visitor
// Description: Visitor interface over all node variants, child enumeration
//              and Inspect for depth-aware traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor implementation

package ast

// Visitor interface for traversing syntax trees
type Visitor interface {
	// Statements
	VisitBlock(n *Block) interface{}
	VisitAssign(n *Assign) interface{}
	VisitPrint(n *Print) interface{}
	VisitIf(n *If) interface{}
	VisitIfElse(n *IfElse) interface{}
	VisitWhile(n *While) interface{}
	VisitExprStmt(n *ExprStmt) interface{}

	// Expressions
	VisitNumberLiteral(n *NumberLiteral) interface{}
	VisitStringLiteral(n *StringLiteral) interface{}
	VisitBooleanLiteral(n *BooleanLiteral) interface{}
	VisitVariableRef(n *VariableRef) interface{}
	VisitBinaryOp(n *BinaryOp) interface{}
	VisitUnaryMinus(n *UnaryMinus) interface{}
	VisitComparison(n *Comparison) interface{}
	VisitConjunction(n *Conjunction) interface{}
	VisitDisjunction(n *Disjunction) interface{}
	VisitNegation(n *Negation) interface{}
	VisitMembership(n *Membership) interface{}
	VisitCons(n *Cons) interface{}
	VisitListLiteral(n *ListLiteral) interface{}
	VisitTupleLiteral(n *TupleLiteral) interface{}
	VisitIndexExpr(n *IndexExpr) interface{}
	VisitTupleIndex(n *TupleIndex) interface{}
}

func (n *Block) Accept(v Visitor) interface{}          { return v.VisitBlock(n) }
func (n *Assign) Accept(v Visitor) interface{}         { return v.VisitAssign(n) }
func (n *Print) Accept(v Visitor) interface{}          { return v.VisitPrint(n) }
func (n *If) Accept(v Visitor) interface{}             { return v.VisitIf(n) }
func (n *IfElse) Accept(v Visitor) interface{}         { return v.VisitIfElse(n) }
func (n *While) Accept(v Visitor) interface{}          { return v.VisitWhile(n) }
func (n *ExprStmt) Accept(v Visitor) interface{}       { return v.VisitExprStmt(n) }
func (n *NumberLiteral) Accept(v Visitor) interface{}  { return v.VisitNumberLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) interface{}  { return v.VisitStringLiteral(n) }
func (n *BooleanLiteral) Accept(v Visitor) interface{} { return v.VisitBooleanLiteral(n) }
func (n *VariableRef) Accept(v Visitor) interface{}    { return v.VisitVariableRef(n) }
func (n *BinaryOp) Accept(v Visitor) interface{}       { return v.VisitBinaryOp(n) }
func (n *UnaryMinus) Accept(v Visitor) interface{}     { return v.VisitUnaryMinus(n) }
func (n *Comparison) Accept(v Visitor) interface{}     { return v.VisitComparison(n) }
func (n *Conjunction) Accept(v Visitor) interface{}    { return v.VisitConjunction(n) }
func (n *Disjunction) Accept(v Visitor) interface{}    { return v.VisitDisjunction(n) }
func (n *Negation) Accept(v Visitor) interface{}       { return v.VisitNegation(n) }
func (n *Membership) Accept(v Visitor) interface{}     { return v.VisitMembership(n) }
func (n *Cons) Accept(v Visitor) interface{}           { return v.VisitCons(n) }
func (n *ListLiteral) Accept(v Visitor) interface{}    { return v.VisitListLiteral(n) }
func (n *TupleLiteral) Accept(v Visitor) interface{}   { return v.VisitTupleLiteral(n) }
func (n *IndexExpr) Accept(v Visitor) interface{}      { return v.VisitIndexExpr(n) }
func (n *TupleIndex) Accept(v Visitor) interface{}     { return v.VisitTupleIndex(n) }

// Children returns the direct child nodes of n in source order
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Block:
		out := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			out[i] = s
		}
		return out
	case *Assign:
		return []Node{n.Target, n.Value}
	case *Print:
		return []Node{n.Expr}
	case *If:
		return []Node{n.Cond, n.Then}
	case *IfElse:
		return []Node{n.Cond, n.Then, n.Else}
	case *While:
		return []Node{n.Cond, n.Body}
	case *ExprStmt:
		return []Node{n.Expr}
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	case *UnaryMinus:
		return []Node{n.Operand}
	case *Comparison:
		return []Node{n.Left, n.Right}
	case *Conjunction:
		return []Node{n.Left, n.Right}
	case *Disjunction:
		return []Node{n.Left, n.Right}
	case *Negation:
		return []Node{n.Operand}
	case *Membership:
		return []Node{n.Element, n.Collection}
	case *Cons:
		return []Node{n.Head, n.Tail}
	case *ListLiteral:
		return exprNodes(n.Elements)
	case *TupleLiteral:
		return exprNodes(n.Elements)
	case *IndexExpr:
		return []Node{n.Collection, n.Index}
	case *TupleIndex:
		return []Node{n.Tuple}
	default:
		return nil
	}
}

func exprNodes(exprs []Expr) []Node {
	out := make([]Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

// Inspect traverses the tree depth-first, calling fn for each node with its
// depth. Children of a node are skipped when fn returns false.
func Inspect(n Node, fn func(n Node, depth int) bool) {
	inspect(n, 0, fn)
}

func inspect(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range Children(n) {
		inspect(c, depth+1, fn)
	}
}

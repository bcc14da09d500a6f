// File: dump.go
// Title: SBML Syntax Tree Dump
// Description: Renders a syntax tree as an indented text outline or as a
//              generic map suitable for YAML and JSON encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strings"
)

// Dump renders n as an indented outline, one node per line
func Dump(n Node) string {
	var b strings.Builder
	Inspect(n, func(node Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(TypeName(node))
		if detail := nodeDetail(node); detail != "" {
			b.WriteString(" ")
			b.WriteString(detail)
		}
		fmt.Fprintf(&b, " @%d:%d\n", node.Position().Line, node.Position().Column)
		return true
	})
	return b.String()
}

func nodeDetail(n Node) string {
	switch n := n.(type) {
	case *NumberLiteral, *StringLiteral, *BooleanLiteral, *VariableRef:
		return n.String()
	case *BinaryOp:
		return n.Op
	case *Comparison:
		return n.Op
	case *TupleIndex:
		return fmt.Sprintf("#%d", n.Index)
	default:
		return ""
	}
}

// ToMap converts n into nested maps and slices. Every map has a "type" key
// and a "line" key; the remaining keys depend on the variant.
func ToMap(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	m, _ := n.Accept(&MapVisitor{}).(map[string]interface{})
	return m
}

// MapVisitor builds the ToMap representation
type MapVisitor struct{}

func (mv *MapVisitor) node(n Node, fields map[string]interface{}) map[string]interface{} {
	fields["type"] = TypeName(n)
	fields["line"] = n.Position().Line
	return fields
}

func (mv *MapVisitor) sub(n Node) interface{} {
	if n == nil {
		return nil
	}
	return n.Accept(mv)
}

func (mv *MapVisitor) list(exprs []Expr) []interface{} {
	out := make([]interface{}, len(exprs))
	for i, e := range exprs {
		out[i] = mv.sub(e)
	}
	return out
}

func (mv *MapVisitor) VisitBlock(n *Block) interface{} {
	stmts := make([]interface{}, len(n.Statements))
	for i, s := range n.Statements {
		stmts[i] = mv.sub(s)
	}
	return mv.node(n, map[string]interface{}{"statements": stmts})
}

func (mv *MapVisitor) VisitAssign(n *Assign) interface{} {
	return mv.node(n, map[string]interface{}{"target": mv.sub(n.Target), "value": mv.sub(n.Value)})
}

func (mv *MapVisitor) VisitPrint(n *Print) interface{} {
	return mv.node(n, map[string]interface{}{"expr": mv.sub(n.Expr)})
}

func (mv *MapVisitor) VisitIf(n *If) interface{} {
	return mv.node(n, map[string]interface{}{"cond": mv.sub(n.Cond), "then": mv.sub(n.Then)})
}

func (mv *MapVisitor) VisitIfElse(n *IfElse) interface{} {
	return mv.node(n, map[string]interface{}{
		"cond": mv.sub(n.Cond),
		"then": mv.sub(n.Then),
		"else": mv.sub(n.Else),
	})
}

func (mv *MapVisitor) VisitWhile(n *While) interface{} {
	return mv.node(n, map[string]interface{}{"cond": mv.sub(n.Cond), "body": mv.sub(n.Body)})
}

func (mv *MapVisitor) VisitExprStmt(n *ExprStmt) interface{} {
	return mv.node(n, map[string]interface{}{"expr": mv.sub(n.Expr)})
}

func (mv *MapVisitor) VisitNumberLiteral(n *NumberLiteral) interface{} {
	if n.IsReal {
		return mv.node(n, map[string]interface{}{"value": n.Real, "real": true})
	}
	return mv.node(n, map[string]interface{}{"value": n.Int})
}

func (mv *MapVisitor) VisitStringLiteral(n *StringLiteral) interface{} {
	return mv.node(n, map[string]interface{}{"value": n.Value})
}

func (mv *MapVisitor) VisitBooleanLiteral(n *BooleanLiteral) interface{} {
	return mv.node(n, map[string]interface{}{"value": n.Value})
}

func (mv *MapVisitor) VisitVariableRef(n *VariableRef) interface{} {
	return mv.node(n, map[string]interface{}{"name": n.Name})
}

func (mv *MapVisitor) VisitBinaryOp(n *BinaryOp) interface{} {
	return mv.node(n, map[string]interface{}{"op": n.Op, "left": mv.sub(n.Left), "right": mv.sub(n.Right)})
}

func (mv *MapVisitor) VisitUnaryMinus(n *UnaryMinus) interface{} {
	return mv.node(n, map[string]interface{}{"operand": mv.sub(n.Operand)})
}

func (mv *MapVisitor) VisitComparison(n *Comparison) interface{} {
	return mv.node(n, map[string]interface{}{"op": n.Op, "left": mv.sub(n.Left), "right": mv.sub(n.Right)})
}

func (mv *MapVisitor) VisitConjunction(n *Conjunction) interface{} {
	return mv.node(n, map[string]interface{}{"left": mv.sub(n.Left), "right": mv.sub(n.Right)})
}

func (mv *MapVisitor) VisitDisjunction(n *Disjunction) interface{} {
	return mv.node(n, map[string]interface{}{"left": mv.sub(n.Left), "right": mv.sub(n.Right)})
}

func (mv *MapVisitor) VisitNegation(n *Negation) interface{} {
	return mv.node(n, map[string]interface{}{"operand": mv.sub(n.Operand)})
}

func (mv *MapVisitor) VisitMembership(n *Membership) interface{} {
	return mv.node(n, map[string]interface{}{"element": mv.sub(n.Element), "collection": mv.sub(n.Collection)})
}

func (mv *MapVisitor) VisitCons(n *Cons) interface{} {
	return mv.node(n, map[string]interface{}{"head": mv.sub(n.Head), "tail": mv.sub(n.Tail)})
}

func (mv *MapVisitor) VisitListLiteral(n *ListLiteral) interface{} {
	return mv.node(n, map[string]interface{}{"elements": mv.list(n.Elements)})
}

func (mv *MapVisitor) VisitTupleLiteral(n *TupleLiteral) interface{} {
	return mv.node(n, map[string]interface{}{"elements": mv.list(n.Elements)})
}

func (mv *MapVisitor) VisitIndexExpr(n *IndexExpr) interface{} {
	return mv.node(n, map[string]interface{}{"collection": mv.sub(n.Collection), "index": mv.sub(n.Index)})
}

func (mv *MapVisitor) VisitTupleIndex(n *TupleIndex) interface{} {
	return mv.node(n, map[string]interface{}{"index": n.Index, "tuple": mv.sub(n.Tuple)})
}

// File: ast_test.go
// Title: SBML Syntax Tree Tests
// Description: Tests for node rendering, shape predicates, traversal and
//              the text/map dumps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tests

package ast

import (
	"strings"
	"testing"
)

func pos(line, col int) Position { return Position{Line: line, Column: col} }

// { x = 1 + 2 * 3; if (x > 4) { print(x); } }
func sampleProgram() *Block {
	x := &VariableRef{Name: "x", Pos: pos(1, 3)}
	sum := &BinaryOp{
		Op:   "+",
		Left: &NumberLiteral{Int: 1, Raw: "1", Pos: pos(1, 7)},
		Right: &BinaryOp{
			Op:    "*",
			Left:  &NumberLiteral{Int: 2, Raw: "2", Pos: pos(1, 11)},
			Right: &NumberLiteral{Int: 3, Raw: "3", Pos: pos(1, 15)},
			Pos:   pos(1, 13),
		},
		Pos: pos(1, 9),
	}
	cond := &Comparison{Op: ">", Left: &VariableRef{Name: "x", Pos: pos(1, 23)}, Right: &NumberLiteral{Int: 4, Raw: "4", Pos: pos(1, 27)}, Pos: pos(1, 25)}
	body := &Block{Statements: []Stmt{&Print{Expr: &VariableRef{Name: "x", Pos: pos(1, 39)}, Pos: pos(1, 33)}}, Pos: pos(1, 31)}

	return &Block{
		Statements: []Stmt{
			&Assign{Target: x, Value: sum, Pos: pos(1, 5)},
			&If{Cond: cond, Then: body, Pos: pos(1, 19)},
		},
		Pos: pos(1, 1),
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"program", sampleProgram(), "{ x = (1 + (2 * 3)); if ((x > 4)) { print(x); } }"},
		{"empty block", &Block{}, "{ }"},
		{"tuple index", &TupleIndex{Index: 2, Tuple: &TupleLiteral{Elements: []Expr{&BooleanLiteral{Value: true}, &StringLiteral{Value: "a"}}}}, `#2 (True, "a")`},
		{"cons", &Cons{Head: &NumberLiteral{Int: 1}, Tail: &ListLiteral{}}, "(1 :: [])"},
		{"real", &NumberLiteral{IsReal: true, Real: 0.5}, "0.5"},
		{"negation", &Negation{Operand: &Membership{Element: &VariableRef{Name: "a"}, Collection: &VariableRef{Name: "b"}}}, "not (a in b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsBooleanOperand(t *testing.T) {
	allowed := []Expr{
		&Comparison{}, &Membership{}, &Conjunction{}, &Disjunction{},
		&Negation{}, &VariableRef{}, &BooleanLiteral{},
	}
	for _, e := range allowed {
		if !IsBooleanOperand(e) {
			t.Errorf("%s should be a boolean operand", TypeName(e))
		}
	}

	rejected := []Expr{
		&NumberLiteral{}, &StringLiteral{}, &BinaryOp{}, &UnaryMinus{},
		&ListLiteral{}, &TupleLiteral{}, &Cons{}, &IndexExpr{}, &TupleIndex{},
	}
	for _, e := range rejected {
		if IsBooleanOperand(e) {
			t.Errorf("%s should not be a boolean operand", TypeName(e))
		}
	}
}

func TestIsLValue(t *testing.T) {
	if !IsLValue(&VariableRef{}) || !IsLValue(&IndexExpr{}) {
		t.Error("variable and index must be lvalues")
	}
	if IsLValue(&TupleIndex{}) || IsLValue(&NumberLiteral{}) {
		t.Error("tuple index and literal must not be lvalues")
	}
}

func TestInspectDepths(t *testing.T) {
	var names []string
	Inspect(sampleProgram(), func(n Node, depth int) bool {
		if depth <= 1 {
			names = append(names, TypeName(n))
		}
		return depth < 1
	})

	want := "Block,Assign,If"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("visited %s, want %s", got, want)
	}
}

func TestDump(t *testing.T) {
	out := Dump(sampleProgram())
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if lines[0] != "Block @1:1" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "  Assign @1:5" {
		t.Errorf("second line = %q", lines[1])
	}
	if !strings.Contains(out, "    BinaryOp + @1:9\n") {
		t.Errorf("missing operator line in\n%s", out)
	}
	if !strings.Contains(out, "\n        VariableRef x @1:39\n") {
		t.Errorf("missing nested print operand in\n%s", out)
	}
}

func TestToMap(t *testing.T) {
	m := ToMap(sampleProgram())
	if m["type"] != "Block" || m["line"] != 1 {
		t.Fatalf("root = %v", m)
	}

	stmts := m["statements"].([]interface{})
	if len(stmts) != 2 {
		t.Fatalf("statements = %d, want 2", len(stmts))
	}

	assign := stmts[0].(map[string]interface{})
	value := assign["value"].(map[string]interface{})
	if value["op"] != "+" {
		t.Errorf("value op = %v", value["op"])
	}
	right := value["right"].(map[string]interface{})
	if right["op"] != "*" {
		t.Errorf("precedence lost in map: %v", right)
	}

	if ToMap(nil) != nil {
		t.Error("ToMap(nil) should be nil")
	}
}

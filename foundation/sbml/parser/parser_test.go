// File: parser_test.go
// Title: SBML Parser Tests
// Description: Tests for precedence and associativity, statement forms,
//              shape checks, undefined names and syntax error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tests

package parser

import (
	"strings"
	"testing"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml/ast"
)

func newTestParser() *Parser {
	return New(Options{Logger: sbmllog.Discard()})
}

// parseExpr parses "{ r = <expr>; }" and returns the rendered right side
func parseExpr(t *testing.T, expr string, declared ...string) string {
	t.Helper()
	stmts, err := newTestParser().ParseSnippet("r = "+expr+";", declared)
	if err != nil {
		t.Fatalf("parse %q: %v", expr, err)
	}
	return stmts[0].(*ast.Assign).Value.String()
}

func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"multiplication binds tighter", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"additive is left associative", "1 - 2 - 3", "((1 - 2) - 3)"},
		{"word operators are multiplicative", "7 div 2 mod 3", "((7 div 2) mod 3)"},
		{"power is right associative", "2 ** 3 ** 2", "(2 ** (3 ** 2))"},
		{"power binds tighter than multiplication", "2 * 3 ** 2", "(2 * (3 ** 2))"},
		{"unary minus binds tighter than power", "-2 ** 2", "(-2 ** 2)"},
		{"negative exponent", "2 ** -1", "(2 ** -1)"},
		{"cons is right associative", "1 :: 2 :: []", "(1 :: (2 :: []))"},
		{"membership binds tighter than cons", "1 in x :: y", "((1 in x) :: y)"},
		{"additive binds tighter than membership", "1 + 1 in x", "((1 + 1) in x)"},
		{"comparison is looser than cons", "1 :: x == y", "((1 :: x) == y)"},
		{"andalso binds tighter than orelse", "a orelse b andalso c", "(a orelse (b andalso c))"},
		{"not binds tighter than andalso", "not a andalso b", "(not a andalso b)"},
		{"not applies to comparison", "not 1 < 2", "not (1 < 2)"},
		{"parentheses group", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"indexing", "x[1][2]", "x[1][2]"},
		{"index binds tighter than arithmetic", "x[0] + 1", "(x[0] + 1)"},
		{"tuple index applies before indexing", "#1 x[0]", "#1 x[0]"},
		{"nested tuple index", "#1 #2 x", "#1 #2 x"},
		{"tuple literal", "(1, 2, 3)", "(1, 2, 3)"},
		{"list literal", "[1, 'a', [True]]", `[1, "a", [True]]`},
		{"empty list", "[]", "[]"},
		{"string escapes", `"a\tb"`, `"a\tb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExpr(t, tt.input, "a", "b", "c", "x", "y")
			if got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestParser_NodeShapes(t *testing.T) {
	stmts, err := newTestParser().ParseSnippet("r = #1 x[0];", []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	idx, ok := stmts[0].(*ast.Assign).Value.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected IndexExpr at top, got %T", stmts[0].(*ast.Assign).Value)
	}
	if _, ok := idx.Collection.(*ast.TupleIndex); !ok {
		t.Errorf("expected TupleIndex as collection, got %T", idx.Collection)
	}

	stmts, err = newTestParser().ParseSnippet("r = -2 ** 2;", nil)
	if err != nil {
		t.Fatal(err)
	}
	pow, ok := stmts[0].(*ast.Assign).Value.(*ast.BinaryOp)
	if !ok || pow.Op != "**" {
		t.Fatalf("expected power at top, got %s", stmts[0])
	}
	if _, ok := pow.Left.(*ast.UnaryMinus); !ok {
		t.Errorf("expected UnaryMinus base, got %T", pow.Left)
	}
}

func TestParser_Literals(t *testing.T) {
	stmts, err := newTestParser().ParseSnippet(`a = 12; b = 1.5e-3; c = 'it\'s'; d = True;`, nil)
	if err != nil {
		t.Fatal(err)
	}

	n := stmts[0].(*ast.Assign).Value.(*ast.NumberLiteral)
	if n.IsReal || n.Int != 12 {
		t.Errorf("integer literal: %+v", n)
	}
	r := stmts[1].(*ast.Assign).Value.(*ast.NumberLiteral)
	if !r.IsReal || r.Real != 1.5e-3 {
		t.Errorf("real literal: %+v", r)
	}
	s := stmts[2].(*ast.Assign).Value.(*ast.StringLiteral)
	if s.Value != "it's" {
		t.Errorf("string literal: got %q", s.Value)
	}
	b := stmts[3].(*ast.Assign).Value.(*ast.BooleanLiteral)
	if !b.Value {
		t.Errorf("boolean literal: got %v", b.Value)
	}
}

func TestParser_Program(t *testing.T) {
	source := `{
  x = 1;
  l = [1, 2];
  l[0] = 5;
  if (x < 2) { print(x); } else { print(l); }
  while (x < 10) { x = x + 1; }
  { print("nested"); }
}`
	block, err := newTestParser().ParseProgram(source)
	if err != nil {
		t.Fatalf("ParseProgram failed: %v", err)
	}

	expected := []string{"Assign", "Assign", "Assign", "IfElse", "While", "Block"}
	if len(block.Statements) != len(expected) {
		t.Fatalf("got %d statements, want %d", len(block.Statements), len(expected))
	}
	for i, s := range block.Statements {
		if got := ast.TypeName(s); got != expected[i] {
			t.Errorf("statement %d: got %s, want %s", i, got, expected[i])
		}
	}

	if target := block.Statements[2].(*ast.Assign).Target; ast.TypeName(target) != "IndexExpr" {
		t.Errorf("expected indexed assignment target, got %s", ast.TypeName(target))
	}
}

func TestParser_EmptyProgram(t *testing.T) {
	block, err := newTestParser().ParseProgram("{}")
	if err != nil {
		t.Fatal(err)
	}
	if len(block.Statements) != 0 {
		t.Errorf("expected no statements, got %d", len(block.Statements))
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
		line  int
	}{
		{"missing block", "x = 1;", "x", 1},
		{"missing semicolon", "{ x = 1 }", "}", 1},
		{"unclosed block", "{ x = 1;", "EOF", 1},
		{"trailing input", "{ } x", "x", 1},
		{"bare expression", "{ 1 + 2; }", ";", 1},
		{"dangling operator", "{ x = 1 +; }", ";", 1},
		{"print without parens", "{ print 1; }", "1", 1},
		{"if without parens", "{ if True { } }", "True", 1},
		{"invalid target", "{ x = 1;\n 1 + x = 2; }", "=", 2},
		{"tuple index needs integer", "{ x = (1, 2); y = #x x; }", "x", 1},
		{"one element tuple is a group, trailing comma fails", "{ x = (1,); }", ")", 1},
		{"integer literal overflow", "{ x = 99999999999999999999; }", "99999999999999999999", 1},
		{"illegal characters are skipped", "{ x = 1 $ 2; }", "2", 1},
		{"empty input", "", "EOF", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser().ParseProgram(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !sbmlerror.IsSyntax(err) {
				t.Fatalf("expected SYNTAX error, got %v", err)
			}
			e, _ := sbmlerror.As(err)
			if e.Token() != tt.token {
				t.Errorf("token: got %q, want %q", e.Token(), tt.token)
			}
			if e.Line() != tt.line {
				t.Errorf("line: got %d, want %d", e.Line(), tt.line)
			}
		})
	}
}

func TestParser_SyntaxErrorAtEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		atEOF bool
	}{
		{"unclosed block", "{ x = 1;", true},
		{"empty input", "", true},
		{"identifier named EOF", "{ EOF = 1; print(EOF) EOF }", false},
		{"missing semicolon", "{ x = 1 }", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser().ParseProgram(tt.input)
			e, ok := sbmlerror.As(err)
			if !ok || !sbmlerror.IsSyntax(err) {
				t.Fatalf("expected SYNTAX error, got %v", err)
			}
			if e.AtEOF() != tt.atEOF {
				t.Errorf("AtEOF() = %v, want %v (token %q)", e.AtEOF(), tt.atEOF, e.Token())
			}
		})
	}
}

func TestParser_SemanticErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"undefined name", "{ print(y); }"},
		{"self reference before assignment", "{ x = x + 1; }"},
		{"use before assignment", "{ print(x); x = 1; }"},
		{"andalso with arithmetic", "{ x = 1 + 1 andalso True; }"},
		{"orelse with literal", "{ x = True orelse 1; }"},
		{"not with list", "{ x = not [True]; }"},
		{"if with arithmetic condition", "{ if (1 + 2) { } }"},
		{"while with string condition", "{ while ('a') { } }"},
		{"andalso with indexing", "{ l = [True]; x = l[0] andalso True; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser().ParseProgram(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !sbmlerror.IsSemantic(err) {
				t.Fatalf("expected SEMANTIC error, got %v", err)
			}
		})
	}
}

func TestParser_BooleanOperands(t *testing.T) {
	valid := []string{
		"{ a = True; b = a andalso False; }",
		"{ a = 1; b = a < 2 orelse a in [1]; }",
		"{ a = True; b = not not a; }",
		"{ a = True; if (a) { } }",
		"{ a = 1; while (not (a > 3)) { a = a + 1; } }",
	}

	for _, input := range valid {
		t.Run(input, func(t *testing.T) {
			if _, err := newTestParser().ParseProgram(input); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParser_Snippet(t *testing.T) {
	p := newTestParser()

	stmts, err := p.ParseSnippet("x + 1", []string{"x"})
	if err != nil {
		t.Fatalf("expression snippet: %v", err)
	}
	if _, ok := stmts[0].(*ast.ExprStmt); !ok {
		t.Errorf("expected ExprStmt, got %T", stmts[0])
	}

	stmts, err = p.ParseSnippet("y = 2; print(y)", nil)
	if err != nil {
		t.Fatalf("statement snippet: %v", err)
	}
	if len(stmts) != 2 {
		t.Errorf("expected 2 statements, got %d", len(stmts))
	}

	if _, err := p.ParseSnippet("print(z);", []string{"x"}); !sbmlerror.IsSemantic(err) {
		t.Errorf("expected undefined name error, got %v", err)
	}

	if _, err := p.ParseSnippet("x = 1 y = 2", nil); !sbmlerror.IsSyntax(err) {
		t.Errorf("expected syntax error for missing separator, got %v", err)
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	p := New(Options{Logger: sbmllog.Discard(), MaxInputLength: 8})
	_, err := p.ParseProgram("{ x = 12345; }")
	if !sbmlerror.HasCode(err, sbmlerror.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestParser_LexErrors(t *testing.T) {
	p := newTestParser()
	if _, err := p.ParseProgram("{ x = 1; $ }"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.LexErrors()) != 1 {
		t.Errorf("expected one skipped character, got %d", len(p.LexErrors()))
	}
	if !strings.Contains(p.LexErrors()[0].Error(), "$") {
		t.Errorf("lexical error should name the character: %v", p.LexErrors()[0])
	}
}

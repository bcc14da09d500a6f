// File: executor_test.go
// Title: SBML Evaluator Tests
// Description: Expression results, statement semantics, list aliasing,
//              short-circuiting and SEMANTIC error cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tests

package executor

import (
	"bytes"
	"context"
	"testing"
	"time"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml/parser"
	"github.com/msto63/sbml/foundation/sbml/value"
)

func newTestEngine(out *bytes.Buffer) *Engine {
	return New(Options{Logger: sbmllog.Discard(), Output: out})
}

// evalSnippet parses and evaluates a snippet in a fresh environment and
// returns the canonical text of its last value
func evalSnippet(t *testing.T, source string) (string, error) {
	t.Helper()
	stmts, err := parser.New(parser.Options{Logger: sbmllog.Discard()}).ParseSnippet(source, nil)
	if err != nil {
		return "", err
	}
	v, err := newTestEngine(&bytes.Buffer{}).Eval(context.Background(), stmts, NewEnvironment())
	if err != nil {
		return "", err
	}
	return value.Format(v), nil
}

// runProgram parses and runs a program and returns what it printed
func runProgram(t *testing.T, source string) (string, error) {
	t.Helper()
	block, err := parser.New(parser.Options{Logger: sbmllog.Discard()}).ParseProgram(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	err = newTestEngine(&out).Run(context.Background(), block, nil)
	return out.String(), err
}

func TestEval_Expressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// literals
		{"10101;", "10101"},
		{"-8759;", "-8759"},
		{"2.718281828;", "2.718281828"},
		{"-0.0002;", "-0.0002"},
		{"57.;", "57.0"},
		{".7729;", "0.7729"},
		{"-.8394;", "-0.8394"},
		{"6.02e-23;", "6.02e-23"},
		{"9.11e17;", "9.11e+17"},
		{".188e86;", "1.88e+85"},
		{"17.e2;", "1700.0"},
		{"17.e-2;", "0.17"},
		{"True;", "True"},
		{`"";`, ""},
		{`'B';`, "B"},
		{`"B";`, "B"},
		{`"legend         ary";`, "legend         ary"},
		{"[];", "[]"},
		{`['zzzz', 817, "ARG!", 100.012, 17.0e-4];`, "['zzzz', 817, 'ARG!', 100.012, 0.0017]"},

		// boolean operators and comparisons
		{"True orelse False;", "True"},
		{"False andalso True;", "False"},
		{"not False;", "True"},
		{`"a" < 'z';`, "True"},
		{"17 <= 16;", "False"},
		{`"abc" == 'abc';`, "True"},
		{"10.0 <> 10;", "False"},
		{"11.9 >= 11.9;", "True"},
		{"11.9 > 11.9;", "False"},
		{"(1, 2) == (1, 2);", "True"},
		{"[1, [2]] <> [1, [2]];", "False"},

		// lists, strings and tuples
		{"'a'::[];", "['a']"},
		{"17::[1, 2, 3, 4];", "[17, 1, 2, 3, 4]"},
		{`'z' in "abzcdef";`, "True"},
		{`"zc" in "abzcdef";`, "True"},
		{"5 in [1, 2, 3, 4];", "False"},
		{"(1, 2) in [(1, 2)];", "True"},
		{`[1, 2, 3] + ["a", 'b', "c"];`, "[1, 2, 3, 'a', 'b', 'c']"},
		{`"Hello" + " " + "World";`, "Hello World"},
		{"[1, 2, 3, 4][0];", "1"},
		{`"abc"[2];`, "c"},
		{"(1, 2, 3, 4);", "(1, 2, 3, 4)"},
		{"#1(1, 2, 3, 4);", "1"},
		{`("abc");`, "abc"},
		{`#3#2#1(("3", (3, 8, 10)), (10, "dad"));`, "10"},
		{"#1 ([1], 2)[0];", "1"},

		// arithmetic
		{"5 - 3;", "2"},
		{"17.0 + 10.0;", "27.0"},
		{"17 mod 6;", "5"},
		{"17 div 6;", "2"},
		{"-7 div 2;", "-4"},
		{"-7 mod 2;", "1"},
		{"-17 mod -5;", "-2"},
		{"17 / 6;", "2.8333333333333335"},
		{"12 / 4;", "3.0"},
		{"10 * 10.0;", "100.0"},
		{"5 * 4.20;", "21.0"},
		{"2 ** 10;", "1024"},
		{"2 ** -1;", "0.5"},
		{"2 ** 2 ** 3;", "256"},
		{"-2 ** 2;", "4"},
		{"-1 - -2;", "1"},
		{"2 + 5 * 4 - 5;", "17"},
		{"(2 + 5) * 4 - 5;", "23"},
		{"10 + 9 - 8 div 4 div 6 mod 5 * 4 ** 3;", "19"},
		{"1+2*3/4-7;", "-4.5"},
		{"(1+2)*(3/(4-7));", "-3.0"},

		// combinations
		{"(not (False orelse False)) andalso (not False andalso not False);", "True"},
		{`[[1, 2, 3], ["a", "b", "c"], [4.0, 5.0, 6.0]][2][1];`, "5.0"},
		{`'a' in ("bce" + "def" + "ghi" + "yza");`, "True"},
		{"#2(7, 8, 9) == [9, 8, 7][1];", "True"},
		{`[1, 2, 3][1 + 1] > [4, 5, 6][1 - 1] orelse "abc"[2] < "xyz"[0];`, "True"},
		{"[1, 2, 3][1 * 2] * [4, 5, 6][2 div 1] - [7, 8, 9][17 mod 3];", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := evalSnippet(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestEval_SemanticErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`1 + "abc";`, "type mismatch"},
		{`"abc" + ["c", "d", "e"];`, "type mismatch"},
		{"1 - [1, 2, 3];", "type mismatch"},
		{"True andalso 5.0;", "boolean operand expected"},
		{`False orelse "Abc";`, "boolean operand expected"},
		{"not (3+7);", "boolean operand expected"},
		{"[1, 2, 3, 4][5];", "index out of range"},
		{"[1, 2, 3, 4][-1];", "index out of range"},
		{"#7(1, 2, 3);", "index out of range"},
		{"#0(1, 2, 3);", "index out of range"},
		{"[1, 2, 3, 4][3 < 4];", "type mismatch"},
		{`"abc" < [1, 2, 3];`, "type mismatch"},
		{`("test", "tuple") + ("another", "test");`, "type mismatch"},
		{`["random"] + ("tuple", "stuff");`, "type mismatch"},
		{`"dog" + ("cat", "mouse");`, "type mismatch"},
		{`["dog"] + "cat";`, "type mismatch"},
		{"3 + dog;", "undefined name"},
		{"12 mod 7.0;", "type mismatch"},
		{"12 div 6.0;", "type mismatch"},
		{"12.0 div 6;", "type mismatch"},
		{"12 mod 7.5;", "type mismatch"},
		{"10 + 9 - 8 / 4 div 6 mod 5 * 4 ** 3;", "type mismatch"},
		{"'a' div 2;", "type mismatch"},
		{"1 div 0;", "division by zero"},
		{"1 mod 0;", "division by zero"},
		{"1 / 0;", "division by zero"},
		{"1.0 / 0.0;", "division by zero"},
		{"0 ** -1;", "division by zero"},
		{"(-8.0) ** 0.5;", "invalid operand"},
		{"9223372036854775807 + 1;", "integer overflow"},
		{"2 ** 64;", "integer overflow"},
		{"1 :: 2;", "type mismatch"},
		{"1 in 2;", "type mismatch"},
		{`1 in "abc";`, "type mismatch"},
		{"#1 [1, 2];", "type mismatch"},
		{"(1, 2)[0];", "type mismatch"},
		{"-'a';", "type mismatch"},
		{"True < False;", "type mismatch"},
		{"1 == 'a';", "type mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := evalSnippet(t, tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !sbmlerror.IsSemantic(err) {
				t.Fatalf("expected SEMANTIC error, got %v", err)
			}
			e, _ := sbmlerror.As(err)
			if e.Message() != tt.message {
				t.Errorf("message: got %q, want %q", e.Message(), tt.message)
			}
		})
	}
}

func TestEval_ShortCircuit(t *testing.T) {
	tests := []string{
		"x = False; x andalso (1 div 0 == 0);",
		"x = True; x orelse ([][5] == 1);",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := evalSnippet(t, input); err != nil {
				t.Errorf("right operand should not be evaluated: %v", err)
			}
		})
	}
}

func TestRun_Programs(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "print values",
			source:   `{ print(1); print("a"); print(['a', 1.5]); print((1, True)); }`,
			expected: "1\na\n['a', 1.5]\n(1, True)\n",
		},
		{
			name:     "list aliasing",
			source:   "{ a = [1, 2, 3]; b = a; a[0] = 9; print(b[0]); print(b); }",
			expected: "9\n[9, 2, 3]\n",
		},
		{
			name:     "cons copies",
			source:   "{ a = [1]; b = 0 :: a; b[1] = 5; print(a); }",
			expected: "[1]\n",
		},
		{
			name:     "no block scoping",
			source:   "{ i = 0; while (i < 3) { last = i; i = i + 1; } print(last); if (True) { inner = 7; } print(inner); }",
			expected: "2\n7\n",
		},
		{
			name:     "if else",
			source:   "{ x = 5; if (x > 3) { print('big'); } else { print('small'); } if (x < 3) { print('never'); } }",
			expected: "big\n",
		},
		{
			name:     "nested blocks",
			source:   "{ { x = 1; { print(x + 1); } } }",
			expected: "2\n",
		},
		{
			name: "factorial",
			source: `{
  n = 10; f = 1;
  while (n > 1) { f = f * n; n = n - 1; }
  print(f);
}`,
			expected: "3628800\n",
		},
		{
			name: "nested index assignment",
			source: `{
  m = [[1, 2], [3, 4]];
  m[1][0] = 'x';
  print(m);
}`,
			expected: "[[1, 2], ['x', 4]]\n",
		},
		{
			name:     "empty program",
			source:   "{}",
			expected: "",
		},
		{
			name:     "self-referencing lists compare equal",
			source:   "{ a = [1]; a[0] = a; b = [1]; b[0] = b; print(a == b); print(a <> b); }",
			expected: "True\nFalse\n",
		},
		{
			name:     "membership of a self-referencing list",
			source:   "{ a = [1]; a[0] = a; b = [1]; b[0] = b; print(a in [b]); print(a in [[2]]); }",
			expected: "True\nFalse\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runProgram(t, tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.expected {
				t.Errorf("output:\ngot  %q\nwant %q", out, tt.expected)
			}
		})
	}
}

func TestRun_ErrorsAbortRun(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		printed string
		message string
	}{
		{"stops at first error", "{ print(1); x = 1 / 0; print(2); }", "1\n", "division by zero"},
		{"string target", "{ s = 'abc'; s[0] = 'x'; }", "", "immutable target"},
		{"tuple target", "{ t = (1, 2); t[0] = 3; }", "", "immutable target"},
		{"non-boolean condition", "{ x = 1; if (x) { } }", "", "boolean expected"},
		{"index assignment out of range", "{ l = [1]; l[3] = 0; }", "", "index out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runProgram(t, tt.source)
			if !sbmlerror.IsSemantic(err) {
				t.Fatalf("expected SEMANTIC error, got %v", err)
			}
			if e, _ := sbmlerror.As(err); e.Message() != tt.message {
				t.Errorf("message: got %q, want %q", e.Message(), tt.message)
			}
			if out != tt.printed {
				t.Errorf("output: got %q, want %q", out, tt.printed)
			}
		})
	}
}

func TestRun_IterationLimit(t *testing.T) {
	block, err := parser.New(parser.Options{Logger: sbmllog.Discard()}).
		ParseProgram("{ i = 0; while (True) { i = i + 1; } }")
	if err != nil {
		t.Fatal(err)
	}

	engine := New(Options{Logger: sbmllog.Discard(), Output: &bytes.Buffer{}, MaxIterations: 100})
	env := NewEnvironment()
	err = engine.Run(context.Background(), block, env)
	if e, ok := sbmlerror.As(err); !ok || e.Message() != "iteration limit exceeded" {
		t.Fatalf("expected iteration limit error, got %v", err)
	}
	if i, _ := env.Get("i"); i != value.Integer(100) {
		t.Errorf("expected 100 completed iterations, got %v", i)
	}
}

func TestRun_Interrupted(t *testing.T) {
	block, err := parser.New(parser.Options{Logger: sbmllog.Discard()}).
		ParseProgram("{ while (True) { } }")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = newTestEngine(&bytes.Buffer{}).Run(ctx, block, nil)
	if !sbmlerror.HasCode(err, sbmlerror.CodeInterrupted) {
		t.Fatalf("expected INTERRUPTED, got %v", err)
	}
}

func TestEval_PersistentEnvironment(t *testing.T) {
	p := parser.New(parser.Options{Logger: sbmllog.Discard()})
	engine := newTestEngine(&bytes.Buffer{})
	env := NewEnvironment()

	stmts, err := p.ParseSnippet("x = [1, 2];", env.Names())
	if err != nil {
		t.Fatal(err)
	}
	if v, err := engine.Eval(context.Background(), stmts, env); err != nil || v != nil {
		t.Fatalf("assignment snippet: got (%v, %v)", v, err)
	}

	stmts, err = p.ParseSnippet("x[1] = 5; x", env.Names())
	if err != nil {
		t.Fatal(err)
	}
	v, err := engine.Eval(context.Background(), stmts, env)
	if err != nil {
		t.Fatal(err)
	}
	if got := value.Format(v); got != "[1, 5]" {
		t.Errorf("got %s", got)
	}
	if names := env.Names(); len(names) != 1 || names[0] != "x" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestEval_RuntimeUndefinedName(t *testing.T) {
	stmts, err := parser.New(parser.Options{Logger: sbmllog.Discard()}).ParseSnippet("y + 1;", []string{"y"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = newTestEngine(&bytes.Buffer{}).Eval(context.Background(), stmts, NewEnvironment())
	if e, ok := sbmlerror.As(err); !ok || e.Message() != "undefined name" {
		t.Errorf("expected undefined name, got %v", err)
	}
}

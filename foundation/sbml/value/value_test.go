// File: value_test.go
// Title: Runtime Value Tests
// Description: Tests for canonical text, equality, ordering and list
//              sharing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tests

package value

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"integer", Integer(-17), "-17"},
		{"integral real", Real(17), "17.0"},
		{"fraction", Real(17.0 / 6.0), "2.8333333333333335"},
		{"large real", Real(1.88e85), "1.88e+85"},
		{"small real", Real(0.00001), "1e-05"},
		{"fixed boundary", Real(0.0001), "0.0001"},
		{"exponent boundary", Real(1e16), "1e+16"},
		{"negative zero", Real(math.Copysign(0, -1)), "-0.0"},
		{"infinity", Real(math.Inf(1)), "inf"},
		{"true", Boolean(true), "True"},
		{"false", Boolean(false), "False"},
		{"string is raw", String("it's"), "it's"},
		{"list", NewList(Integer(1), String("a"), Real(2)), "[1, 'a', 2.0]"},
		{"empty list", NewList(), "[]"},
		{"tuple", Tuple{Integer(1), NewList(Boolean(true))}, "(1, [True])"},
		{"quote choice", NewList(String("it's")), `["it's"]`},
		{"escapes", NewList(String("a\nb\\")), `['a\nb\\']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestFormat_SelfReferentialList(t *testing.T) {
	l := NewList(Integer(1))
	l.Elements[0] = l
	if got := Format(l); got != "[[...]]" {
		t.Errorf("got %s", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Value
		equal  bool
		usable bool
	}{
		{"integers", Integer(3), Integer(3), true, true},
		{"integer and real", Integer(3), Real(3), true, true},
		{"strings", String("a"), String("b"), false, true},
		{"booleans", Boolean(true), Boolean(true), true, true},
		{"lists", NewList(Integer(1), String("x")), NewList(Integer(1), String("x")), true, true},
		{"lists of different length", NewList(Integer(1)), NewList(), false, true},
		{"tuples", Tuple{Integer(1), Integer(2)}, Tuple{Integer(1), Integer(2)}, true, true},
		{"mixed elements", NewList(Integer(1)), NewList(String("1")), false, true},
		{"string and integer", String("1"), Integer(1), false, false},
		{"list and tuple", NewList(Integer(1), Integer(2)), Tuple{Integer(1), Integer(2)}, false, false},
		{"boolean and integer", Boolean(true), Integer(1), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, ok := Equal(tt.a, tt.b)
			if ok != tt.usable {
				t.Fatalf("ok: got %v, want %v", ok, tt.usable)
			}
			if eq != tt.equal {
				t.Errorf("equal: got %v, want %v", eq, tt.equal)
			}
		})
	}
}

func selfList(first Value) *List {
	l := NewList(first, Integer(0))
	l.Elements[1] = l
	return l
}

func TestEqual_CyclicLists(t *testing.T) {
	mutualA := NewList(Integer(1))
	mutualB := NewList(Integer(1), mutualA)
	mutualA.Elements = append(mutualA.Elements, mutualB)

	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same shape", selfList(Integer(1)), selfList(Integer(1)), true},
		{"different head", selfList(Integer(1)), selfList(Integer(2)), false},
		{"nested in tuples", Tuple{selfList(String("a")), Integer(1)}, Tuple{selfList(String("a")), Integer(1)}, true},
		{"mutual cycle against self cycle", mutualA, selfList(Integer(1)), true},
		{"cycle against flat list", selfList(Integer(1)), NewList(Integer(1), NewList()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, ok := Equal(tt.a, tt.b)
			if !ok || eq != tt.equal {
				t.Errorf("got (%v, %v), want (%v, true)", eq, ok, tt.equal)
			}
		})
	}

	outer := NewList(selfList(Integer(1)))
	if !Contains(outer, selfList(Integer(1))) {
		t.Error("expected cyclic list to be found by membership")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		a, b   Value
		result bool
		ok     bool
	}{
		{"integers", "<", Integer(1), Integer(2), true, true},
		{"mixed numbers", ">=", Real(2.5), Integer(2), true, true},
		{"strings", "<", String("abc"), String("abd"), true, true},
		{"string prefix", ">", String("ab"), String("abc"), false, true},
		{"equal bound", "<=", Integer(4), Integer(4), true, true},
		{"nan", "<", Real(math.NaN()), Integer(1), false, true},
		{"string and list", "<", String("abc"), NewList(), false, false},
		{"booleans", "<", Boolean(false), Boolean(true), false, false},
		{"lists", "<", NewList(), NewList(), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Compare(tt.op, tt.a, tt.b)
			if ok != tt.ok || result != tt.result {
				t.Errorf("got (%v, %v), want (%v, %v)", result, ok, tt.result, tt.ok)
			}
		})
	}
}

func TestListSharing(t *testing.T) {
	a := NewList(Integer(1), Integer(2))
	b := a
	a.Elements[0] = Integer(9)
	if b.Elements[0] != Integer(9) {
		t.Errorf("alias did not observe mutation: %s", b)
	}

	c := Prepend(Integer(0), a)
	c.Elements[1] = Integer(5)
	if a.Elements[0] != Integer(9) {
		t.Errorf("Prepend must copy: %s", a)
	}

	d := Concat(a, NewList(Integer(3)))
	if got := Format(d); got != "[9, 2, 3]" {
		t.Errorf("Concat: got %s", got)
	}
}

func TestContains(t *testing.T) {
	l := NewList(Integer(1), String("a"), Tuple{Integer(1), Integer(2)})
	if !Contains(l, Real(1)) {
		t.Error("expected 1.0 in list")
	}
	if !Contains(l, Tuple{Integer(1), Integer(2)}) {
		t.Error("expected tuple in list")
	}
	if Contains(l, String("b")) {
		t.Error("unexpected b in list")
	}
}

func TestKind_String(t *testing.T) {
	if KindTuple.String() != "tuple" || Kind(99).String() != "unknown" {
		t.Errorf("unexpected kind names: %s %s", KindTuple, Kind(99))
	}
}

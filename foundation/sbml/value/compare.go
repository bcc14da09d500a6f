// File: compare.go
// Title: Value Equality and Ordering
// Description: Structural equality within a kind family and the natural
//              ordering of numbers and strings.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Equality terminates on cyclic lists

package value

import (
	"cmp"
	"math"
	"strings"
)

// Family groups kinds that can be compared with each other. Integers and
// reals share the numeric family.
func Family(v Value) Kind {
	if v.Kind() == KindReal {
		return KindInteger
	}
	return v.Kind()
}

// Equal reports whether a and b are equal. ok is false when the operands
// belong to different kind families and cannot be compared. Cyclic lists
// are equal when no finite walk tells them apart.
func Equal(a, b Value) (equal bool, ok bool) {
	return equalValues(a, b, nil)
}

// listPair is a pair of lists under comparison
type listPair struct {
	a, b *List
}

func equalValues(a, b Value, active map[listPair]bool) (bool, bool) {
	if Family(a) != Family(b) {
		return false, false
	}

	switch x := a.(type) {
	case Integer, Real:
		if xi, isInt := x.(Integer); isInt {
			if yi, bothInt := b.(Integer); bothInt {
				return xi == yi, true
			}
		}
		fa, _ := ToFloat(a)
		fb, _ := ToFloat(b)
		return fa == fb, true
	case Boolean:
		return x == b.(Boolean), true
	case String:
		return x == b.(String), true
	case *List:
		y := b.(*List)
		if x == y {
			return true, true
		}
		pair := listPair{x, y}
		if active[pair] {
			return true, true
		}
		if active == nil {
			active = make(map[listPair]bool)
		}
		active[pair] = true
		eq := equalElements(x.Elements, y.Elements, active)
		delete(active, pair)
		return eq, true
	case Tuple:
		return equalElements(x, b.(Tuple), active), true
	}
	return false, false
}

// equalElements compares sequences elementwise. Elements of different
// families are unequal rather than an error, as in list membership.
func equalElements(a, b []Value, active map[listPair]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if eq, _ := equalValues(a[i], b[i], active); !eq {
			return false
		}
	}
	return true
}

// Compare applies the ordering operator op (<, <=, >, >=) to a and b. ok
// is false unless both are numeric or both are strings. NaN compares false
// with everything.
func Compare(op string, a, b Value) (result bool, ok bool) {
	var c int
	switch {
	case a.Kind() == KindString && b.Kind() == KindString:
		c = strings.Compare(string(a.(String)), string(b.(String)))
	case a.Kind() == KindInteger && b.Kind() == KindInteger:
		c = cmp.Compare(a.(Integer), b.(Integer))
	case IsNumeric(a) && IsNumeric(b):
		x, _ := ToFloat(a)
		y, _ := ToFloat(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, true
		}
		c = cmp.Compare(x, y)
	default:
		return false, false
	}

	switch op {
	case "<":
		return c < 0, true
	case "<=":
		return c <= 0, true
	case ">":
		return c > 0, true
	case ">=":
		return c >= 0, true
	}
	return false, false
}

// Contains reports whether list holds an element equal to elem
func Contains(list *List, elem Value) bool {
	for _, e := range list.Elements {
		if eq, _ := Equal(elem, e); eq {
			return true
		}
	}
	return false
}

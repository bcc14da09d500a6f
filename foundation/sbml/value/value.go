// File: value.go
// Title: SBML Runtime Values
// Description: Closed set of runtime values produced by evaluation. Lists
//              are shared by reference so index assignment is visible
//              through every alias; all other values are immutable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package value

// Kind identifies the variant of a runtime value
type Kind int

const (
	KindInteger Kind = iota
	KindReal
	KindBoolean
	KindString
	KindList
	KindTuple
)

var kindNames = map[Kind]string{
	KindInteger: "integer",
	KindReal:    "real",
	KindBoolean: "boolean",
	KindString:  "string",
	KindList:    "list",
	KindTuple:   "tuple",
}

// String returns the lowercase kind name used in diagnostics
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is implemented by Integer, Real, Boolean, String, *List and Tuple
type Value interface {
	Kind() Kind
	String() string
}

// Integer is a 64-bit signed integer
type Integer int64

// Real is an IEEE-754 double
type Real float64

// Boolean is True or False
type Boolean bool

// String is an immutable character string
type String string

// List is a mutable sequence shared by every binding that refers to it
type List struct {
	Elements []Value
}

// Tuple is an immutable sequence of two or more values
type Tuple []Value

func (Integer) Kind() Kind { return KindInteger }
func (Real) Kind() Kind    { return KindReal }
func (Boolean) Kind() Kind { return KindBoolean }
func (String) Kind() Kind  { return KindString }
func (*List) Kind() Kind   { return KindList }
func (Tuple) Kind() Kind   { return KindTuple }

func (v Integer) String() string { return Format(v) }
func (v Real) String() string    { return Format(v) }
func (v Boolean) String() string { return Format(v) }
func (v String) String() string  { return string(v) }
func (v *List) String() string   { return Format(v) }
func (v Tuple) String() string   { return Format(v) }

// NewList creates a list holding elems
func NewList(elems ...Value) *List {
	return &List{Elements: elems}
}

// Len returns the number of elements
func (l *List) Len() int {
	return len(l.Elements)
}

// Prepend returns a new list with head in front of the elements of l
func Prepend(head Value, l *List) *List {
	elems := make([]Value, 0, len(l.Elements)+1)
	elems = append(elems, head)
	elems = append(elems, l.Elements...)
	return &List{Elements: elems}
}

// Concat returns a new list with the elements of a followed by those of b
func Concat(a, b *List) *List {
	elems := make([]Value, 0, len(a.Elements)+len(b.Elements))
	elems = append(elems, a.Elements...)
	elems = append(elems, b.Elements...)
	return &List{Elements: elems}
}

// IsNumeric reports whether v is an Integer or a Real
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Integer, Real:
		return true
	}
	return false
}

// ToFloat converts a numeric value to float64
func ToFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n), true
	case Real:
		return float64(n), true
	}
	return 0, false
}

// File: format.go
// Title: Canonical Value Text
// Description: Renders values the way print shows them: strings raw at
//              top level and quoted inside collections, reals in shortest
//              round-trip form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format returns the canonical text of v as written by print
func Format(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return Repr(v)
}

// Repr returns the text of v as it appears inside a collection
func Repr(v Value) string {
	var b strings.Builder
	writeRepr(&b, v, nil)
	return b.String()
}

// writeRepr tracks the lists being printed so a list that contains itself
// renders as [...] instead of recursing forever.
func writeRepr(b *strings.Builder, v Value, active map[*List]bool) {
	switch x := v.(type) {
	case Integer:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case Real:
		b.WriteString(FormatReal(float64(x)))
	case Boolean:
		if x {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case String:
		b.WriteString(QuoteString(string(x)))
	case *List:
		if active[x] {
			b.WriteString("[...]")
			return
		}
		if active == nil {
			active = make(map[*List]bool)
		}
		active[x] = true
		b.WriteByte('[')
		writeElements(b, x.Elements, active)
		b.WriteByte(']')
		delete(active, x)
	case Tuple:
		b.WriteByte('(')
		writeElements(b, x, active)
		b.WriteByte(')')
	case nil:
		b.WriteString("None")
	default:
		fmt.Fprintf(b, "<%T>", v)
	}
}

func writeElements(b *strings.Builder, elems []Value, active map[*List]bool) {
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(b, e, active)
	}
}

// FormatReal renders f in shortest round-trip form. Integral values keep a
// trailing ".0"; magnitudes outside [1e-4, 1e16) use exponent notation.
func FormatReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// QuoteString quotes s with single quotes, or double quotes when s contains
// a single quote and no double quote.
func QuoteString(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == quote:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

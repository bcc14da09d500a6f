// File: intmath.go
// Title: Checked Integer Arithmetic
// Description: 64-bit integer operations that report overflow instead of
//              wrapping, plus floor division and modulo.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation (decimal arithmetic)
// - 2026-10-17 v0.2.0: Replaced decimals with checked int64 operations

package mathx

import (
	"math"
	"math/bits"
)

// AddInt64 returns a+b and false if the sum overflows
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// SubInt64 returns a-b and false if the difference overflows
func SubInt64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

// MulInt64 returns a*b and false if the product overflows
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absUint(a), absUint(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// PowInt64 returns base**exp for exp >= 0 and false on overflow
func PowInt64(base, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, false
	}
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = MulInt64(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = MulInt64(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// FloorDiv divides rounding toward negative infinity. b must be non-zero.
// The second result is false for MinInt64 div -1.
func FloorDiv(a, b int64) (int64, bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, true
}

// FloorMod returns the remainder with the sign of b. b must be non-zero.
func FloorMod(a, b int64) int64 {
	if b == -1 {
		return 0
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func absUint(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

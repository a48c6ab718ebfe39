// Package modmath provides overflow-safe modular arithmetic over uint64.
//
// Products are widened to 128 bits via [bits.Mul64] before reduction, so
// MulMod and ModExp are exact for any uint64 operands. A modulus of zero
// has no mathematical meaning here; both functions return 0 for it rather
// than dividing by zero, and callers are expected to validate upstream.
package modmath

import "math/bits"

// MulMod returns (a * b) mod m without intermediate overflow.
// m = 0 returns the 0 sentinel; m = 1 returns 0.
func MulMod(a, b, m uint64) uint64 {
	if m == 0 {
		return 0
	}
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	// bits.Div64 panics unless hi < m; reducing hi first guarantees that.
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// ModExp returns base^exp mod m by square-and-multiply.
// m = 0 returns the 0 sentinel; m = 1 returns 0.
func ModExp(base, exp, m uint64) uint64 {
	if m == 0 {
		return 0
	}
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
		exp >>= 1
	}
	return result
}

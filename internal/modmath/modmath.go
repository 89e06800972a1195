// Package modmath provides overflow-safe modular arithmetic on uint64
// residues. It has no notion of "field" or "polynomial" — it is the
// arithmetic kernel that gf.Field builds its inverse table on top of.
package modmath

import "math/bits"

// Add returns (a+b) mod m.
func Add(a, b, m uint64) uint64 {
	a %= m
	b %= m
	sum := a + b
	if sum >= m || sum < a {
		sum -= m
	}
	return sum
}

// Sub returns (a-b) mod m.
func Sub(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= b {
		return a - b
	}
	return a + m - b
}

// Mul returns (a*b) mod m without overflowing uint64, via a 128-bit
// intermediate product.
func Mul(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// Pow returns a^e mod m by right-to-left binary exponentiation.
func Pow(a, e, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1) % m
	base := a % m
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base, m)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base, m)
		}
	}
	return result
}

// ExtGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b), using the
// iterative extended Euclidean algorithm over unsigned machine integers.
// x and y are returned as the (possibly negative, here represented via
// two's-complement wraparound is avoided by the caller only ever needing
// the case b = m, a = v with gcd(a, m) = 1, where x is the desired
// nonnegative inverse after reduction mod m) raw Bezout coefficients are
// not meaningful outside that use; callers needing a canonical nonnegative
// inverse should reduce x modulo m themselves, as Inverse does.
func ExtGCD(a, b uint64) (g, x, y int64) {
	var oldR, r = int64(a), int64(b)
	var oldS, s = int64(1), int64(0)
	var oldT, t = int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT
}

// Inverse returns the multiplicative inverse of a modulo m, and whether a
// is invertible (gcd(a, m) == 1). m must be > 0.
func Inverse(a, m uint64) (inv uint64, ok bool) {
	if m == 0 {
		return 0, false
	}
	a %= m
	g, x, _ := ExtGCD(a, m)
	if g != 1 && g != -1 {
		return 0, false
	}
	mm := int64(m)
	x %= mm
	if x < 0 {
		x += mm
	}
	return uint64(x), true
}

package gf

import (
	"fmt"
	"math/bits"

	"gfsearch/internal/modmath"
)

// Field is an immutable descriptor for GF(p): the modulus p and a
// precomputed multiplicative-inverse table. It is shared by handle (a
// pointer) across every Element and Poly built over it; none of those
// types own the Field exclusively.
type Field struct {
	p   uint64
	inv []uint64 // inv[v] * v ≡ 1 (mod p) for v in [1,p); inv[0] = 0 sentinel
}

// NewField constructs the descriptor for GF(p). It fails with
// ErrInvalidField if p is 0 or 1, if (p-1)^2 would overflow a uint64 (so
// that every element-level multiplication stays exact), or if p is not
// prime (some v in [1,p) has no inverse).
func NewField(p uint64) (*Field, error) {
	if p < 2 {
		return nil, fmt.Errorf("%w: p=%d must be >= 2", ErrInvalidField, p)
	}
	if hi, _ := bits.Mul64(p-1, p-1); hi != 0 {
		return nil, fmt.Errorf("%w: p=%d, (p-1)^2 overflows uint64", ErrInvalidField, p)
	}

	inv := make([]uint64, p)
	// Extended-Euclid over v = 2..p-1, with the paired write inv[v]=w,
	// inv[w]=v, per spec.md §4.A.
	for v := uint64(2); v < p; v++ {
		if inv[v] != 0 {
			continue
		}
		w, ok := modmath.Inverse(v, p)
		if !ok {
			return nil, fmt.Errorf("%w: p=%d is not prime (no inverse for %d)", ErrInvalidField, p, v)
		}
		inv[v] = w
		inv[w] = v
	}
	if p > 1 {
		inv[1] = 1
	}
	return &Field{p: p, inv: inv}, nil
}

// Base returns p.
func (f *Field) Base() uint64 { return f.p }

// MulInv returns the multiplicative inverse of v mod p. It fails with
// ErrNoInverse when v mod p == 0.
func (f *Field) MulInv(v uint64) (uint64, error) {
	v %= f.p
	if v == 0 {
		return 0, ErrNoInverse
	}
	return f.inv[v], nil
}

// sameField reports whether two field handles refer to the same field.
// Two *Field handles constructed separately with the same p are, by this
// check, distinct fields — matching spec.md §3's "two polynomials may only
// be combined when their fields match", where "match" means same handle.
func sameField(a, b *Field) bool {
	return a == b
}

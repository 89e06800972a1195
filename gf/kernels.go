package gf

import "gfsearch/internal/modmath"

// GCD computes the monic greatest common divisor of m and n via the
// extended-Euclid variant of spec.md §4.D: swap so size(m) >= size(n), then
// repeatedly replace (u,v) with (v, u mod v) until v = 0; the final u,
// normalized to monic, is the gcd. Fails with ErrZeroInput if either
// argument is the zero polynomial.
func GCD(m, n Poly) (Poly, error) {
	if err := m.checkField(n); err != nil {
		return Poly{}, err
	}
	if m.IsZero() || n.IsZero() {
		return Poly{}, ErrZeroInput
	}
	u, v := m, n
	if u.Size() < v.Size() {
		u, v = v, u
	}
	for !v.IsZero() {
		_, r, err := u.DivMod(v)
		if err != nil {
			return Poly{}, err
		}
		u, v = v, r
	}
	// u is nonzero here (the loop only terminates when v becomes zero,
	// and m, n were both nonzero to start).
	lead := u.At(u.Size() - 1)
	return u.DivScalar(lead)
}

// Derivative returns the formal derivative of f: sum (i*a_i) x^(i-1), mod
// p. A zero result signals every exponent carrying a nonzero coefficient
// is a multiple of p, i.e. f is a p-th power of some polynomial.
func Derivative(f Poly) Poly {
	if f.Size() <= 1 {
		return NewZeroPoly(f.field)
	}
	q := f.field.p
	out := make([]uint64, f.Size()-1)
	for i := 1; i < f.Size(); i++ {
		out[i-1] = modmath.Mul(f.coeffs[i], uint64(i)%q, q)
	}
	return Poly{field: f.field, coeffs: trim(out)}
}

// PowElement returns base^exp in the field, by right-to-left
// exponentiation (spec.md §4.D "integer power of a ring element").
func PowElement(base Element, exp uint64) Element {
	return Element{field: base.field, v: modmath.Pow(base.v, exp, base.field.p)}
}

package gf

import "gfsearch/internal/modmath"

// DivMod performs polynomial long division: p = q*o + r with
// deg(r) < deg(o). It fails with ErrDivisionByZero if o is zero.
//
// Implements the algorithm of spec.md §4.C verbatim: with u = p's
// coefficients, v = o's, m = size(u)-1, n = size(v)-1, the quotient has
// size m-n+1; for k from m-n down to 0, q[k] = u[n+k]/v[n], then
// u[j] -= q[k]*v[j-k] for j from n+k-1 down to k. u is finally truncated to
// size n (the remainder). When size(u) < size(v) the quotient is zero and
// the remainder is u itself.
func (p Poly) DivMod(o Poly) (quot, rem Poly, err error) {
	if err := p.checkField(o); err != nil {
		return Poly{}, Poly{}, err
	}
	if o.IsZero() {
		return Poly{}, Poly{}, ErrDivisionByZero
	}
	q := p.field.p
	n := len(o.coeffs) - 1
	if len(p.coeffs) < len(o.coeffs) {
		return NewZeroPoly(p.field), p, nil
	}
	m := len(p.coeffs) - 1
	u := make([]uint64, len(p.coeffs))
	copy(u, p.coeffs)
	v := o.coeffs
	invLead, err := o.field.MulInv(v[n])
	if err != nil {
		return Poly{}, Poly{}, err
	}
	quotCoeffs := make([]uint64, m-n+1)
	for k := m - n; k >= 0; k-- {
		quotCoeffs[k] = modmath.Mul(u[n+k], invLead, q)
		for j := n + k - 1; j >= k; j-- {
			u[j] = modmath.Sub(u[j], modmath.Mul(quotCoeffs[k], v[j-k], q), q)
		}
	}
	remCoeffs := u[:n]
	return Poly{field: p.field, coeffs: trim(quotCoeffs)},
		Poly{field: p.field, coeffs: trim(remCoeffs)}, nil
}

// Div returns the quotient of p by o.
func (p Poly) Div(o Poly) (Poly, error) {
	q, _, err := p.DivMod(o)
	return q, err
}

// Mod returns the remainder of p by o.
func (p Poly) Mod(o Poly) (Poly, error) {
	_, r, err := p.DivMod(o)
	return r, err
}

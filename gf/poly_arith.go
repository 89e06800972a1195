package gf

import "gfsearch/internal/modmath"

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]uint64, len(p.coeffs))
	for i, c := range p.coeffs {
		if c != 0 {
			out[i] = p.field.p - c
		}
	}
	return Poly{field: p.field, coeffs: trim(out)}
}

// Add returns p+o.
func (p Poly) Add(o Poly) (Poly, error) {
	if err := p.checkField(o); err != nil {
		return Poly{}, err
	}
	n := len(p.coeffs)
	if len(o.coeffs) > n {
		n = len(o.coeffs)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = modmath.Add(p.At(i).v, o.At(i).v, p.field.p)
	}
	return Poly{field: p.field, coeffs: trim(out)}, nil
}

// Sub returns p-o.
func (p Poly) Sub(o Poly) (Poly, error) {
	if err := p.checkField(o); err != nil {
		return Poly{}, err
	}
	n := len(p.coeffs)
	if len(o.coeffs) > n {
		n = len(o.coeffs)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = modmath.Sub(p.At(i).v, o.At(i).v, p.field.p)
	}
	return Poly{field: p.field, coeffs: trim(out)}, nil
}

// Mul returns p*o. Per spec.md §9's note on the multiply kernel, either
// operand being the zero polynomial short-circuits to zero rather than
// allocating a size = len(p)+len(o)-1 buffer that would underflow when
// either length is 0.
func (p Poly) Mul(o Poly) (Poly, error) {
	if err := p.checkField(o); err != nil {
		return Poly{}, err
	}
	if p.IsZero() || o.IsZero() {
		return NewZeroPoly(p.field), nil
	}
	out := make([]uint64, len(p.coeffs)+len(o.coeffs)-1)
	q := p.field.p
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range o.coeffs {
			if b == 0 {
				continue
			}
			out[i+j] = modmath.Add(out[i+j], modmath.Mul(a, b, q), q)
		}
	}
	return Poly{field: p.field, coeffs: trim(out)}, nil
}

// AddScalar returns p+e (e treated as a degree-0 polynomial).
func (p Poly) AddScalar(e Element) (Poly, error) {
	if !sameField(p.field, e.field) {
		return Poly{}, ErrFieldMismatch
	}
	return p.Add(NewPolyFromElement(e))
}

// SubScalar returns p-e.
func (p Poly) SubScalar(e Element) (Poly, error) {
	if !sameField(p.field, e.field) {
		return Poly{}, ErrFieldMismatch
	}
	return p.Sub(NewPolyFromElement(e))
}

// MulScalar returns p*e.
func (p Poly) MulScalar(e Element) (Poly, error) {
	if !sameField(p.field, e.field) {
		return Poly{}, ErrFieldMismatch
	}
	if e.IsZero() {
		return NewZeroPoly(p.field), nil
	}
	out := make([]uint64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = modmath.Mul(c, e.v, p.field.p)
	}
	return Poly{field: p.field, coeffs: trim(out)}, nil
}

// DivScalar returns p/e. It fails with ErrDivisionByZero when e is zero.
func (p Poly) DivScalar(e Element) (Poly, error) {
	if !sameField(p.field, e.field) {
		return Poly{}, ErrFieldMismatch
	}
	inv, err := e.Inv()
	if err != nil {
		return Poly{}, err
	}
	return p.MulScalar(inv)
}

// ModScalar always yields the zero polynomial (division by a nonzero
// scalar in a field is exact), per spec.md §4.C. It still fails with
// ErrDivisionByZero when e is zero, for consistency with DivScalar.
func (p Poly) ModScalar(e Element) (Poly, error) {
	if !sameField(p.field, e.field) {
		return Poly{}, ErrFieldMismatch
	}
	if e.IsZero() {
		return Poly{}, ErrDivisionByZero
	}
	return NewZeroPoly(p.field), nil
}

// ShiftLeft returns p * x^n (always permitted).
func (p Poly) ShiftLeft(n int) Poly {
	if p.IsZero() || n == 0 {
		return p
	}
	out := make([]uint64, len(p.coeffs)+n)
	copy(out[n:], p.coeffs)
	return Poly{field: p.field, coeffs: trim(out)}
}

// ShiftRight returns the exact quotient p / x^n. It fails with
// ErrNotDivisible if any of the n lowest coefficients is nonzero.
func (p Poly) ShiftRight(n int) (Poly, error) {
	if n == 0 {
		return p, nil
	}
	if p.IsZero() {
		return p, nil
	}
	if n >= len(p.coeffs) {
		for _, c := range p.coeffs {
			if c != 0 {
				return Poly{}, ErrNotDivisible
			}
		}
		return NewZeroPoly(p.field), nil
	}
	for i := 0; i < n; i++ {
		if p.coeffs[i] != 0 {
			return Poly{}, ErrNotDivisible
		}
	}
	out := make([]uint64, len(p.coeffs)-n)
	copy(out, p.coeffs[n:])
	return Poly{field: p.field, coeffs: trim(out)}, nil
}

package gf

import (
	"fmt"

	"gfsearch/rng"
)

// Poly is a dense univariate polynomial over GF(p): a field handle plus an
// ordered coefficient sequence where index i holds the coefficient of x^i.
// The zero value is not usable; construct with one of the New* functions.
//
// Canonical (reduced) form invariant: either coeffs is empty (the zero
// polynomial, which has undefined degree) or coeffs[len(coeffs)-1] != 0.
// Every method that returns a Poly restores this invariant before
// returning.
type Poly struct {
	field  *Field
	coeffs []uint64 // coeffs[i] is the coefficient of x^i, each already < field.p
}

// trim drops trailing zero coefficients, restoring the canonical-form
// invariant. It does not mutate its argument.
func trim(c []uint64) []uint64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	out := make([]uint64, n)
	copy(out, c[:n])
	return out
}

// NewZeroPoly returns the zero polynomial over field.
func NewZeroPoly(field *Field) Poly {
	return Poly{field: field}
}

// NewPoly builds a polynomial from a coefficient vector, each entry reduced
// mod p, then canonicalized.
func NewPoly(field *Field, coeffs []uint64) Poly {
	reduced := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		reduced[i] = c % field.p
	}
	return Poly{field: field, coeffs: trim(reduced)}
}

// NewPolyFromElement builds the degree-0 (or zero) polynomial holding e.
func NewPolyFromElement(e Element) Poly {
	if e.IsZero() {
		return NewZeroPoly(e.field)
	}
	return Poly{field: e.field, coeffs: []uint64{e.v}}
}

// NewPolyFromUint builds the degree-0 (or zero) polynomial holding v mod p.
func NewPolyFromUint(field *Field, v uint64) Poly {
	return NewPolyFromElement(NewElement(field, v))
}

// RandomPoly returns a polynomial of exactly the given degree, with a
// nonzero leading coefficient (forced by construction) and a nonzero
// constant term (forced by construction), drawn from the process-wide RNG.
func RandomPoly(field *Field, degree int) Poly {
	c := make([]uint64, degree+1)
	for i := 1; i < degree; i++ {
		c[i] = rng.Uint64n(field.p)
	}
	c[0] = 1 + rng.Uint64n(field.p-1) // forced nonzero constant term
	if degree > 0 {
		c[degree] = 1 + rng.Uint64n(field.p-1) // forced nonzero leading term
	}
	return Poly{field: field, coeffs: c}
}

// Field returns the polynomial's field handle.
func (p Poly) Field() *Field { return p.field }

// Base returns p (the field's modulus).
func (p Poly) Base() uint64 { return p.field.p }

// Size returns the number of stored coefficients after canonicalization;
// 0 for the zero polynomial.
func (p Poly) Size() int { return len(p.coeffs) }

// Degree returns deg(p). It fails with ErrUndefinedDegree on the zero
// polynomial.
func (p Poly) Degree() (int, error) {
	if len(p.coeffs) == 0 {
		return 0, ErrUndefinedDegree
	}
	return len(p.coeffs) - 1, nil
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Value copies out the coefficient vector as a plain integer slice.
func (p Poly) Value() []uint64 {
	out := make([]uint64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// At returns the coefficient of x^i as a field element. Coefficients past
// Size() are implicitly zero. Mutation by index is intentionally not
// exposed: it would risk breaking the canonical-form invariant.
func (p Poly) At(i int) Element {
	if i < 0 || i >= len(p.coeffs) {
		return NewElement(p.field, 0)
	}
	return Element{field: p.field, v: p.coeffs[i]}
}

func (p Poly) checkField(o Poly) error {
	if !sameField(p.field, o.field) {
		return ErrFieldMismatch
	}
	return nil
}

// Equal reports whether p and o have the same field and the same canonical
// coefficient sequence.
func (p Poly) Equal(o Poly) bool {
	if !sameField(p.field, o.field) || len(p.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != o.coeffs[i] {
			return false
		}
	}
	return true
}

// String renders p in the §6 text format, `{ c0, c1, ..., cn }`.
func (p Poly) String() string {
	if len(p.coeffs) == 0 {
		return "{}"
	}
	s := "{"
	for i, c := range p.coeffs {
		if i > 0 {
			s += ", "
		} else {
			s += " "
		}
		s += fmt.Sprintf("%d", c)
	}
	return s + " }"
}

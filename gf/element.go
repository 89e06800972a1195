package gf

import (
	"fmt"

	"gfsearch/internal/modmath"
	"gfsearch/rng"
)

// Element is a residue mod p carrying a handle to its field. The zero
// value is not usable; construct with NewElement.
type Element struct {
	field *Field
	v     uint64
}

// NewElement builds the element v mod p in field.
func NewElement(field *Field, v uint64) Element {
	return Element{field: field, v: v % field.p}
}

// RandomElement returns a uniformly distributed element in [0, p), drawn
// from the process-wide, mutex-guarded generator (package rng).
func RandomElement(field *Field) Element {
	return Element{field: field, v: rng.Uint64n(field.p)}
}

// Field returns the element's field handle.
func (e Element) Field() *Field { return e.field }

// Value returns the residue in [0, p).
func (e Element) Value() uint64 { return e.v }

// IsZero reports whether the residue is 0.
func (e Element) IsZero() bool { return e.v == 0 }

func (e Element) checkField(o Element) error {
	if !sameField(e.field, o.field) {
		return ErrFieldMismatch
	}
	return nil
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.v == 0 {
		return e
	}
	return Element{field: e.field, v: e.field.p - e.v}
}

// Add returns e+o.
func (e Element) Add(o Element) (Element, error) {
	if err := e.checkField(o); err != nil {
		return Element{}, err
	}
	s := e.v + o.v
	if s >= e.field.p {
		s -= e.field.p
	}
	return Element{field: e.field, v: s}, nil
}

// Sub returns e-o.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.checkField(o); err != nil {
		return Element{}, err
	}
	return e.Add(o.Neg())
}

// Mul returns e*o.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.checkField(o); err != nil {
		return Element{}, err
	}
	return Element{field: e.field, v: modmath.Mul(e.v, o.v, e.field.p)}, nil
}

// Inv returns the multiplicative inverse of e. It fails with
// ErrDivisionByZero when e is zero.
func (e Element) Inv() (Element, error) {
	if e.v == 0 {
		return Element{}, ErrDivisionByZero
	}
	w, err := e.field.MulInv(e.v)
	if err != nil {
		return Element{}, fmt.Errorf("%w", ErrDivisionByZero)
	}
	return Element{field: e.field, v: w}, nil
}

// Div returns e/o. It fails with ErrDivisionByZero when o is zero.
func (e Element) Div(o Element) (Element, error) {
	if err := e.checkField(o); err != nil {
		return Element{}, err
	}
	oi, err := o.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(oi)
}

// Cmp returns -1, 0, or 1 as e is less than, equal to, or greater than o,
// under the natural numeric order on the residue. It panics on field
// mismatch, since there is no sane "less than" across fields and every
// caller in this codebase calls Cmp only after establishing same-field
// operands.
func (e Element) Cmp(o Element) int {
	if !sameField(e.field, o.field) {
		panic(ErrFieldMismatch)
	}
	switch {
	case e.v < o.v:
		return -1
	case e.v > o.v:
		return 1
	default:
		return 0
	}
}

// Equal reports e == o (same field and same residue).
func (e Element) Equal(o Element) bool {
	return sameField(e.field, o.field) && e.v == o.v
}

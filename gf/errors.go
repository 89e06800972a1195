package gf

import "errors"

// Sentinel errors for the taxonomy in spec.md §7. Callers that need to
// distinguish a specific failure should use errors.Is against these.
var (
	// ErrInvalidField is returned by NewField when p is not a usable
	// prime-field base: p < 2, (p-1)^2 would overflow a uint64, or some
	// v in [1, p) has no multiplicative inverse (p is not prime).
	ErrInvalidField = errors.New("gf: invalid field base")

	// ErrNoInverse is returned by Field.MulInv when asked for the
	// inverse of 0.
	ErrNoInverse = errors.New("gf: no multiplicative inverse for 0")

	// ErrFieldMismatch is returned when an operation combines elements
	// or polynomials carrying different field handles. This is a
	// contract violation — a programmer error, not a recoverable runtime
	// condition — but Go has no debug-only-assertion facility, so it is
	// surfaced as an ordinary error (see DESIGN.md, Open Question 1).
	ErrFieldMismatch = errors.New("gf: field mismatch")

	// ErrDivisionByZero is returned by element or polynomial division
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("gf: division by zero")

	// ErrUndefinedDegree is returned by Poly.Degree on the zero
	// polynomial, which has no degree.
	ErrUndefinedDegree = errors.New("gf: degree of zero polynomial is undefined")

	// ErrZeroInput is returned by GCD when either argument is the zero
	// polynomial.
	ErrZeroInput = errors.New("gf: gcd of zero polynomial")

	// ErrNotDivisible is returned by Poly.ShiftRight when the shift would
	// discard a nonzero coefficient.
	ErrNotDivisible = errors.New("gf: shift right would discard a nonzero coefficient")

	// ErrParse is returned by io.Parse on malformed input.
	ErrParse = errors.New("gf: malformed polynomial text")
)

package gf

// degenerateIrreducible implements the early exits shared by all three
// irreducibility tests (spec.md §4.E): the zero polynomial and constants
// are never irreducible; a polynomial of degree > 1 with zero constant
// term is divisible by x and so is never irreducible; every degree-1
// polynomial is irreducible. ok reports whether a degenerate verdict was
// reached; when ok is false the caller must run its own algorithm.
func degenerateIrreducible(f Poly) (verdict bool, ok bool) {
	if f.IsZero() {
		return false, true
	}
	n, _ := f.Degree() // f is nonzero here, so Degree cannot fail
	if n == 0 {
		return false, true
	}
	if n > 1 && f.At(0).IsZero() {
		return false, true
	}
	if n == 1 {
		return true, true
	}
	return false, false
}

package gf

// IsIrreducibleBenOr tests irreducibility of f via the Ben-Or test
// (spec.md §4.E): after the shared degenerate-case exits, for each
// i = 1..floor(n/2), reject if t = x^(p^i) mod f - x is zero or shares a
// nonconstant factor with f. If no i triggers rejection, f is irreducible.
func IsIrreducibleBenOr(f Poly) (bool, error) {
	if verdict, ok := degenerateIrreducible(f); ok {
		return verdict, nil
	}
	n, _ := f.Degree()
	p := f.Base()
	field := f.Field()

	x := NewPoly(field, []uint64{0, 1})

	for i := 1; i <= n/2; i++ {
		xpi, err := XPowMod(f, uintPow(p, uint64(i)))
		if err != nil {
			return false, err
		}
		t, err := xpi.Sub(x)
		if err != nil {
			return false, err
		}
		if t.IsZero() {
			return false, nil
		}
		g, err := GCD(f, t)
		if err != nil {
			return false, err
		}
		if dg, _ := g.Degree(); !g.IsZero() && dg > 0 {
			return false, nil
		}
	}
	return true, nil
}

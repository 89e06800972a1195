package gf

// IsIrreducibleRabin tests irreducibility of f via Rabin's test
// (spec.md §4.E): after the shared degenerate-case exits, let q1..qk be
// the distinct prime divisors of n = deg(f). For each ni = n/qi, reject if
// t = x^(p^ni) mod f - x is zero or shares a nonconstant factor with f.
// Finally, irreducible iff x^(p^n) mod f - x is zero.
func IsIrreducibleRabin(f Poly) (bool, error) {
	if verdict, ok := degenerateIrreducible(f); ok {
		return verdict, nil
	}
	n, _ := f.Degree()
	p := f.Base()
	field := f.Field()

	x := NewPoly(field, []uint64{0, 1})

	for _, q := range DistinctPrimeFactors(uint64(n)) {
		ni := uint64(n) / q
		xpni, err := XPowMod(f, uintPow(p, ni))
		if err != nil {
			return false, err
		}
		t, err := xpni.Sub(x)
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

	xpn, err := XPowMod(f, uintPow(p, uint64(n)))
	if err != nil {
		return false, err
	}
	t, err := xpn.Sub(x)
	if err != nil {
		return false, err
	}
	return t.IsZero(), nil
}

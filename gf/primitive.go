package gf

// IsPrimitiveDefinition tests primitivity of f by definition (spec.md
// §4.F): after the shared degenerate exits (zero polynomial, constant
// polynomial, divisibility by x for degree > 1, the hand-coded GF(2)
// f = x+1 exception) it normalizes f to monic, sets
// mp = (-1)^n * f[0], and checks three conditions against the
// factorizations of p-1 and r = (p^n-1)/(p-1).
func IsPrimitiveDefinition(f Poly) (bool, error) {
	p := f.Base()
	if f.IsZero() {
		return false, nil
	}
	n, _ := f.Degree()
	if n == 0 {
		return false, nil
	}
	if f.At(0).IsZero() {
		// f = c*x for some nonzero c: "the polynomial x" case of
		// spec.md §4.F is primitive; any other degree with a zero
		// constant term is divisible by x and so not primitive.
		return n == 1, nil
	}
	if p == 2 && n == 1 && f.At(0).Value() == 1 && f.At(1).Value() == 1 {
		return false, nil
	}

	lead := f.At(n)
	fn, err := f.DivScalar(lead)
	if err != nil {
		return false, err
	}

	mp := fn.At(0)
	if n%2 == 1 {
		mp = mp.Neg()
	}

	if p > 2 {
		bigP := p - 1
		for _, q := range DistinctPrimeFactors(bigP) {
			if PowElement(mp, bigP/q).Value() == 1 {
				return false, nil
			}
		}
	}

	pn := uintPow(p, uint64(n))
	r := (pn - 1) / (p - 1)

	xr, err := XPowMod(fn, r)
	if err != nil {
		return false, err
	}
	if !xr.Equal(NewPolyFromElement(mp)) {
		return false, nil
	}

	for _, q := range distinctProperFactors(r) {
		xq, err := XPowMod(fn, r/q)
		if err != nil {
			return false, err
		}
		d, err := xq.Degree()
		if err != nil || d == 0 {
			return false, nil
		}
	}
	return true, nil
}

// distinctProperFactors returns the distinct prime factors of r excluding
// r itself (used by primitivity condition 3, spec.md §4.F: "excluding 1
// and r itself" — 1 never appears in DistinctPrimeFactors' output).
func distinctProperFactors(r uint64) []uint64 {
	all := DistinctPrimeFactors(r)
	out := make([]uint64, 0, len(all))
	for _, q := range all {
		if q != r {
			out = append(out, q)
		}
	}
	return out
}

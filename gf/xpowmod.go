package gf

// XPowMod computes x^n mod f without ever materializing x^n directly,
// per spec.md §4.D: n can exceed 2^60 in realistic searches.
//
// The routine maintains a running residue r, initially 1, and repeatedly
// shifts it left by s = deg(f) - deg(r) (charged against the remaining
// exponent budget), then reduces mod f. The sentinel state the original
// algorithm watches for — the shifted value just before a reduction
// equaling x^deg(f) — occurs exactly when r is 1 before that shift, which
// is true of the starting state itself. Its budget (n) is therefore the
// first sentinel, trivially. The first time r returns to 1 again after a
// reduction, the gap between that budget and n is a period of the
// recurrence, and the remaining budget can be reduced modulo that period.
// This is a heuristic, not a guarantee: if the schedule never revisits 1,
// the optimization silently does nothing (spec.md §9).
func XPowMod(f Poly, n uint64) (Poly, error) {
	degF, err := f.Degree()
	if err != nil {
		return Poly{}, err
	}
	if degF == 0 {
		// Dividing by a nonzero constant always reduces exactly to 0.
		return NewZeroPoly(f.field), nil
	}

	one := NewPolyFromUint(f.field, 1)
	r := one
	budget := n

	sentinelBudget := budget
	skipApplied := false

	for {
		degR, err := r.Degree()
		if err != nil {
			// r collapsed to zero; it stays zero under further shifts
			// and reductions.
			return NewZeroPoly(f.field), nil
		}
		s := degF - degR
		if uint64(s) > budget {
			return r.ShiftLeft(int(budget)), nil
		}
		r = r.ShiftLeft(s)
		budget -= uint64(s)

		r, err = r.Mod(f)
		if err != nil {
			return Poly{}, err
		}

		if budget == 0 {
			return r, nil
		}

		if !skipApplied && r.Equal(one) {
			period := sentinelBudget - budget
			if period > 0 {
				budget %= period
				skipApplied = true
				if budget == 0 {
					return r, nil
				}
			}
		}
	}
}

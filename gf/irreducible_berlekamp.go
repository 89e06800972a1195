package gf

import "gfsearch/internal/modmath"

// IsIrreducibleBerlekamp tests irreducibility of f via the Berlekamp rank
// test (spec.md §4.E): after the shared degenerate-case exits, f is
// irreducible iff f' != 0, gcd(f, f') is constant, and the n x n matrix
// M = Q - I has rank n-1, where Q's i-th row is the coefficient vector of
// x^(i*p) mod f, padded to length n.
func IsIrreducibleBerlekamp(f Poly) (bool, error) {
	if verdict, ok := degenerateIrreducible(f); ok {
		return verdict, nil
	}
	n, _ := f.Degree()

	deriv := Derivative(f)
	if deriv.IsZero() {
		return false, nil
	}
	g, err := GCD(f, deriv)
	if err != nil {
		return false, err
	}
	if dg, _ := g.Degree(); !g.IsZero() && dg > 0 {
		return false, nil
	}

	p := f.Base()
	q := p
	rows := make([][]uint64, n)
	for i := 0; i < n; i++ {
		exp := uint64(i) * p
		xip, err := XPowMod(f, exp)
		if err != nil {
			return false, err
		}
		row := make([]uint64, n)
		for k := 0; k < n && k < xip.Size(); k++ {
			row[k] = xip.At(k).Value()
		}
		rows[i] = row
	}
	for i := 0; i < n; i++ {
		rows[i][i] = modmath.Sub(rows[i][i], 1, q)
	}

	rank := matrixRank(rows, q)
	return rank == n-1, nil
}

// matrixRank row-reduces m (mutated in place) to row-echelon form over
// GF(q) exactly as spec.md §4.E describes, returning the rank: for each
// column k, find a row at or below the current pivot row i whose entry in
// column k is nonzero; swap it into place, eliminate the entry in every
// row below using the field-division scale factor, and advance i.
func matrixRank(m [][]uint64, q uint64) int {
	rows := len(m)
	if rows == 0 {
		return 0
	}
	cols := len(m[0])
	i := 0
	for k := 0; k < cols && i < rows; k++ {
		pivot := -1
		for row := i; row < rows; row++ {
			if m[row][k] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			continue
		}
		m[i], m[pivot] = m[pivot], m[i]
		invPivot, _ := modmath.Inverse(m[i][k], q)
		for row := i + 1; row < rows; row++ {
			if m[row][k] == 0 {
				continue
			}
			scale := modmath.Mul(m[row][k], invPivot, q)
			for col := k; col < cols; col++ {
				m[row][col] = modmath.Sub(m[row][col], modmath.Mul(scale, m[i][col], q), q)
			}
		}
		i++
	}
	return i
}

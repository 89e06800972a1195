package gf

import (
	"math/rand"
	"testing"
)

func randPoly(rnd *rand.Rand, f *Field, maxDeg int) Poly {
	n := rnd.Intn(maxDeg + 1)
	c := make([]uint64, n+1)
	for i := range c {
		c[i] = uint64(rnd.Int63n(int64(f.Base())))
	}
	return NewPoly(f, c)
}

func TestPolyCanonicalForm(t *testing.T) {
	f := mustField(t, 7)
	p := NewPoly(f, []uint64{1, 2, 0, 0})
	if p.Size() != 2 {
		t.Fatalf("trailing zeros not trimmed: size=%d coeffs=%v", p.Size(), p.Value())
	}
	zero := NewPoly(f, []uint64{0, 0, 0})
	if !zero.IsZero() {
		t.Fatalf("all-zero vector did not canonicalize to the zero polynomial")
	}
	if _, err := zero.Degree(); err == nil {
		t.Error("Degree() of zero polynomial: expected ErrUndefinedDegree, got nil")
	}
}

func TestPolyDivModIdentity(t *testing.T) {
	f := mustField(t, 13)
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		a := randPoly(rnd, f, 8)
		b := randPoly(rnd, f, 5)
		if b.IsZero() {
			continue
		}
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("DivMod: %v", err)
		}
		qb, err := q.Mul(b)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		got, err := qb.Add(r)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if !got.Equal(a) {
			t.Fatalf("(a/b)*b + (a mod b) != a\n  a=%v\n  b=%v\n  q=%v\n  r=%v\n  got=%v",
				a.Value(), b.Value(), q.Value(), r.Value(), got.Value())
		}
	}
}

func TestPolyShiftRoundTrip(t *testing.T) {
	f := mustField(t, 11)
	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 100; trial++ {
		a := randPoly(rnd, f, 10)
		n := rnd.Intn(5)
		shifted := a.ShiftLeft(n)
		back, err := shifted.ShiftRight(n)
		if err != nil {
			t.Fatalf("ShiftRight after ShiftLeft: %v", err)
		}
		if !back.Equal(a) {
			t.Fatalf("(a<<n)>>n != a: a=%v n=%d got=%v", a.Value(), n, back.Value())
		}
	}
}

func TestPolyShiftRightNotDivisible(t *testing.T) {
	f := mustField(t, 5)
	p := NewPoly(f, []uint64{1, 2, 3})
	if _, err := p.ShiftRight(1); err == nil {
		t.Error("ShiftRight of a polynomial with a nonzero low coefficient: expected ErrNotDivisible")
	}
}

func TestPolyMulZeroShortCircuit(t *testing.T) {
	f := mustField(t, 5)
	zero := NewZeroPoly(f)
	nonzero := NewPoly(f, []uint64{1, 2, 3})
	got, err := zero.Mul(nonzero)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("0*p should be 0, got %v", got.Value())
	}
}

func TestPolyGCDLCMAssociate(t *testing.T) {
	f := mustField(t, 5)
	a := NewPoly(f, []uint64{1, 1, 1}) // x^2+x+1 (irreducible over GF(5))
	b := NewPoly(f, []uint64{1, 0, 1}) // x^2+1
	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	g, err := GCD(a, b)
	if err != nil {
		t.Fatalf("GCD: %v", err)
	}
	// a and b are coprime here, so gcd should be a nonzero constant
	// (degree 0), making gcd*lcm associate to a*b via lcm = a*b/gcd.
	if dg, _ := g.Degree(); dg != 0 {
		t.Fatalf("expected coprime a,b to have constant gcd, got degree %d", dg)
	}
	lcm, err := prod.DivScalar(g.At(0))
	if err != nil {
		t.Fatalf("DivScalar: %v", err)
	}
	gLcm, err := g.Mul(lcm)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	// gcd*lcm and a*b must be scalar multiples of one another.
	leadGL := gLcm.At(gLcm.Size() - 1)
	leadProd := prod.At(prod.Size() - 1)
	scale, err := leadProd.Div(leadGL)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	scaled, err := gLcm.MulScalar(scale)
	if err != nil {
		t.Fatalf("MulScalar: %v", err)
	}
	if !scaled.Equal(prod) {
		t.Fatalf("gcd*lcm is not associate to a*b\n  a*b=%v\n  gcd*lcm (scaled)=%v", prod.Value(), scaled.Value())
	}
}

func TestPolyFieldMismatch(t *testing.T) {
	f5 := mustField(t, 5)
	f7 := mustField(t, 7)
	a := NewPoly(f5, []uint64{1, 1})
	b := NewPoly(f7, []uint64{1, 1})
	if _, err := a.Add(b); err == nil {
		t.Error("Add across fields: expected ErrFieldMismatch, got nil")
	}
}

func TestRandomPolyShape(t *testing.T) {
	f := mustField(t, 11)
	for degree := 0; degree <= 6; degree++ {
		p := RandomPoly(f, degree)
		d, err := p.Degree()
		if err != nil {
			t.Fatalf("RandomPoly(%d): unexpected zero polynomial", degree)
		}
		if d != degree {
			t.Fatalf("RandomPoly(%d): got degree %d", degree, d)
		}
		if p.At(0).IsZero() {
			t.Fatalf("RandomPoly(%d): constant term is zero", degree)
		}
	}
}

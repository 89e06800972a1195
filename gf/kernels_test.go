package gf

import "testing"

func TestGCDZeroInput(t *testing.T) {
	f := mustField(t, 5)
	nonzero := NewPoly(f, []uint64{1, 1})
	zero := NewZeroPoly(f)
	if _, err := GCD(zero, nonzero); err == nil {
		t.Error("GCD with a zero operand: expected ErrZeroInput, got nil")
	}
	if _, err := GCD(nonzero, zero); err == nil {
		t.Error("GCD with a zero operand: expected ErrZeroInput, got nil")
	}
}

func TestDerivativeOfPthPower(t *testing.T) {
	// Over GF(2), f = x^2+1 = (x+1)^2; every exponent carrying a nonzero
	// coefficient (0 and 2) is a multiple of p=2, so f' must be zero.
	f := mustField(t, 2)
	p := NewPoly(f, []uint64{1, 0, 1})
	d := Derivative(p)
	if !d.IsZero() {
		t.Errorf("derivative of a 2nd power over GF(2) should be zero, got %v", d.Value())
	}
}

func TestDerivativeLinear(t *testing.T) {
	f := mustField(t, 5)
	// d/dx (3x^2 + 2x + 1) = 6x + 2 = x + 2 mod 5
	p := NewPoly(f, []uint64{1, 2, 3})
	d := Derivative(p)
	want := NewPoly(f, []uint64{2, 1})
	if !d.Equal(want) {
		t.Errorf("Derivative = %v, want %v", d.Value(), want.Value())
	}
}

func TestPowElementMatchesRepeatedMul(t *testing.T) {
	f := mustField(t, 11)
	a := NewElement(f, 3)
	got := PowElement(a, 5)
	want := NewElement(f, 1)
	for i := 0; i < 5; i++ {
		want, _ = want.Mul(a)
	}
	if !got.Equal(want) {
		t.Errorf("PowElement(3,5) = %d, want %d", got.Value(), want.Value())
	}
}

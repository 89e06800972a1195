package gf

import "testing"

func TestIrreducibilityTestsCrossCheck(t *testing.T) {
	bases := []uint64{2, 3, 5, 7}
	for _, p := range bases {
		f := mustField(t, p)
		for degree := 1; degree <= 5; degree++ {
			for trial := 0; trial < 20; trial++ {
				poly := RandomPoly(f, degree)
				bk, err := IsIrreducibleBerlekamp(poly)
				if err != nil {
					t.Fatalf("Berlekamp(%v): %v", poly.Value(), err)
				}
				rb, err := IsIrreducibleRabin(poly)
				if err != nil {
					t.Fatalf("Rabin(%v): %v", poly.Value(), err)
				}
				bo, err := IsIrreducibleBenOr(poly)
				if err != nil {
					t.Fatalf("BenOr(%v): %v", poly.Value(), err)
				}
				if bk != rb || rb != bo {
					t.Fatalf("p=%d poly=%v: methods disagree (berlekamp=%v rabin=%v benor=%v)",
						p, poly.Value(), bk, rb, bo)
				}
			}
		}
	}
}

// literalCase mirrors one of spec.md §8's end-to-end scenarios.
type literalCase struct {
	name        string
	p           uint64
	coeffs      []uint64
	irreducible bool
	primitive   bool
}

func literalCases() []literalCase {
	return []literalCase{
		{"GF(2) x^2+x+1", 2, []uint64{1, 1, 1}, true, true},
		{"GF(2) x^5+x^2+1", 2, []uint64{1, 0, 1, 0, 0, 1}, true, true},
		{"GF(2) x+1", 2, []uint64{1, 1}, true, false},
		{"GF(3) x^8+x^5+x^4+2x^2+x+2", 3, []uint64{2, 1, 0, 2, 1, 0, 0, 0, 1}, true, true},
		{"GF(5) x^4+x^2+2x+2", 5, []uint64{2, 2, 1, 0, 1}, true, true},
		// ord(x) in GF(3)[x]/(2x^2+x+1) is 8 = 3^2-1, so x generates the
		// full multiplicative group: this polynomial is primitive.
		{"GF(3) 2x^2+x+1", 3, []uint64{1, 1, 2}, true, true},
	}
}

func TestIrreducibleLiteralScenarios(t *testing.T) {
	for _, c := range literalCases() {
		c := c
		t.Run(c.name, func(t *testing.T) {
			f := mustField(t, c.p)
			poly := NewPoly(f, c.coeffs)

			bk, err := IsIrreducibleBerlekamp(poly)
			if err != nil {
				t.Fatalf("Berlekamp: %v", err)
			}
			rb, err := IsIrreducibleRabin(poly)
			if err != nil {
				t.Fatalf("Rabin: %v", err)
			}
			bo, err := IsIrreducibleBenOr(poly)
			if err != nil {
				t.Fatalf("BenOr: %v", err)
			}
			if bk != c.irreducible || rb != c.irreducible || bo != c.irreducible {
				t.Fatalf("irreducibility mismatch: want %v, got berlekamp=%v rabin=%v benor=%v",
					c.irreducible, bk, rb, bo)
			}
		})
	}
}

func TestPrimitiveLiteralScenarios(t *testing.T) {
	for _, c := range literalCases() {
		c := c
		t.Run(c.name, func(t *testing.T) {
			f := mustField(t, c.p)
			poly := NewPoly(f, c.coeffs)

			got, err := IsPrimitiveDefinition(poly)
			if err != nil {
				t.Fatalf("IsPrimitiveDefinition: %v", err)
			}
			if got != c.primitive {
				t.Fatalf("primitivity mismatch: want %v, got %v", c.primitive, got)
			}
		})
	}
}

func TestDegenerateIrreducibleCases(t *testing.T) {
	f := mustField(t, 5)
	zero := NewZeroPoly(f)
	if v, ok := degenerateIrreducible(zero); !ok || v {
		t.Errorf("zero polynomial: expected degenerate verdict false, ok=true; got v=%v ok=%v", v, ok)
	}
	constant := NewPoly(f, []uint64{3})
	if v, ok := degenerateIrreducible(constant); !ok || v {
		t.Errorf("nonzero constant: expected degenerate verdict false, ok=true; got v=%v ok=%v", v, ok)
	}
	linear := NewPoly(f, []uint64{2, 1})
	if v, ok := degenerateIrreducible(linear); !ok || !v {
		t.Errorf("linear polynomial: expected degenerate verdict true, ok=true; got v=%v ok=%v", v, ok)
	}
}

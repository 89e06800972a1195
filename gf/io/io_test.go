package io

import (
	"errors"
	"testing"

	"gfsearch/gf"
)

func TestParseFormatRoundTrip(t *testing.T) {
	f, err := gf.NewField(7)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	cases := []string{"{1, 2, 3}", "{  0 1 0 4  }", "{}", "{5}"}
	for _, s := range cases {
		p, err := Parse(f, s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		out := Format(p)
		back, err := Parse(f, out)
		if err != nil {
			t.Fatalf("Parse(Format(...))=%q: %v", out, err)
		}
		if !back.Equal(p) {
			t.Fatalf("round trip mismatch: %q -> %v -> %q -> %v", s, p.Value(), out, back.Value())
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	f, err := gf.NewField(5)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	cases := []string{
		"1, 2, 3",
		"{1, 2, 3",
		"1, 2, 3}",
		"{1, two, 3}",
		"{1, 2, 3} garbage",
		"{-1}",
	}
	for _, s := range cases {
		if _, err := Parse(f, s); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): expected ErrParse, got %v", s, err)
		}
	}
}

func TestFormatZeroPolynomial(t *testing.T) {
	f, err := gf.NewField(5)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	zero := gf.NewZeroPoly(f)
	if got := Format(zero); got != "{}" {
		t.Errorf("Format(zero) = %q, want %q", got, "{}")
	}
}

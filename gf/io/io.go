// Package io implements the human-readable text format for polynomials
// described in spec.md §6: `{ c0, c1, ..., cn }`, comma- or
// whitespace-separated, with arbitrary surrounding whitespace. It is an
// external collaborator per spec.md §1 — an I/O-formatting hook point, not
// part of the arithmetic core.
package io

import (
	"fmt"
	"strconv"
	"strings"

	"gfsearch/gf"
)

// ErrParse is returned when the input does not match the `{ ... }` shape.
var ErrParse = gf.ErrParse

// Parse reads a polynomial over field from its §6 text form. Coefficients
// are read as comma- or whitespace-separated non-negative decimal
// integers between `{` and `}`; anything else is a parse error.
func Parse(field *gf.Field, s string) (gf.Poly, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return gf.Poly{}, fmt.Errorf("%w: missing opening '{'", ErrParse)
	}
	close := strings.LastIndex(s, "}")
	if close == -1 {
		return gf.Poly{}, fmt.Errorf("%w: missing closing '}'", ErrParse)
	}
	if strings.TrimSpace(s[close+1:]) != "" {
		return gf.Poly{}, fmt.Errorf("%w: trailing characters after '}'", ErrParse)
	}
	body := s[1:close]
	body = strings.ReplaceAll(body, ",", " ")
	fields := strings.Fields(body)
	coeffs := make([]uint64, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return gf.Poly{}, fmt.Errorf("%w: %q is not a non-negative integer", ErrParse, tok)
		}
		coeffs = append(coeffs, v)
	}
	return gf.NewPoly(field, coeffs), nil
}

// Format renders p in the §6 text form, `{ c0, c1, ..., cn }`. The zero
// polynomial (no stored coefficients) renders as `{}`.
func Format(p gf.Poly) string {
	return p.String()
}

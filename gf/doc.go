// Package gf implements arithmetic over a prime field GF(p) — field
// descriptors, field elements, and dense univariate polynomials — plus the
// irreducibility and primitivity tests built on top of them.
//
// Coefficients and residues are machine words (uint64). Extension fields
// GF(p^k), sparse polynomials, and arbitrary-precision coefficients are
// out of scope.
package gf

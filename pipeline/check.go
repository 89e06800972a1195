package pipeline

import "gfsearch/gf"

// IrreducibilityMethod selects which of gf's three irreducibility tests
// MakeCheck wires into the resulting CheckFunc.
type IrreducibilityMethod int

const (
	IrrNone IrreducibilityMethod = iota
	IrrBerlekamp
	IrrRabin
	IrrBenOr
)

// PrimitivityMethod selects the primitivity test MakeCheck wires in.
type PrimitivityMethod int

const (
	PrimNone PrimitivityMethod = iota
	PrimDefinition
)

// MakeCheck builds a combined CheckFunc per spec.md §6: it fills
// (Irreducible, Primitive) and short-circuits — if the irreducibility
// test reports false, Primitive is reported false without running the
// primitivity test. A method of "None" defaults its result to true.
func MakeCheck(irr IrreducibilityMethod, prim PrimitivityMethod) CheckFunc {
	return func(p gf.Poly) Result {
		var res Result
		var err error
		switch irr {
		case IrrNone:
			res.Irreducible = true
		case IrrBerlekamp:
			res.Irreducible, err = gf.IsIrreducibleBerlekamp(p)
		case IrrRabin:
			res.Irreducible, err = gf.IsIrreducibleRabin(p)
		case IrrBenOr:
			res.Irreducible, err = gf.IsIrreducibleBenOr(p)
		}
		if err != nil {
			return Result{}
		}
		if !res.Irreducible {
			return res
		}
		switch prim {
		case PrimNone:
			res.Primitive = true
		case PrimDefinition:
			res.Primitive, err = gf.IsPrimitiveDefinition(p)
			if err != nil {
				res.Primitive = false
			}
		}
		return res
	}
}

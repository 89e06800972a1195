// Command gfcli checks a single polynomial for irreducibility and/or
// primitivity and prints a verdict. It is an example driver, an external
// collaborator per spec.md §1 — not part of the core library.
package main

import (
	"flag"
	"fmt"
	"os"

	"gfsearch/gf"
	gfio "gfsearch/gf/io"
)

func usage() {
	fmt.Println(`usage: gfcli -p <prime> -poly <text> [flags]

  -p       <uint>    field base (must be prime)
  -poly    <text>    polynomial in the form "{ c0, c1, ..., cn }"
  -irr     <method>  irreducibility test: none|berlekamp|rabin|benor (default berlekamp)
  -prim              also run the by-definition primitivity test

Exit codes: 0 = requested predicate(s) held, 1 = did not hold, 2 = usage/parse error.`)
}

func main() {
	p := flag.Uint64("p", 0, "field base (prime)")
	polyText := flag.String("poly", "", `polynomial text, e.g. "{1,1,1}"`)
	irrMethod := flag.String("irr", "berlekamp", "irreducibility test: none|berlekamp|rabin|benor")
	checkPrim := flag.Bool("prim", false, "also check primitivity")
	flag.Parse()

	if *p == 0 || *polyText == "" {
		usage()
		os.Exit(2)
	}

	field, err := gf.NewField(*p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gfcli: %v\n", err)
		os.Exit(2)
	}
	poly, err := gfio.Parse(field, *polyText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gfcli: %v\n", err)
		os.Exit(2)
	}

	irreducible := true
	switch *irrMethod {
	case "none":
	case "berlekamp":
		irreducible, err = gf.IsIrreducibleBerlekamp(poly)
	case "rabin":
		irreducible, err = gf.IsIrreducibleRabin(poly)
	case "benor":
		irreducible, err = gf.IsIrreducibleBenOr(poly)
	default:
		fmt.Fprintf(os.Stderr, "gfcli: unknown -irr method %q\n", *irrMethod)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gfcli: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("poly=%s p=%d irreducible(%s)=%v\n", gfio.Format(poly), *p, *irrMethod, irreducible)

	ok := irreducible
	if *checkPrim {
		primitive := false
		if irreducible {
			primitive, err = gf.IsPrimitiveDefinition(poly)
			if err != nil {
				fmt.Fprintf(os.Stderr, "gfcli: %v\n", err)
				os.Exit(2)
			}
		}
		fmt.Printf("primitive=%v\n", primitive)
		ok = ok && primitive
	}

	if !ok {
		os.Exit(1)
	}
}

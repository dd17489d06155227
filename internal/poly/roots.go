package poly

import (
	"fuzzyvault/internal/field"
	"fuzzyvault/internal/rng"
)

// bruteForceRootLimit is the modulus size below which exhaustive search is
// cheaper to reason about than equal-degree factorisation. Above it, Roots
// switches to the randomized EDF split.
const bruteForceRootLimit = 1 << 16

// Roots returns every distinct root of p in [0, p.F.P), assuming p is
// square-free (recovery's use of this always is, once the repeated-root
// check has passed).
func (p Poly) Roots() []uint64 {
	deg := p.Degree()
	if deg <= 0 {
		return nil
	}
	if p.F.P <= bruteForceRootLimit {
		return p.bruteForceRoots()
	}
	return p.equalDegreeRoots()
}

func (p Poly) bruteForceRoots() []uint64 {
	var roots []uint64
	for x := uint64(0); x < p.F.P; x++ {
		if p.Eval(x) == 0 {
			roots = append(roots, x)
		}
	}
	return roots
}

// equalDegreeRoots finds all roots of a square-free polynomial over GF(p),
// p odd, via repeated random splitting: gcd(f, (x+a)^((p-1)/2) - 1) splits
// off, with overwhelming probability, a nontrivial proper factor whenever
// deg(f) > 1. This is the standard randomized equal-degree-factorisation
// technique specialised to degree-1 factors.
func (p Poly) equalDegreeRoots() []uint64 {
	f := p.F
	stream := rng.NewOSStream()
	one := New(f, []field.Elem{1})
	exp := (f.P - 1) / 2

	var roots []uint64
	stack := []Poly{New(f, append([]field.Elem(nil), p.C...))}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := g.Degree()
		if d <= 0 {
			continue
		}
		if d == 1 {
			inv := f.Inv(g.C[1])
			roots = append(roots, f.Mul(f.Neg(g.C[0]), inv))
			continue
		}

		var split Poly
		for {
			a, err := randomElem(stream, f.P)
			if err != nil {
				// OS entropy failure: fall back to exhaustive search for
				// this factor rather than fail the whole recovery.
				roots = append(roots, g.bruteForceRoots()...)
				split = Poly{}
				break
			}
			xPlusA := New(f, []field.Elem{a, 1})
			h := PowMod(xPlusA, exp, g)
			hMinus1 := h.Sub(one)
			cand := Gcd(g, hMinus1)
			cd := cand.Degree()
			if cd > 0 && cd < d {
				split = cand
				break
			}
		}
		if split.Degree() <= 0 {
			continue
		}
		quotient, _, _ := g.DivMod(split)
		stack = append(stack, split, quotient)
	}
	return roots
}

func randomElem(stream rng.Stream, p uint64) (uint64, error) {
	for {
		b, err := stream.Bytes(8)
		if err != nil {
			return 0, err
		}
		var v uint64
		for _, x := range b {
			v = v<<8 | uint64(x)
		}
		v %= p
		if v != 0 {
			return v, nil
		}
	}
}

// HasRepeatedRootsGCD reports whether p has a repeated root by testing
// gcd(p, p') for non-triviality. This is the fast, recommended square-free
// witness (see the design notes on the historical z^p mod p alternative).
func HasRepeatedRootsGCD(p Poly) bool {
	g := Gcd(p, p.Derivative())
	return g.Degree() > 0
}

// HasRepeatedRootsWitness reproduces the original scheme's square-free test
// literally: z^p mod p is compared against z. Any difference indicates a
// repeated root. This is far more expensive for large p than the gcd form
// (it performs a full modular exponentiation to the power p) and is kept
// only for bit-level behavioural compatibility.
func HasRepeatedRootsWitness(p Poly) bool {
	f := p.F
	z := New(f, []field.Elem{0, 1})
	r := PowMod(z, f.P, p)
	diff := r.Sub(z)
	return diff.Degree() >= 0
}

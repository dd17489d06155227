package poly

import (
	"testing"

	"fuzzyvault/internal/field"
)

func TestDivModReconstructs(t *testing.T) {
	f := testField(t)
	p := New(f, []field.Elem{1, 2, 3, 4})
	d := New(f, []field.Elem{5, 1})

	q, r, err := p.DivMod(d)
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	reconstructed := q.Mul(d).Add(r)
	for x := field.Elem(0); x < 30; x++ {
		if reconstructed.Eval(x) != p.Eval(x) {
			t.Fatalf("q*d+r mismatch at x=%d", x)
		}
	}
	if r.Degree() >= d.Degree() {
		t.Fatalf("remainder degree %d not less than divisor degree %d", r.Degree(), d.Degree())
	}
}

func TestDivModByZeroFails(t *testing.T) {
	f := testField(t)
	p := New(f, []field.Elem{1, 2})
	_, _, err := p.DivMod(New(f, nil))
	if err == nil {
		t.Fatalf("expected error dividing by zero polynomial")
	}
}

func TestGcdOfCoprimeIsOne(t *testing.T) {
	f := testField(t)
	a := FromRoots(f, []field.Elem{1, 2, 3})
	b := FromRoots(f, []field.Elem{4, 5, 6})
	g := Gcd(a, b)
	if g.Degree() != 0 {
		t.Fatalf("Gcd degree = %d, want 0 for disjoint root sets", g.Degree())
	}
}

func TestGcdOfSharedRoot(t *testing.T) {
	f := testField(t)
	a := FromRoots(f, []field.Elem{1, 2, 3})
	b := FromRoots(f, []field.Elem{3, 4})
	g := Gcd(a, b)
	if g.Degree() != 1 {
		t.Fatalf("Gcd degree = %d, want 1", g.Degree())
	}
	if g.Eval(3) != 0 {
		t.Fatalf("shared root 3 does not satisfy gcd")
	}
}

func TestPowModAgainstDirectEval(t *testing.T) {
	f := testField(t)
	base := New(f, []field.Elem{2, 1})
	mod := FromRoots(f, []field.Elem{10, 20, 30})

	result := PowMod(base, 5, mod)
	for _, x := range []field.Elem{10, 20, 30} {
		want := f.Exp(base.Eval(x), 5)
		if result.Eval(x) != want {
			t.Fatalf("PowMod eval mismatch at x=%d: got %d want %d", x, result.Eval(x), want)
		}
	}
}

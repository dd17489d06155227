package poly

import (
	"testing"

	"fuzzyvault/internal/field"
)

func testField(t *testing.T) field.Field {
	t.Helper()
	return field.New(929)
}

func TestEvalHorner(t *testing.T) {
	f := testField(t)
	// p(x) = 3 + 2x + x^2
	p := New(f, []field.Elem{3, 2, 1})
	for x := field.Elem(0); x < 10; x++ {
		got := p.Eval(x)
		want := f.Add(f.Add(3, f.Mul(2, x)), f.Mul(x, x))
		if got != want {
			t.Fatalf("Eval(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestAddSubMulIdentities(t *testing.T) {
	f := testField(t)
	a := New(f, []field.Elem{1, 2, 3})
	b := New(f, []field.Elem{4, 5})

	sum := a.Add(b)
	back := sum.Sub(b)
	for x := field.Elem(0); x < 20; x++ {
		if back.Eval(x) != a.Eval(x) {
			t.Fatalf("add/sub roundtrip mismatch at x=%d", x)
		}
	}

	prod := a.Mul(b)
	for x := field.Elem(0); x < 20; x++ {
		want := f.Mul(a.Eval(x), b.Eval(x))
		if prod.Eval(x) != want {
			t.Fatalf("mul mismatch at x=%d: got %d want %d", x, prod.Eval(x), want)
		}
	}
}

func TestMonic(t *testing.T) {
	f := testField(t)
	p := New(f, []field.Elem{6, 4, 2})
	m := p.Monic()
	if m.C[m.Degree()] != 1 {
		t.Fatalf("Monic leading coeff = %d, want 1", m.C[m.Degree()])
	}
	for x := field.Elem(0); x < 20; x++ {
		if p.Eval(x) != 0 && m.Eval(x) == 0 {
			t.Fatalf("Monic changed roots")
		}
	}
}

func TestDerivative(t *testing.T) {
	f := testField(t)
	// p(x) = 1 + 2x + 3x^2 -> p'(x) = 2 + 6x
	p := New(f, []field.Elem{1, 2, 3})
	d := p.Derivative()
	want := New(f, []field.Elem{2, 6})
	if d.Degree() != want.Degree() {
		t.Fatalf("Derivative degree = %d, want %d", d.Degree(), want.Degree())
	}
	for i, c := range want.C {
		if d.C[i] != c {
			t.Fatalf("Derivative coeff[%d] = %d, want %d", i, d.C[i], c)
		}
	}
}

func TestFromRootsEvaluatesToZero(t *testing.T) {
	f := testField(t)
	roots := []field.Elem{3, 7, 11}
	p := FromRoots(f, roots)
	for _, r := range roots {
		if p.Eval(r) != 0 {
			t.Fatalf("FromRoots polynomial does not vanish at root %d", r)
		}
	}
	if p.Degree() != len(roots) {
		t.Fatalf("Degree = %d, want %d", p.Degree(), len(roots))
	}
}

func TestZeroPolynomialDegree(t *testing.T) {
	f := testField(t)
	z := New(f, nil)
	if z.Degree() != -1 {
		t.Fatalf("zero polynomial degree = %d, want -1", z.Degree())
	}
}

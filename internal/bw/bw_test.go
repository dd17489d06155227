package bw

import (
	"testing"

	"fuzzyvault/internal/ferr"
	"fuzzyvault/internal/field"
)

// TestDecodeCorruptedCodeword reproduces the shape of the Wikipedia
// Berlekamp-Welch worked example over GF(929): a degree-2 message
// polynomial (k=3) is evaluated at 7 points, 2 of the values are corrupted
// (t=2), and Decode must still recover the original polynomial exactly.
func TestDecodeCorruptedCodeword(t *testing.T) {
	f := field.New(929)
	coeffs := []field.Elem{3, 2, 9}
	message := func(x field.Elem) field.Elem {
		return f.Add(f.Add(coeffs[0], f.Mul(coeffs[1], x)),
			f.Mul(coeffs[2], f.Mul(x, x)))
	}

	a := []field.Elem{1, 2, 3, 4, 5, 6, 7}
	b := make([]field.Elem, len(a))
	for i, x := range a {
		b[i] = message(x)
	}
	// corrupt two positions
	b[2] = f.Add(b[2], 1)
	b[5] = f.Add(b[5], 17)

	got, err := Decode(f, a, b, 3, 2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, x := range a {
		if got.Eval(x) != message(x) {
			t.Fatalf("decoded polynomial disagrees at honest evaluation x=%d: got %d want %d", x, got.Eval(x), message(x))
		}
	}
}

func TestDecodeRejectsMismatchedLengths(t *testing.T) {
	f := field.New(929)
	_, err := Decode(f, []field.Elem{1, 2}, []field.Elem{1}, 1, 1)
	if err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
	if !ferr.Is(err, ferr.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestDecodeWithNoErrorsRecoversExactPolynomial(t *testing.T) {
	f := field.New(929)
	// p(x) = 3 + 2x + 9x^2, evaluated with zero errors permitted (t is
	// still declared as 1 for the BW machinery, but no sample is altered).
	coeffs := []field.Elem{3, 2, 9}
	evalPoly := func(x field.Elem) field.Elem {
		return f.Add(f.Add(coeffs[0], f.Mul(coeffs[1], x)), f.Mul(coeffs[2], f.Mul(x, x)))
	}
	a := []field.Elem{1, 2, 3, 4, 5, 6}
	b := make([]field.Elem, len(a))
	for i, x := range a {
		b[i] = evalPoly(x)
	}

	got, err := Decode(f, a, b, 3, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, x := range a {
		if got.Eval(x) != evalPoly(x) {
			t.Fatalf("decoded polynomial disagrees at x=%d", x)
		}
	}
}

// Package bw implements the Berlekamp-Welch decoder: given n samples
// (a_i, b_i) of which at most t are corrupted, it recovers the degree-k-1
// polynomial the honest samples lie on.
//
// See https://en.wikipedia.org/wiki/Berlekamp%E2%80%93Welch_algorithm for
// the construction this follows.
package bw

import (
	"fuzzyvault/internal/ferr"
	"fuzzyvault/internal/field"
	"fuzzyvault/internal/matrix"
	"fuzzyvault/internal/poly"
)

// powers returns 1, a, a^2, ..., a^(n-1) mod p.
func powers(f field.Field, a field.Elem, n int) []field.Elem {
	out := make([]field.Elem, n)
	y := field.Elem(1) % f.P
	for i := 0; i < n; i++ {
		out[i] = y
		y = f.Mul(y, a)
	}
	return out
}

// Decode recovers the degree-(k-1) polynomial underlying a and b, tolerant
// of up to t corrupted samples. It returns a NoSolution error if the
// resulting linear system has no solution, or if the recovered Q is not
// evenly divisible by E (meaning more than t samples were corrupted).
func Decode(f field.Field, a, b []field.Elem, k, t int) (poly.Poly, error) {
	n := len(a)
	if n < 1 {
		return poly.Poly{}, ferr.New(ferr.InvalidInput, "a is empty")
	}
	if len(b) != n {
		return poly.Poly{}, ferr.New(ferr.InvalidInput, "a and b have different lengths")
	}
	if k < 1 || t < 1 {
		return poly.Poly{}, ferr.New(ferr.InvalidInput, "k and t must be positive")
	}

	m := matrix.New(f, n, n)
	y := matrix.New(f, n, 1)
	for i := 0; i < n; i++ {
		apowers := powers(f, a[i], k+t)
		for j := 0; j < k+t; j++ {
			m.Set(i, j, apowers[j])
		}
		for j := 0; j < t; j++ {
			m.Set(i, k+t+j, f.Neg(f.Mul(b[i], apowers[j])))
		}
		y.Set(i, 0, f.Mul(b[i], apowers[t]))
	}

	x, err := matrix.Solve(m, y)
	if err != nil {
		return poly.Poly{}, ferr.New(ferr.NoSolution, "no solution to Berlekamp-Welch system")
	}

	qs := make([]field.Elem, k+t)
	for j := 0; j < k+t; j++ {
		qs[j] = x.At(j, 0)
	}
	es := make([]field.Elem, t+1)
	for j := 0; j < t; j++ {
		es[j] = x.At(k+t+j, 0)
	}
	es[t] = 1

	q := poly.New(f, qs)
	e := poly.New(f, es)

	answer, remainder, err := q.DivMod(e)
	if err != nil {
		return poly.Poly{}, err
	}
	if remainder.Degree() >= 0 {
		return poly.Poly{}, ferr.New(ferr.NoSolution, "nonzero remainder decoding Q/E")
	}
	return answer, nil
}

// Package poly implements dense univariate polynomials over GF(p): the
// construction, arithmetic, division, and root-finding that the Berlekamp-
// Welch decoder and the sketch/recovery pipeline build on.
package poly

import "fuzzyvault/internal/field"

// Poly is a polynomial over a fixed field, held as little-endian
// coefficients (C[0] is the constant term). The zero polynomial is
// represented by a nil/empty C.
type Poly struct {
	F field.Field
	C []field.Elem
}

// New builds a normalized Poly from little-endian coefficients, trimming any
// trailing zero coefficients.
func New(f field.Field, coeffs []field.Elem) Poly {
	c := append([]field.Elem(nil), coeffs...)
	return Poly{F: f, C: trim(c)}
}

func trim(c []field.Elem) []field.Elem {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

func degreeOf(c []field.Elem) int {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] != 0 {
			return i
		}
	}
	return -1
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return degreeOf(p.C)
}

// Coeffs returns a zero-padded or truncated little-endian coefficient slice
// of the requested length.
func (p Poly) Coeffs(length int) []field.Elem {
	out := make([]field.Elem, length)
	copy(out, p.C)
	return out
}

// Eval evaluates the polynomial at x using Horner's method.
func (p Poly) Eval(x field.Elem) field.Elem {
	var result field.Elem
	for i := len(p.C) - 1; i >= 0; i-- {
		result = p.F.Add(p.F.Mul(result, x), p.C[i])
	}
	return result
}

// Add returns p+q.
func (p Poly) Add(q Poly) Poly {
	n := len(p.C)
	if len(q.C) > n {
		n = len(q.C)
	}
	c := make([]field.Elem, n)
	for i := 0; i < n; i++ {
		var a, b field.Elem
		if i < len(p.C) {
			a = p.C[i]
		}
		if i < len(q.C) {
			b = q.C[i]
		}
		c[i] = p.F.Add(a, b)
	}
	return New(p.F, c)
}

// Sub returns p-q.
func (p Poly) Sub(q Poly) Poly {
	n := len(p.C)
	if len(q.C) > n {
		n = len(q.C)
	}
	c := make([]field.Elem, n)
	for i := 0; i < n; i++ {
		var a, b field.Elem
		if i < len(p.C) {
			a = p.C[i]
		}
		if i < len(q.C) {
			b = q.C[i]
		}
		c[i] = p.F.Sub(a, b)
	}
	return New(p.F, c)
}

// Mul returns p*q by schoolbook convolution (the polynomials involved here
// have degree on the order of the word-set size, so this stays cheap).
func (p Poly) Mul(q Poly) Poly {
	if len(p.C) == 0 || len(q.C) == 0 {
		return New(p.F, nil)
	}
	c := make([]field.Elem, len(p.C)+len(q.C)-1)
	for i, a := range p.C {
		if a == 0 {
			continue
		}
		for j, b := range q.C {
			c[i+j] = p.F.Add(c[i+j], p.F.Mul(a, b))
		}
	}
	return New(p.F, c)
}

// Monic returns p scaled so its leading coefficient is 1. The zero
// polynomial is returned unchanged.
func (p Poly) Monic() Poly {
	deg := p.Degree()
	if deg < 0 || p.C[deg] == 1 {
		return p
	}
	inv := p.F.Inv(p.C[deg])
	c := make([]field.Elem, len(p.C))
	for i, v := range p.C {
		c[i] = p.F.Mul(v, inv)
	}
	return New(p.F, c)
}

// Derivative returns the formal derivative of p.
func (p Poly) Derivative() Poly {
	if len(p.C) <= 1 {
		return New(p.F, nil)
	}
	c := make([]field.Elem, len(p.C)-1)
	for i := 1; i < len(p.C); i++ {
		c[i-1] = p.F.Mul(p.C[i], field.Elem(i)%p.F.P)
	}
	return New(p.F, c)
}

// FromRoots builds the monic polynomial Π (z - r) over the given roots.
func FromRoots(f field.Field, roots []field.Elem) Poly {
	result := New(f, []field.Elem{1})
	for _, r := range roots {
		factor := New(f, []field.Elem{f.Neg(r), 1})
		result = result.Mul(factor)
	}
	return result
}

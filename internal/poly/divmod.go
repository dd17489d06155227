package poly

import (
	"fuzzyvault/internal/ferr"
	"fuzzyvault/internal/field"
)

// DivMod returns the quotient and remainder of the Euclidean division of p
// by d. It fails with InvalidInput if d is the zero polynomial.
func (p Poly) DivMod(d Poly) (quotient, remainder Poly, err error) {
	dDeg := d.Degree()
	if dDeg < 0 {
		return Poly{}, Poly{}, ferr.New(ferr.InvalidInput, "division by zero polynomial")
	}
	f := p.F
	rem := append([]field.Elem(nil), p.C...)
	leadInv := f.Inv(d.C[dDeg])

	var q []field.Elem
	for {
		rDeg := degreeOf(rem)
		if rDeg < dDeg {
			break
		}
		coeff := f.Mul(rem[rDeg], leadInv)
		shift := rDeg - dDeg
		for len(q) <= shift {
			q = append(q, 0)
		}
		q[shift] = coeff
		for i := 0; i <= dDeg; i++ {
			rem[shift+i] = f.Sub(rem[shift+i], f.Mul(coeff, d.C[i]))
		}
	}
	return New(f, q), New(f, rem), nil
}

// Gcd returns the monic greatest common divisor of a and b via the
// Euclidean algorithm.
func Gcd(a, b Poly) Poly {
	for b.Degree() >= 0 {
		_, r, _ := a.DivMod(b)
		a, b = b, r
	}
	return a.Monic()
}

// PowMod returns base^exp mod m by repeated squaring, reducing modulo m at
// every step so intermediate degree stays bounded by deg(m).
func PowMod(base Poly, exp uint64, m Poly) Poly {
	f := base.F
	result := New(f, []field.Elem{1})
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
		exp >>= 1
	}
	return result
}

func mulMod(a, b, m Poly) Poly {
	_, r, _ := a.Mul(b).DivMod(m)
	return r
}

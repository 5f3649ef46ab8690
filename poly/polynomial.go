// Package poly implements the polynomial kernel shared by the filter
// designer pipeline: Horner evaluation, convolution, expansion from a root
// set, synthetic-division deflation, and a root finder used by the Bessel
// designer to factor the reverse Bessel polynomial.
//
// Coefficients are always stored in descending powers:
// a[0]*x^n + a[1]*x^(n-1) + ... + a[n], matching spec §3.
package poly

import (
	"math"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// Evaluate evaluates a real-coefficient polynomial at a complex point using
// Horner's method.
func Evaluate(a []float64, x complex128) complex128 {
	var sum complex128

	for _, c := range a {
		sum = sum*x + complex(c, 0)
	}

	return sum
}

// EvaluateComplex evaluates a complex-coefficient polynomial at a complex
// point using Horner's method.
func EvaluateComplex(a []complex128, x complex128) complex128 {
	var sum complex128

	for _, c := range a {
		sum = sum*x + c
	}

	return sum
}

// RationalFraction represents a transfer function Top(z)/Bottom(z), both
// real-coefficient polynomials in descending powers.
type RationalFraction struct {
	Top    []float64
	Bottom []float64
}

// EvaluateRational evaluates a RationalFraction at x. It fails with a
// ClassGeneric/Arithmetic error if the denominator is zero at x.
func EvaluateRational(r RationalFraction, x complex128) (complex128, error) {
	den := Evaluate(r.Bottom, x)
	if den == 0 {
		return 0, bioerr.Arithmetic("poly: rational fraction denominator is zero at %v", x)
	}

	return Evaluate(r.Top, x) / den, nil
}

// Multiply convolves two real-coefficient polynomials (descending powers),
// returning a polynomial of length len(a)+len(b)-1.
func Multiply(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, len(a)+len(b)-1)
	for i, ai := range a {
		for j, bj := range b {
			out[i+j] += ai * bj
		}
	}

	return out
}

// MultiplyComplex convolves two complex-coefficient polynomials (descending
// powers).
func MultiplyComplex(a, b []complex128) []complex128 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]complex128, len(a)+len(b)-1)
	for i, ai := range a {
		for j, bj := range b {
			out[i+j] += ai * bj
		}
	}

	return out
}

// Expand returns the coefficients of prod(x - zeros[i]), starting from [1]
// and successively multiplying by [1, -zeros[i]]. An empty root set returns
// [1].
func Expand(zeros []complex128) []complex128 {
	out := []complex128{1}
	for _, z := range zeros {
		out = MultiplyComplex(out, []complex128{1, -z})
	}

	return out
}

// Deflate performs synthetic division of a (descending powers) by (x - z),
// returning the quotient coefficients. If eps > 0, the remainder must
// satisfy |Re(r)| <= eps && |Im(r)| <= eps or Deflate fails.
func Deflate(a []complex128, z complex128, eps float64) ([]complex128, error) {
	if len(a) == 0 {
		return nil, bioerr.Arguments(0, "poly: cannot deflate an empty polynomial")
	}

	quotient := make([]complex128, len(a)-1)

	acc := a[0]
	for i := 1; i < len(a); i++ {
		if i-1 < len(quotient) {
			quotient[i-1] = acc
		}

		acc = acc*z + a[i]
	}

	remainder := acc
	if eps > 0 {
		if math.Abs(real(remainder)) > eps || math.Abs(imag(remainder)) > eps {
			return nil, bioerr.Arithmetic("poly: deflate remainder %v exceeds tolerance %v", remainder, eps)
		}
	}

	return quotient, nil
}

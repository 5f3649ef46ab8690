// Package numeric provides the small set of scalar and complex helpers
// shared by the polynomial kernel and filter designer: clipping, squaring,
// the unit-circle exponential, and the "nearly equal" / "imaginary part is
// effectively zero" tolerance checks the designer pipeline relies on.
//
// NearlyEqual and ComplexNearlyEqual are built on gonum.org/v1/gonum's
// floats/cmplxs packages; RealPart and IsConjugate compare with math.Abs.
package numeric

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Clip limits value to the inclusive range [lo, hi].
func Clip(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(value, lo), hi)
}

// Square returns x*x.
func Square(x float64) float64 {
	return x * x
}

// ExpJ returns e^(j*theta) = cos(theta) + j*sin(theta).
func ExpJ(theta float64) complex128 {
	return cmplx.Exp(complex(0, theta))
}

// NearlyEqual reports whether a and b agree within an absolute-or-relative
// tolerance eps, using gonum/floats.EqualWithinAbsOrRel.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}

	return floats.EqualWithinAbsOrRel(a, b, eps, eps)
}

// ComplexNearlyEqual reports whether a and b agree within an
// absolute-or-relative tolerance eps, using gonum/cmplxs.EqualApprox.
func ComplexNearlyEqual(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}

	return cmplxs.EqualApprox([]complex128{a}, []complex128{b}, eps)
}

// RealPart extracts the real part of z, treating an imaginary part with
// magnitude <= max(1e-10, 1e-10*|real|) as numerical noise from a
// conjugate-pair cancellation and zeroing it. A larger imaginary part
// indicates the polynomial expansion did not stay real-valued and the
// extraction fails — see spec §3: transfer-function coefficients must have
// |Im| <= max(1e-10, 1e-10*|Re|) or the design fails with Arithmetic.
func RealPart(z complex128) (float64, bool) {
	re, im := real(z), imag(z)

	tol := math.Max(1e-10, 1e-10*math.Abs(re))
	if math.Abs(im) > tol {
		return 0, false
	}

	return re, true
}

// IsConjugate reports whether a and b are complex conjugates within a
// relative tolerance tol.
func IsConjugate(a, b complex128, tol float64) bool {
	if tol <= 0 {
		tol = 1e-7
	}

	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	return math.Abs(imag(a)+imag(b)) <= tol*math.Max(1, math.Abs(imag(a)))
}

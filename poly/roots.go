package poly

import (
	"math"
	"math/cmplx"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// FindRoots returns the deg(a) roots of a
// real-coefficient polynomial a (descending powers, a[0] != 0), using the
// Durand-Kerner (Weierstrass) simultaneous-iteration method. Spec §4.1
// calls for Jenkins-Traub but explicitly allows "any robust root finder
// that passes the testable properties" — Durand-Kerner is used here
// because it needs no derivative, converges reliably for the modest
// orders (<=10) the Bessel designer produces, and is simple to verify
// against the polynomial-identity property in spec §8.
func FindRoots(a []float64) ([]complex128, error) {
	coeff := make([]complex128, len(a))
	for i, c := range a {
		coeff[i] = complex(c, 0)
	}

	return findRootsComplex(coeff)
}

// FindRootsComplex is the complex-coefficient counterpart of FindRoots.
func FindRootsComplex(a []complex128) ([]complex128, error) {
	return findRootsComplex(a)
}

func findRootsComplex(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, bioerr.Arithmetic("poly: cannot find roots of a degree-0 polynomial")
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, bioerr.Arithmetic("poly: leading coefficient is zero")
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i, c := range coeff {
		norm[i] = c / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := EvaluateComplex(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0
	for _, r := range roots {
		if res := cmplx.Abs(EvaluateComplex(norm, r)); res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, bioerr.Arithmetic("poly: root finder did not converge (max residual %v)", maxResidual)
}

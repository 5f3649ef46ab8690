package design

import (
	"math"
	"math/cmplx"

	"github.com/signalkit/biosig-dsp/bioerr"
	"github.com/signalkit/biosig-dsp/poly"
)

// butterworthPrototype places N poles evenly around the unit circle in
// the left half-plane (spec §4.3.1), the classic maximally-flat-magnitude
// placement. No finite zeros.
func butterworthPrototype(order int, _ float64) (poles, zeros []complex128, err error) {
	if order < 1 {
		return nil, nil, bioerr.Arguments(0, "design: butterworth order must be >= 1, got %d", order)
	}

	poles = make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / float64(2*order)
		poles[k] = complex(-math.Sin(theta), math.Cos(theta))
	}

	return poles, nil, nil
}

func chebyshevEpsilon(rippleDB float64) float64 {
	return math.Sqrt(math.Pow(10, rippleDB/10) - 1)
}

// chebyshev1Prototype places N poles on an ellipse whose eccentricity is
// set by the passband ripple (spec §4.3.1). No finite zeros.
func chebyshev1Prototype(order int, rippleDB float64) (poles, zeros []complex128, err error) {
	if order < 1 {
		return nil, nil, bioerr.Arguments(0, "design: chebyshev order must be >= 1, got %d", order)
	}

	if rippleDB <= 0 {
		return nil, nil, bioerr.Arguments(0, "design: chebyshev ripple must be > 0 dB, got %v", rippleDB)
	}

	eps := chebyshevEpsilon(rippleDB)
	a := math.Asinh(1/eps) / float64(order)

	sinhA := math.Sinh(a)
	coshA := math.Cosh(a)

	poles = make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / float64(2*order)
		poles[k] = complex(-sinhA*math.Sin(theta), coshA*math.Cos(theta))
	}

	return poles, nil, nil
}

// chebyshev2Prototype builds the inverse-Chebyshev (Chebyshev II)
// prototype by reciprocating the Chebyshev I pole/zero placement computed
// with the stopband ripple standing in for the passband ripple parameter
// (SPEC_FULL.md §4.3.5): poles and zeros both come out on, or symmetric
// about, the imaginary axis region, with one zero at infinity (dropped)
// when order is odd.
func chebyshev2Prototype(order int, rippleDB float64) (poles, zeros []complex128, err error) {
	if order < 1 {
		return nil, nil, bioerr.Arguments(0, "design: chebyshev order must be >= 1, got %d", order)
	}

	if rippleDB <= 0 {
		return nil, nil, bioerr.Arguments(0, "design: chebyshev ripple must be > 0 dB, got %v", rippleDB)
	}

	eps := 1 / chebyshevEpsilon(rippleDB)
	a := math.Asinh(1/eps) / float64(order)

	sinhA := math.Sinh(a)
	coshA := math.Cosh(a)

	poles = make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / float64(2*order)
		p := complex(-sinhA*math.Sin(theta), coshA*math.Cos(theta))
		poles[k] = 1 / p
	}

	zeros = make([]complex128, 0, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / float64(2*order)

		cosTheta := math.Cos(theta)
		if math.Abs(cosTheta) < 1e-12 {
			continue // zero at infinity, dropped (happens once when order is odd)
		}

		zeros = append(zeros, 1/complex(0, cosTheta))
	}

	return poles, zeros, nil
}

// reverseBesselCoefficients builds the coefficients (descending powers) of
// the reverse Bessel polynomial theta_n via the standard recurrence
// theta_0=1, theta_1=x+1, theta_n=(2n-1)*theta_(n-1) + x^2*theta_(n-2).
func reverseBesselCoefficients(order int) []float64 {
	theta0 := []float64{1}
	theta1 := []float64{1, 1}

	if order == 0 {
		return theta0
	}

	if order == 1 {
		return theta1
	}

	prev2, prev1 := theta0, theta1

	for n := 2; n <= order; n++ {
		scaled := make([]float64, len(prev1))
		for i, c := range prev1 {
			scaled[i] = c * float64(2*n-1)
		}

		x2Prev2 := append(append([]float64{}, prev2...), 0, 0) // multiply by x^2: shift two degrees

		cur := make([]float64, len(x2Prev2))

		padded := make([]float64, len(x2Prev2))
		copy(padded[len(x2Prev2)-len(scaled):], scaled)

		for i := range cur {
			cur[i] = padded[i] + x2Prev2[i]
		}

		prev2, prev1 = prev1, cur
	}

	return prev1
}

// besselPrototype finds the roots of the reverse Bessel polynomial of the
// requested order; those roots, divided by the polynomial's -3 dB
// frequency so the gain at 1 rad/s is 1/sqrt(2), are the poles of the
// maximally-flat-group-delay lowpass prototype (spec §4.1, §4.3.1). No
// finite zeros.
func besselPrototype(order int, _ float64) (poles, zeros []complex128, err error) {
	if order < 1 {
		return nil, nil, bioerr.Arguments(0, "design: bessel order must be >= 1, got %d", order)
	}

	coeffs := reverseBesselCoefficients(order)

	roots, err := poly.FindRoots(coeffs)
	if err != nil {
		return nil, nil, err
	}

	// |H(jw)| = theta(0)/|theta(jw)| falls monotonically; bisect for w3.
	dc := coeffs[len(coeffs)-1]
	lo, hi := 0.0, float64(order)+1
	for range 100 {
		mid := (lo + hi) / 2
		if cmplx.Abs(poly.Evaluate(coeffs, complex(0, mid))) < dc*math.Sqrt2 {
			lo = mid
		} else {
			hi = mid
		}
	}

	w3 := complex((lo+hi)/2, 0)
	for i := range roots {
		roots[i] /= w3
	}

	return roots, nil, nil
}

// conjugatePairsEqual is a tiny guard used by tests to sanity-check a
// prototype's poles are symmetric about the real axis before they ever
// reach the Fisher pipeline's own conjugate check.
func conjugatePairsEqual(poles []complex128) bool {
	for _, p := range poles {
		if math.Abs(imag(p)) < 1e-9 {
			continue
		}

		found := false

		for _, q := range poles {
			if cmplx.Abs(p-cmplx.Conj(q)) < 1e-6 {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

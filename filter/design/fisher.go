package design

import (
	"math"
	"math/cmplx"

	"github.com/signalkit/biosig-dsp/bioerr"
	"github.com/signalkit/biosig-dsp/filter/stream"
	"github.com/signalkit/biosig-dsp/numeric"
	"github.com/signalkit/biosig-dsp/poly"
)

// zMethod selects the s-plane-to-z-plane mapping the Fisher pipeline
// applies after the prototype's poles (and zeros, for Chebyshev II) have
// been placed and frequency-transformed.
type zMethod int

const (
	// methodBilinear is the standard z=(s+2)/(2-s) bilinear transform.
	// It requires frequency pre-warping and introduces a zero at z=-1
	// for every pole "at infinity" in the analog prototype.
	methodBilinear zMethod = iota

	// methodMatchedZ is z=exp(s), applied unwarped. It preserves the
	// all-pole character of the Bessel prototype (spec's glossary:
	// "used for Bessel-like filters where bilinear pre-warping is
	// inappropriate"), which is why the Bessel designer requests it.
	methodMatchedZ
)

// prototypeFunc returns the normalized (cutoff at 1 rad/s) analog poles
// and any finite zeros of an order-N lowpass prototype. Most prototypes
// (Butterworth, Chebyshev I, Bessel) are all-pole and return nil zeros;
// Chebyshev II returns finite zeros on the imaginary axis: as many as
// poles for even order, one fewer for odd order.
type prototypeFunc func(order int, rippleDB float64) (poles, zeros []complex128, err error)

// conjugateTol mirrors the teacher's internal/polyroot tolerance for
// deciding whether a complex value is "close enough" to real or to another
// value's conjugate to accept as numerical noise.
const conjugateTol = 1e-7

func normalizedFreq(hz, sampleRate float64) (float64, error) {
	if hz <= 0 {
		return 0, bioerr.Arguments(0, "design: cutoff frequency must be positive, got %v", hz)
	}

	fn := hz / sampleRate
	if fn <= 0 || fn >= 0.5 {
		return 0, bioerr.Arguments(0, "design: normalized cutoff %v must lie in (0, 0.5)", fn)
	}

	return fn, nil
}

// warpedOmega returns the pre-warped analog angular cutoff for the
// bilinear transform: fw = tan(pi*fn)/pi, omega = 2*pi*fw.
func warpedOmega(fn float64) float64 {
	return 2 * math.Tan(math.Pi*fn)
}

// rawOmega returns the unwarped analog angular cutoff used ahead of a
// matched-Z mapping.
func rawOmega(fn float64) float64 {
	return 2 * math.Pi * fn
}

func omegaFor(method zMethod, fn float64) float64 {
	if method == methodBilinear {
		return warpedOmega(fn)
	}

	return rawOmega(fn)
}

// transformLowPass scales the prototype's poles and zeros from unit
// cutoff to omega1.
func transformLowPass(poles, zeros []complex128, omega1 float64) (newPoles, newZeros []complex128) {
	w := complex(omega1, 0)

	newPoles = make([]complex128, len(poles))
	for i, p := range poles {
		newPoles[i] = p * w
	}

	newZeros = make([]complex128, len(zeros))
	for i, z := range zeros {
		newZeros[i] = z * w
	}

	return newPoles, newZeros
}

// transformHighPass maps s -> omega1/s. Finite zeros map the same way;
// every pole "at infinity" in the prototype (poleCount - len(zeros) of
// them) becomes a zero at the origin.
func transformHighPass(poles, zeros []complex128, omega1 float64) (newPoles, newZeros []complex128) {
	w := complex(omega1, 0)

	newPoles = make([]complex128, len(poles))
	for i, p := range poles {
		newPoles[i] = w / p
	}

	newZeros = make([]complex128, 0, len(poles))
	for _, z := range zeros {
		newZeros = append(newZeros, w/z)
	}

	for len(newZeros) < len(poles) {
		newZeros = append(newZeros, 0)
	}

	return newPoles, newZeros
}

// bandEdgeSplit returns the t-split pole pair for a single prototype pole
// p given the "half-bandwidth-adjusted" value hba, per spec §4.3.1's
// band-pass/band-stop transform: t = sqrt(1 - (omega0/hba)^2); poles are
// hba*(t+1) and hba*(1-t).
func bandEdgeSplit(hba complex128, omega0 float64) (complex128, complex128) {
	ratio := complex(omega0, 0) / hba
	t := cmplx.Sqrt(1 - ratio*ratio)

	return hba * (t + 1), hba * (1 - t)
}

// transformBandPass doubles each prototype pole into a conjugate-ish pair
// straddling the passband; it produces no finite s-plane zeros (spec
// §4.3.1 states this plainly, independent of whether the prototype itself
// carried zeros — a deliberate simplification recorded in DESIGN.md).
func transformBandPass(poles []complex128, omega0, bandwidth float64) []complex128 {
	out := make([]complex128, 0, 2*len(poles))

	for _, p := range poles {
		hba := p * complex(bandwidth/2, 0)
		a, b := bandEdgeSplit(hba, omega0)
		out = append(out, a, b)
	}

	return out
}

// transformBandStop doubles each prototype pole and places N copies of
// each of +/- j*omega0 as s-plane zeros, where N is the prototype's pole
// count (spec §4.3.1).
func transformBandStop(poles []complex128, omega0, bandwidth float64) (newPoles, newZeros []complex128) {
	newPoles = make([]complex128, 0, 2*len(poles))

	for _, p := range poles {
		hba := complex(bandwidth/2, 0) / p
		a, b := bandEdgeSplit(hba, omega0)
		newPoles = append(newPoles, a, b)
	}

	newZeros = make([]complex128, 0, 2*len(poles))
	for range poles {
		newZeros = append(newZeros, complex(0, omega0))
	}

	for range poles {
		newZeros = append(newZeros, complex(0, -omega0))
	}

	return newPoles, newZeros
}

func mapToZ(values []complex128, method zMethod) []complex128 {
	out := make([]complex128, len(values))

	for i, s := range values {
		if method == methodBilinear {
			out[i] = (s + 2) / (2 - s)
		} else {
			out[i] = cmplx.Exp(s)
		}
	}

	return out
}

// padBilinearZeros appends a z=-1 zero for every prototype pole that had
// no corresponding finite s-plane zero, matching the bilinear transform's
// mapping of s=infinity to z=-1. Only the bilinear method needs this; the
// matched-Z mapping of an all-pole prototype stays all-pole.
func padBilinearZeros(zZeros []complex128, poleCount int) []complex128 {
	out := append([]complex128(nil), zZeros...)
	for len(out) < poleCount {
		out = append(out, complex(-1, 0))
	}

	return out
}

// checkConjugateClosed fails with Arithmetic unless every non-real value
// in the set has a matching conjugate partner, i.e. the set describes a
// real-valued transfer function once expanded.
func checkConjugateClosed(values []complex128) error {
	used := make([]bool, len(values))

	for i, v := range values {
		if used[i] {
			continue
		}

		if math.Abs(imag(v)) <= conjugateTol {
			used[i] = true

			continue
		}

		found := false

		for j := i + 1; j < len(values); j++ {
			if used[j] {
				continue
			}

			if numeric.IsConjugate(v, values[j], conjugateTol) {
				used[i], used[j] = true, true
				found = true

				break
			}
		}

		if !found {
			return bioerr.Arithmetic("design: pole/zero set is not closed under conjugation at %v", v)
		}
	}

	return nil
}

func extractRealCoeffs(c []complex128) ([]float64, error) {
	out := make([]float64, len(c))

	for i, v := range c {
		re, ok := numeric.RealPart(v)
		if !ok {
			return nil, bioerr.Arithmetic("design: coefficient %v has non-negligible imaginary part", v)
		}

		out[i] = re
	}

	return out, nil
}

func gainAt(top, bottom []float64, z complex128) (float64, error) {
	v, err := poly.EvaluateRational(poly.RationalFraction{Top: top, Bottom: bottom}, z)
	if err != nil {
		return 0, err
	}

	return cmplx.Abs(v), nil
}

// referenceGain computes the normalization gain per spec §4.3.1 step 6:
// unity response at DC for lowpass, at Nyquist for highpass, at band
// centre for bandpass, and the geometric mean of the DC/Nyquist responses
// for bandstop.
func referenceGain(shape Shape, top, bottom []float64, fn1, fn2 float64) (float64, error) {
	switch shape {
	case ShapeLowPass:
		return gainAt(top, bottom, complex(1, 0))
	case ShapeHighPass:
		return gainAt(top, bottom, complex(-1, 0))
	case ShapeBandPass:
		theta := 2 * math.Pi * (fn1 + fn2) / 2
		return gainAt(top, bottom, numeric.ExpJ(theta))
	case ShapeBandStop:
		g1, err := gainAt(top, bottom, complex(1, 0))
		if err != nil {
			return 0, err
		}

		g2, err := gainAt(top, bottom, complex(-1, 0))
		if err != nil {
			return 0, err
		}

		return math.Sqrt(g1 * g2), nil
	default:
		return 0, bioerr.Internal(0, "design: no reference gain defined for shape %s", shape)
	}
}

// finalizeCoefficients runs spec §4.3.1 steps 5-7: expand the z-plane
// pole/zero sets into polynomial coefficients, extract the real-valued
// transfer function, normalize A[0]=1, and scale the numerator so the
// response is unity at the shape's reference frequency.
func finalizeCoefficients(shape Shape, zPoles, zZeros []complex128, fn1, fn2 float64) (stream.IIRCoefficients, error) {
	if err := checkConjugateClosed(zPoles); err != nil {
		return stream.IIRCoefficients{}, err
	}

	if err := checkConjugateClosed(zZeros); err != nil {
		return stream.IIRCoefficients{}, err
	}

	topC := poly.Expand(zZeros)
	botC := poly.Expand(zPoles)

	topRaw, err := extractRealCoeffs(topC)
	if err != nil {
		return stream.IIRCoefficients{}, err
	}

	botRaw, err := extractRealCoeffs(botC)
	if err != nil {
		return stream.IIRCoefficients{}, err
	}

	if botRaw[0] == 0 {
		return stream.IIRCoefficients{}, bioerr.Arithmetic("design: denominator leading coefficient is zero")
	}

	gain, err := referenceGain(shape, topRaw, botRaw, fn1, fn2)
	if err != nil {
		return stream.IIRCoefficients{}, err
	}

	if gain == 0 {
		return stream.IIRCoefficients{}, bioerr.Arithmetic("design: reference gain is zero, cannot normalize")
	}

	bottom0 := botRaw[0]

	a := make([]float64, len(botRaw))
	for i, v := range botRaw {
		a[i] = v / bottom0
	}

	b := make([]float64, len(topRaw))
	for i, v := range topRaw {
		b[i] = v / (bottom0 * gain)
	}

	return stream.IIRCoefficients{A: a, B: b}, nil
}

// synthesize runs the full Fisher pipeline shared by the Butterworth,
// Chebyshev I/II and Bessel designers (spec §4.3.1): prototype placement,
// frequency transform, s->z mapping, and coefficient finalization.
func synthesize(method zMethod, prototype prototypeFunc, settings Settings, shape Shape, freqsHz ...float64) (stream.Filter, error) {
	poles, zeros, err := prototype(settings.Order, settings.RippleDB)
	if err != nil {
		return nil, err
	}

	switch shape {
	case ShapeLowPass, ShapeHighPass:
		fn, err := normalizedFreq(freqsHz[0], settings.SampleRate)
		if err != nil {
			return nil, err
		}

		omega1 := omegaFor(method, fn)

		var sPoles, sZeros []complex128
		if shape == ShapeLowPass {
			sPoles, sZeros = transformLowPass(poles, zeros, omega1)
		} else {
			sPoles, sZeros = transformHighPass(poles, zeros, omega1)
		}

		zPoles := mapToZ(sPoles, method)
		zZeros := mapToZ(sZeros, method)

		if method == methodBilinear {
			zZeros = padBilinearZeros(zZeros, len(zPoles))
		}

		coeffs, err := finalizeCoefficients(shape, zPoles, zZeros, fn, fn)
		if err != nil {
			return nil, err
		}

		return stream.NewGeneralIIR(coeffs)

	case ShapeBandPass, ShapeBandStop:
		fn1, err := normalizedFreq(freqsHz[0], settings.SampleRate)
		if err != nil {
			return nil, err
		}

		fn2, err := normalizedFreq(freqsHz[1], settings.SampleRate)
		if err != nil {
			return nil, err
		}

		if fn1 >= fn2 {
			return nil, bioerr.Arguments(0, "design: band edges must satisfy lo < hi, got %v >= %v", freqsHz[0], freqsHz[1])
		}

		omega1 := omegaFor(method, fn1)
		omega2 := omegaFor(method, fn2)
		omega0 := math.Sqrt(omega1 * omega2)
		bandwidth := omega2 - omega1

		var sPoles, sZeros []complex128
		if shape == ShapeBandPass {
			sPoles = transformBandPass(poles, omega0, bandwidth)
		} else {
			sPoles, sZeros = transformBandStop(poles, omega0, bandwidth)
		}

		zPoles := mapToZ(sPoles, method)
		zZeros := mapToZ(sZeros, method)

		if method == methodBilinear {
			zZeros = padBilinearZeros(zZeros, len(zPoles))
		}

		coeffs, err := finalizeCoefficients(shape, zPoles, zZeros, fn1, fn2)
		if err != nil {
			return nil, err
		}

		return stream.NewGeneralIIR(coeffs)

	default:
		return nil, bioerr.Internal(0, "design: fisher pipeline invoked for unsupported shape %s", shape)
	}
}

// Command filterinfo designs a filter from the command line and prints
// its measured DC/Nyquist/reference-frequency gain.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -designer butterworth -shape lowpass -rate 1000 -cutoff 50
//	filterinfo -designer rbj -shape peak -rate 1000 -cutoff 100 -q 2 -gaindb 6
//	filterinfo -designer chebyshev2 -shape highpass -rate 2000 -order 4 -cutoff 300 -ripple 40
//	filterinfo -list
//
// -ripple takes a positive dB value; zero and negative values are rejected.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/signalkit/biosig-dsp/filter/design"
	"github.com/signalkit/biosig-dsp/filter/stream"
	"github.com/signalkit/biosig-dsp/generator"
)

var designers = map[string]design.FilterDesigner{
	"butterworth": design.NewButterworth(),
	"chebyshev1":  design.NewChebyshev1(),
	"chebyshev2":  design.NewChebyshev2(),
	"bessel":      design.NewBessel(),
	"rbj":         design.NewRBJCookbook(),
	"sgolay":      design.NewSavitzkyGolay(),
	"median":      design.NewMedianDesigner(),
}

var shapes = map[string]design.Shape{
	"allpass":   design.ShapeAllPass,
	"lowpass":   design.ShapeLowPass,
	"highpass":  design.ShapeHighPass,
	"bandstop":  design.ShapeBandStop,
	"bandpass":  design.ShapeBandPass,
	"lowshelf":  design.ShapeLowShelf,
	"highshelf": design.ShapeHighShelf,
	"notch":     design.ShapeNotch,
	"peak":      design.ShapePeak,
	"other":     design.ShapeOther,
}

func main() {
	designerName := flag.String("designer", "butterworth", "designer: butterworth, chebyshev1, chebyshev2, bessel, rbj, sgolay, median")
	shapeName := flag.String("shape", "lowpass", "shape: allpass, lowpass, highpass, bandstop, bandpass, lowshelf, highshelf, notch, peak, other")
	rate := flag.Float64("rate", 1000, "sample rate in Hz")
	order := flag.Int("order", 2, "filter order (Butterworth/Chebyshev/Bessel/Savitzky-Golay)")
	ripple := flag.Float64("ripple", 0.5, "ripple in dB (Chebyshev I/II)")
	q := flag.Float64("q", 0.7071067811865476, "quality factor (RBJ)")
	gain := flag.Float64("gaindb", 0, "gain in dB (RBJ shelf/peak)")
	window := flag.Int("window", 5, "window size in samples (median/Savitzky-Golay)")
	cutoff := flag.Float64("cutoff", 100, "cutoff/center frequency in Hz")
	cutoff2 := flag.Float64("cutoff2", 200, "second edge frequency in Hz (bandpass/bandstop)")
	list := flag.Bool("list", false, "list available designers and shapes")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a filter and prints its measured DC, Nyquist and reference-frequency gain.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -designer butterworth -shape lowpass -rate 1000 -cutoff 50\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -designer rbj -shape peak -rate 1000 -cutoff 100 -q 2 -gaindb 6\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	designer, ok := designers[*designerName]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown designer %q (use -list)\n", *designerName)
		os.Exit(1)
	}

	shape, ok := shapes[*shapeName]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown shape %q (use -list)\n", *shapeName)
		os.Exit(1)
	}

	settings, err := design.NewSettings(*rate,
		design.WithOrder(*order),
		design.WithRippleDB(*ripple),
		design.WithQ(*q),
		design.WithGainDB(*gain),
		design.WithWindow(*window),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f, err := build(designer, shape, settings, *cutoff, *cutoff2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printAnalysis(f, shape, *rate, *cutoff, *cutoff2)
}

func build(d design.FilterDesigner, shape design.Shape, s design.Settings, cutoff, cutoff2 float64) (stream.Filter, error) {
	switch shape {
	case design.ShapeLowPass:
		return d.CreateLowPass(s, cutoff)
	case design.ShapeHighPass:
		return d.CreateHighPass(s, cutoff)
	case design.ShapeBandPass:
		return d.CreateBandPass(s, cutoff, cutoff2)
	case design.ShapeBandStop:
		return d.CreateBandStop(s, cutoff, cutoff2)
	case design.ShapeNotch:
		return d.CreateNotch(s, cutoff)
	case design.ShapeAllPass:
		return d.CreateAllPass(s, cutoff)
	case design.ShapeLowShelf:
		return d.CreateLowShelf(s, cutoff)
	case design.ShapeHighShelf:
		return d.CreateHighShelf(s, cutoff)
	case design.ShapePeak:
		return d.CreatePeak(s, cutoff)
	default:
		return d.CreateOther(s)
	}
}

func printList() {
	var names []string
	for n := range designers {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Println("Designers:")
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}

	names = names[:0]
	for n := range shapes {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Println("Shapes:")
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
}

// measureGain drives gen through f for several seconds' worth of
// samples, discards the first half as settling time, and returns the
// ratio of output RMS to input RMS over the remainder.
func measureGain(f stream.Filter, gen generator.Generator, sampleRate float64) float64 {
	total := int(sampleRate) * 4
	settle := total / 2

	var inSumSq, outSumSq float64
	for i := 0; i < total; i++ {
		x := gen.Next()
		y := f.Process(x)

		if i >= settle {
			inSumSq += x * x
			outSumSq += y * y
		}
	}

	if inSumSq == 0 {
		return 0
	}

	return math.Sqrt(outSumSq / inSumSq)
}

// dcGain measures the filter's response to a constant unit input.
func dcGain(f stream.Filter, sampleRate float64) (float64, error) {
	gen, err := generator.NewWaveformDC(sampleRate, 1, 0)
	if err != nil {
		return 0, err
	}

	return measureGain(f, gen, sampleRate), nil
}

// sineGain measures the filter's response to a unit-amplitude sine at
// freqHz.
func sineGain(f stream.Filter, freqHz, sampleRate float64) (float64, error) {
	gen, err := generator.NewWaveformSine(sampleRate, 1, 0, freqHz, 0)
	if err != nil {
		return 0, err
	}

	return measureGain(f, gen, sampleRate), nil
}

func printAnalysis(f stream.Filter, shape design.Shape, rate, cutoff, cutoff2 float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Metric\tFrequency [Hz]\tGain\n")
	fmt.Fprintf(tw, "------\t--------------\t----\n")

	reference := referenceFrequency(shape, cutoff, cutoff2)

	if g, err := dcGain(f, rate); err == nil {
		fmt.Fprintf(tw, "DC\t%.2f\t%.6f\n", 0.0, g)
	}

	if g, err := sineGain(f, reference, rate); err == nil {
		fmt.Fprintf(tw, "Reference\t%.2f\t%.6f\n", reference, g)
	}

	nyquist := rate / 2 * 0.999
	if g, err := sineGain(f, nyquist, rate); err == nil {
		fmt.Fprintf(tw, "Near-Nyquist\t%.2f\t%.6f\n", nyquist, g)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func referenceFrequency(shape design.Shape, cutoff, cutoff2 float64) float64 {
	switch shape {
	case design.ShapeBandPass, design.ShapeBandStop:
		return math.Sqrt(cutoff * cutoff2)
	default:
		return cutoff
	}
}

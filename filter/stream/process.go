package stream

// ProcessArray runs every sample in in through f in order and returns a
// newly allocated output slice, matching the external surface's
// processor.process_array convenience (spec §6). Grounded on the
// teacher's Chain.ProcessBlock / Filter.ProcessBlockTo helpers, reduced to
// the plain per-sample loop since no SIMD kernel is in scope here (see
// DESIGN.md).
func ProcessArray(f Filter, in []float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = f.Process(x)
	}

	return out
}

// ProcessInPlace runs every sample in buf through f, overwriting buf with
// the filtered output (processor.process_in_place, spec §6).
func ProcessInPlace(f Filter, buf []float64) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

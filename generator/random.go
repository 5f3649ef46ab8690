package generator

import (
	"math"
	"math/rand"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// UniformRandomGenerator draws samples uniformly from [0,1], grounded on
// the teacher's seeded math/rand.Rand usage in dsp/signal/generate.go
// (WhiteNoise/PinkNoise) for deterministic, reproducible streams.
type UniformRandomGenerator struct {
	seed int64
	rng  *rand.Rand
}

// NewUniformRandomGenerator builds a UniformRandomGenerator seeded
// deterministically from seed.
func NewUniformRandomGenerator(seed int64) *UniformRandomGenerator {
	return &UniformRandomGenerator{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniform sample in [0,1].
func (u *UniformRandomGenerator) Next() float64 {
	return u.rng.Float64()
}

// Reset re-seeds the source so the stream replays from the start (spec
// §4.4 allows reset to be a no-op; re-seeding is the more useful
// behavior and stays within that allowance).
func (u *UniformRandomGenerator) Reset() {
	u.rng = rand.New(rand.NewSource(u.seed))
}

// GaussianGenerator draws normally-distributed samples via the Marsaglia
// polar method (spec §4.4), scaled by Mean/Std.
type GaussianGenerator struct {
	seed int64
	rng  *rand.Rand
	mean float64
	std  float64
}

// NewGaussianGenerator builds a GaussianGenerator. mean must be finite;
// std must be finite and >= 0.
func NewGaussianGenerator(seed int64, mean, std float64) (*GaussianGenerator, error) {
	if math.IsInf(mean, 0) || math.IsNaN(mean) {
		return nil, bioerr.Arguments(0, "generator: mean must be finite, got %v", mean)
	}

	if std < 0 || math.IsInf(std, 0) || math.IsNaN(std) {
		return nil, bioerr.Arguments(0, "generator: std must be finite and >= 0, got %v", std)
	}

	return &GaussianGenerator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		mean: mean,
		std:  std,
	}, nil
}

// Next draws v1, v2 uniform in [-1,1], accepts when r=v1^2+v2^2 lies in
// (0,1) and returns mean + std*v1*sqrt(-2*ln(r)/r); otherwise redraws.
func (g *GaussianGenerator) Next() float64 {
	for {
		v1 := g.rng.Float64()*2 - 1
		v2 := g.rng.Float64()*2 - 1
		r := v1*v1 + v2*v2

		if r > 0 && r < 1 {
			x := v1 * math.Sqrt(-2*math.Log(r)/r)
			return g.mean + g.std*x
		}
	}
}

// Reset re-seeds the source so the stream replays from the start.
func (g *GaussianGenerator) Reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
}

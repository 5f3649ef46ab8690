package stream

// Cascade chains an ordered sequence of filters, feeding each stage's
// output into the next (spec §4.2, §5: "the composed filter yields
// fₙ∘…∘f₁"). A disabled Cascade short-circuits to identity without
// touching the stage filters' state.
type Cascade struct {
	base

	stages []Filter
}

// NewCascade builds a Cascade over the given stages, processed in order.
func NewCascade(stages ...Filter) *Cascade {
	return &Cascade{base: newBase(), stages: stages}
}

// Process runs x through every stage in order.
func (c *Cascade) Process(x float64) float64 {
	if !c.enabled {
		return x
	}

	for _, stage := range c.stages {
		x = stage.Process(x)
	}

	return x
}

// Reset resets every stage's history.
func (c *Cascade) Reset() {
	for _, stage := range c.stages {
		stage.Reset()
	}
}

// Stages returns the ordered stage list.
func (c *Cascade) Stages() []Filter {
	return c.stages
}

// Append adds a stage to the end of the cascade.
func (c *Cascade) Append(stage Filter) {
	c.stages = append(c.stages, stage)
}

package metrics

import "github.com/shift-lab/shiftsim/internal/dynamo"

// BetaSource is implemented by kinetic models that can report their
// approach-to-equilibrium ratio for a given state.
type BetaSource interface {
	Beta(x dynamo.State) float64
}

// Approach reports beta at the latest observed point: how close the
// outlet composition sits to equilibrium (1 means fully equilibrated).
type Approach struct {
	name    string
	src     BetaSource
	last    float64
	samples int
}

func NewApproach(src BetaSource) *Approach {
	return &Approach{name: "approach", src: src}
}

func (a *Approach) Name() string { return a.name }

func (a *Approach) Observe(x dynamo.State, w float64) {
	a.last = a.src.Beta(x)
	a.samples++
}

func (a *Approach) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.last
}

func (a *Approach) Reset() {
	a.last = 0
	a.samples = 0
}

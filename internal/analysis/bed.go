// Package analysis post-processes stored flow profiles: reaction rate
// along the bed, approach to equilibrium, and how much of the catalyst
// actually does the work.
package analysis

import (
	"fmt"

	"github.com/shift-lab/shiftsim/internal/dynamo"
)

// Kinetics is the slice of a reactor model the profile diagnostics
// need. Both shift models implement it.
type Kinetics interface {
	Rate(x dynamo.State) float64
	Beta(x dynamo.State) float64
	Conversion(x dynamo.State) float64
}

// BedProfile holds per-point diagnostics recomputed from a stored run.
type BedProfile struct {
	Masses     []float64
	Rates      []float64
	Betas      []float64
	Conversion []float64
}

// Profile evaluates the kinetics at every stored grid point.
func Profile(model Kinetics, states []dynamo.State, masses []float64) (*BedProfile, error) {
	if len(states) == 0 || len(states) != len(masses) {
		return nil, fmt.Errorf("analysis: profile is empty or misaligned")
	}

	p := &BedProfile{
		Masses:     masses,
		Rates:      make([]float64, len(states)),
		Betas:      make([]float64, len(states)),
		Conversion: make([]float64, len(states)),
	}
	for i, x := range states {
		p.Rates[i] = model.Rate(x)
		p.Betas[i] = model.Beta(x)
		p.Conversion[i] = model.Conversion(x)
	}
	return p, nil
}

// MassAtConversion returns the catalyst mass at which the bed first
// reaches the given fraction of its outlet conversion, interpolating
// between grid points. Fractions outside the achieved range report the
// full bed.
func (p *BedProfile) MassAtConversion(fraction float64) float64 {
	target := fraction * p.Conversion[len(p.Conversion)-1]

	for i := 1; i < len(p.Conversion); i++ {
		if p.Conversion[i] < target {
			continue
		}
		lo, hi := p.Conversion[i-1], p.Conversion[i]
		if hi == lo {
			return p.Masses[i]
		}
		frac := (target - lo) / (hi - lo)
		return p.Masses[i-1] + frac*(p.Masses[i]-p.Masses[i-1])
	}
	return p.Masses[len(p.Masses)-1]
}

// Utilization is the fraction of the bed doing 95% of the conversion.
// Values near 1 mean the whole bed works; small values mean the back
// of the bed sits at equilibrium.
func (p *BedProfile) Utilization() float64 {
	total := p.Masses[len(p.Masses)-1] - p.Masses[0]
	if total <= 0 {
		return 0
	}
	return (p.MassAtConversion(0.95) - p.Masses[0]) / total
}

// PeakRate returns the largest reaction rate along the bed and the
// catalyst mass where it occurs.
func (p *BedProfile) PeakRate() (rate, mass float64) {
	rate = p.Rates[0]
	mass = p.Masses[0]
	for i := 1; i < len(p.Rates); i++ {
		if p.Rates[i] > rate {
			rate = p.Rates[i]
			mass = p.Masses[i]
		}
	}
	return rate, mass
}

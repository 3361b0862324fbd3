package dynamo

import (
	"fmt"
	"math"
)

// State is the vector of species molar flow rates, mol/s. Ordering is
// fixed by the model (for the shift reactors: CO, H2O, CO2, H2).
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is a kinetic model giving the derivative of each molar flow with
// respect to cumulative catalyst mass w. The shift models are autonomous
// in w, but the stepping interface carries it anyway.
type System interface {
	Derive(x State, w float64) State
	StateDim() int
}

// Inlet is implemented by models that carry their nominal feed.
type Inlet interface {
	InletFlow() State
}

type Integrator interface {
	Step(sys System, x State, w float64, dw float64) State
}

type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, w, dw, tol float64) (State, float64, error)
}

type Metric interface {
	Name() string
	Observe(x State, w float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, w float64)
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Config controls a single bed integration. The output grid has Points
// evenly spaced masses over [WMin, WMax]; the first grid point is the
// inlet itself.
type Config struct {
	WMin          float64
	WMax          float64
	Points        int
	Tolerance     float64
	MaxDW         float64
	MinDW         float64
	Adaptive      bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		WMin:          0,
		WMax:          3000,
		Points:        3000,
		Tolerance:     1e-6,
		MaxDW:         50,
		MinDW:         1e-8,
		Adaptive:      true,
		ValidateState: true,
	}
}

// GridSpacing returns the distance between consecutive output points.
func (c Config) GridSpacing() float64 {
	if c.Points < 2 {
		return c.WMax - c.WMin
	}
	return (c.WMax - c.WMin) / float64(c.Points-1)
}

// Result holds one flow profile: States[i] is the state at Masses[i].
type Result struct {
	States     []State
	Masses     []float64
	Metrics    map[string]float64
	StepsTaken int
}

type SimError struct {
	Mass    float64
	Point   int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("point %d (w=%.4f kg): %s", e.Point, e.Mass, e.Message)
}

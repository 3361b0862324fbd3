package integrators

import (
	"math"
	"testing"

	"github.com/shift-lab/shiftsim/internal/dynamo"
)

// relaxSystem approaches a fixed point, dF/dW = r*(eq - F), mimicking a
// reversible reaction relaxing to equilibrium.
type relaxSystem struct {
	rate float64
	eq   float64
}

func (s *relaxSystem) StateDim() int { return 1 }

func (s *relaxSystem) Derive(x dynamo.State, w float64) dynamo.State {
	return dynamo.State{s.rate * (s.eq - x[0])}
}

func TestRK45_Step(t *testing.T) {
	integrator := NewRK45()
	sys := &relaxSystem{rate: 0.2, eq: 100.0}
	x := dynamo.State{10.0}

	dw := 0.1
	for i := 0; i < 1000; i++ {
		x = integrator.Step(sys, x, float64(i)*dw, dw)
	}

	if !x.IsValid() {
		t.Error("rk45 produced invalid state")
	}
	if math.Abs(x[0]-100.0) > 1e-6 {
		t.Errorf("rk45 did not relax to equilibrium: got %.8f", x[0])
	}
}

func TestRK45_Accuracy(t *testing.T) {
	integrator := NewRK45()
	sys := &decaySystem{lambda: 0.5}
	x := dynamo.State{1.0}

	dw := 0.1
	steps := 100
	for i := 0; i < steps; i++ {
		x = integrator.Step(sys, x, float64(i)*dw, dw)
	}

	expected := math.Exp(-0.5 * float64(steps) * dw)
	if math.Abs(x[0]-expected) > 1e-8 {
		t.Errorf("rk45 error too large: got %.12f, expected %.12f", x[0], expected)
	}
}

func TestRK45_AdaptiveStep(t *testing.T) {
	integrator := NewRK45()
	sys := &relaxSystem{rate: 0.2, eq: 100.0}
	x0 := dynamo.State{10.0}

	x, newDw, err := integrator.StepAdaptive(sys, x0, 0, 1.0, 1e-8)

	if err != nil {
		t.Errorf("StepAdaptive returned error: %v", err)
	}
	if !x.IsValid() {
		t.Error("StepAdaptive produced invalid state")
	}
	if newDw <= 0 {
		t.Errorf("StepAdaptive returned invalid dw: %f", newDw)
	}
}

func TestRK45_SuggestsSmallerStepWhenRough(t *testing.T) {
	integrator := NewRK45()
	sys := &relaxSystem{rate: 5.0, eq: 100.0}
	x0 := dynamo.State{1.0}

	_, dwRough, err := integrator.StepAdaptive(sys, x0, 0, 10.0, 1e-12)
	if err != nil {
		t.Fatalf("StepAdaptive returned error: %v", err)
	}

	if dwRough >= 10.0 {
		t.Errorf("expected shrunk step under tight tolerance, got %f", dwRough)
	}
}

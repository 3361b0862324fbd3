package integrators

import (
	"testing"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/reactor"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	model := reactor.NewLTS()
	x := model.InletFlow()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(model, x, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	model := reactor.NewLTS()
	x := model.InletFlow()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(model, x, 0, 0.01)
	}
}

func BenchmarkRK45(b *testing.B) {
	integrator := NewRK45()
	model := reactor.NewLTS()
	x := model.InletFlow()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(model, x, 0, 0.01)
	}
}

func BenchmarkRK45Adaptive(b *testing.B) {
	integrator := NewRK45()
	model := reactor.NewLTS()
	x := model.InletFlow()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		x, _, err = integrator.StepAdaptive(model, x, 0, 0.01, 1e-6)
		if err != nil {
			b.Fatal(err)
		}
	}
}

var benchSink dynamo.State

func BenchmarkLTSDerive(b *testing.B) {
	model := reactor.NewLTS()
	x := model.InletFlow()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = model.Derive(x, 0)
	}
}

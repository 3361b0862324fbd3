package integrators

import "github.com/shift-lab/shiftsim/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, w float64, dw float64) dynamo.State {
	dx := sys.Derive(x, w)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dw*dx[i]
	}
	return result
}

package integrators

import "github.com/shift-lab/shiftsim/internal/dynamo"

type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	scratch        dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dynamo.State, n)
		r.k2 = make(dynamo.State, n)
		r.k3 = make(dynamo.State, n)
		r.k4 = make(dynamo.State, n)
		r.scratch = make(dynamo.State, n)
	}
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, w, dw float64) dynamo.State {
	n := len(x)
	r.ensureScratch(n)

	k1 := sys.Derive(x, w)
	copy(r.k1, k1)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dw*0.5*r.k1[i]
	}
	k2 := sys.Derive(r.scratch, w+dw*0.5)
	copy(r.k2, k2)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dw*0.5*r.k2[i]
	}
	k3 := sys.Derive(r.scratch, w+dw*0.5)
	copy(r.k3, k3)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dw*r.k3[i]
	}
	k4 := sys.Derive(r.scratch, w+dw)
	copy(r.k4, k4)

	result := make(dynamo.State, n)
	dw6 := dw / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dw6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}

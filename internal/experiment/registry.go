package experiment

import (
	"fmt"
	"sort"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/integrators"
	"github.com/shift-lab/shiftsim/internal/metrics"
	"github.com/shift-lab/shiftsim/internal/reactor"
)

// Registry maps reactor and integrator names to constructors.
type Registry struct {
	reactors    map[string]func() dynamo.System
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		reactors:    make(map[string]func() dynamo.System),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.reactors["lts"] = func() dynamo.System { return reactor.NewLTS() }
	r.reactors["hts"] = func() dynamo.System { return reactor.NewHTS() }

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() dynamo.Integrator { return integrators.NewRK45() }

	return r
}

func (r *Registry) GetReactor(name string) (dynamo.System, error) {
	fn, ok := r.reactors[name]
	if !ok {
		return nil, fmt.Errorf("unknown reactor: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListReactors() []string {
	names := make([]string, 0, len(r.reactors))
	for name := range r.reactors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns the standard observation set for a bed run.
// The approach metric needs the model's own equilibrium state, so it is
// only attached when the model can report beta.
func (r *Registry) DefaultMetrics(sys dynamo.System) []dynamo.Metric {
	out := []dynamo.Metric{
		metrics.NewConversion(),
		metrics.NewTotalFlowDrift(),
	}
	if src, ok := sys.(metrics.BetaSource); ok {
		out = append(out, metrics.NewApproach(src))
	}
	return out
}

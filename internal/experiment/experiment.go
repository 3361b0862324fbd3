package experiment

import (
	"context"
	"fmt"

	"github.com/shift-lab/shiftsim/internal/dynamo"
)

// Config captures everything needed to reproduce one bed integration.
type Config struct {
	Reactor    string
	Integrator string
	InitState  []float64
	WMax       float64
	Points     int
	Tolerance  float64
	Params     map[string]float64
}

type Experiment struct {
	cfg       Config
	simulator *dynamo.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup wires the model and integrator, applying any operating-point
// overrides (temperature, pressure, ...) before the run.
func (e *Experiment) Setup(sys dynamo.System, integrator dynamo.Integrator, obs []dynamo.Metric) error {
	if tunable, ok := sys.(dynamo.Configurable); ok {
		for name, value := range e.cfg.Params {
			if err := tunable.SetParam(name, value); err != nil {
				return fmt.Errorf("apply param %s: %w", name, err)
			}
		}
	} else if len(e.cfg.Params) > 0 {
		return fmt.Errorf("reactor %s does not accept parameters", e.cfg.Reactor)
	}

	e.simulator = dynamo.New(sys, integrator)
	for _, m := range obs {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	x0 := make(dynamo.State, len(e.cfg.InitState))
	copy(x0, e.cfg.InitState)

	simCfg := dynamo.DefaultConfig()
	simCfg.WMax = e.cfg.WMax
	simCfg.Points = e.cfg.Points
	if e.cfg.Tolerance > 0 {
		simCfg.Tolerance = e.cfg.Tolerance
	}

	return e.simulator.Run(ctx, x0, simCfg)
}

// GetSimulator returns the underlying simulator for adding observers.
func (e *Experiment) GetSimulator() *dynamo.Simulator {
	return e.simulator
}

package dynamo

import (
	"context"
	"fmt"
)

// Simulator advances a kinetic model across the catalyst-mass domain,
// producing one state per output grid point.
type Simulator struct {
	sys        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates from the inlet state across [WMin, WMax]. The first
// recorded state is x0 itself. Any numerical failure aborts the run:
// the partial profile is returned together with the error, and callers
// must not present it as a completed result.
func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(x0, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		States:  make([]State, 0, cfg.Points),
		Masses:  make([]float64, 0, cfg.Points),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	w := cfg.WMin
	spacing := cfg.GridSpacing()

	s.record(result, x, w)

	dw := spacing
	if cfg.MaxDW > 0 && dw > cfg.MaxDW {
		dw = cfg.MaxDW
	}

	adaptive, isAdaptive := s.integrator.(AdaptiveIntegrator)
	useAdaptive := cfg.Adaptive && isAdaptive

	for i := 1; i < cfg.Points; i++ {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w: %v", ErrContextCanceled, ctx.Err())
		default:
		}

		target := cfg.WMin + spacing*float64(i)

		for w < target {
			h := target - w
			if useAdaptive && dw < h {
				h = dw
			}

			var newX State
			if useAdaptive {
				stepped, dwNext, err := adaptive.StepAdaptive(s.sys, x, w, h, cfg.Tolerance)
				if err != nil {
					return result, &SimulationError{Point: i, Mass: w, State: x, Wrapped: err}
				}
				newX = stepped
				dw = clampStep(dwNext, cfg.MinDW, cfg.MaxDW)
			} else {
				newX = s.integrator.Step(s.sys, x, w, h)
			}

			if cfg.ValidateState && !newX.IsValid() {
				return result, &SimulationError{Point: i, Mass: w, State: x, Wrapped: ErrInvalidState}
			}
			if useAdaptive && dw <= cfg.MinDW && cfg.MinDW > 0 && h < target-w {
				return result, &SimulationError{Point: i, Mass: w, State: x, Wrapped: ErrStepTooSmall}
			}

			x = newX
			w += h
			result.StepsTaken++
		}

		// land exactly on the grid point, no accumulated drift
		w = target
		s.record(result, x, w)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) record(result *Result, x State, w float64) {
	for _, m := range s.metrics {
		m.Observe(x, w)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, w)
	}
	result.States = append(result.States, x.Clone())
	result.Masses = append(result.Masses, w)
}

func (s *Simulator) validateConfig(x0 State, cfg Config) error {
	if len(x0) != s.sys.StateDim() {
		return fmt.Errorf("%w: got %d flows, model wants %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}
	if cfg.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", cfg.Points)
	}
	if cfg.WMax <= cfg.WMin {
		return fmt.Errorf("w_max must exceed w_min, got [%f, %f]", cfg.WMin, cfg.WMax)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive for adaptive stepping")
	}
	return nil
}

func clampStep(dw, min, max float64) float64 {
	if max > 0 && dw > max {
		return max
	}
	if min > 0 && dw < min {
		return min
	}
	return dw
}

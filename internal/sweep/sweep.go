// Package sweep evaluates a kinetic model over a grid of operating
// points, reporting the best-performing case by a chosen metric.
package sweep

import (
	"context"
	"math"
	"sync"

	"github.com/shift-lab/shiftsim/internal/experiment"
)

// Case is one evaluated operating point.
type Case struct {
	Params map[string]float64
	Value  float64
	Err    error
}

// GridSweep enumerates the cartesian product of per-parameter value
// lists. Each case runs its own experiment, so cases are independent
// and evaluated concurrently.
type GridSweep struct {
	paramNames []string
	values     [][]float64
}

func NewGridSweep(params []string, values [][]float64) *GridSweep {
	return &GridSweep{paramNames: params, values: values}
}

// Range builds an inclusive evenly spaced value list for one parameter.
func Range(from, to float64, steps int) []float64 {
	if steps < 2 {
		return []float64{from}
	}
	out := make([]float64, steps)
	span := (to - from) / float64(steps-1)
	for i := range out {
		out[i] = from + span*float64(i)
	}
	return out
}

// Run evaluates every case and returns them in enumeration order plus
// the index of the case with the largest metric value. Failed cases
// carry their error and never win.
func (g *GridSweep) Run(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	metricName string,
) ([]Case, int) {
	cases := g.enumerate()

	var wg sync.WaitGroup
	for i := range cases {
		wg.Add(1)
		go func(c *Case) {
			defer wg.Done()

			exp, err := buildExperiment(c.Params)
			if err != nil {
				c.Err = err
				return
			}

			result, err := exp.Run(ctx)
			if err != nil {
				c.Err = err
				return
			}
			c.Value = result.Metrics[metricName]
		}(&cases[i])
	}
	wg.Wait()

	best := -1
	bestValue := math.Inf(-1)
	for i, c := range cases {
		if c.Err == nil && c.Value > bestValue {
			best = i
			bestValue = c.Value
		}
	}
	return cases, best
}

func (g *GridSweep) enumerate() []Case {
	total := 1
	for _, vals := range g.values {
		total *= len(vals)
	}

	cases := make([]Case, 0, total)
	g.recurse(0, make(map[string]float64), &cases)
	return cases
}

func (g *GridSweep) recurse(depth int, current map[string]float64, out *[]Case) {
	if depth == len(g.paramNames) {
		params := make(map[string]float64, len(current))
		for k, v := range current {
			params[k] = v
		}
		*out = append(*out, Case{Params: params})
		return
	}

	for _, val := range g.values[depth] {
		current[g.paramNames[depth]] = val
		g.recurse(depth+1, current, out)
	}
}

package metrics

import (
	"testing"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/reactor"
	"github.com/stretchr/testify/assert"
)

func TestConversion(t *testing.T) {
	m := NewConversion()

	m.Observe(dynamo.State{100, 200, 300, 400}, 0)
	assert.Equal(t, 0.0, m.Value(), "no conversion at the inlet")

	m.Observe(dynamo.State{50, 150, 350, 450}, 10)
	assert.InDelta(t, 0.5, m.Value(), 1e-12)

	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestTotalFlowDrift(t *testing.T) {
	m := NewTotalFlowDrift()

	m.Observe(dynamo.State{100, 200, 300, 400}, 0)
	assert.Equal(t, 0.0, m.Value())

	// conserved step: no drift
	m.Observe(dynamo.State{90, 190, 310, 410}, 1)
	assert.InDelta(t, 0.0, m.Value(), 1e-12)

	// lossy step: 1% of total gone
	m.Observe(dynamo.State{90, 190, 310, 400}, 2)
	assert.InDelta(t, 10.0/1000.0, m.Value(), 1e-12)
}

func TestApproach(t *testing.T) {
	model := reactor.NewLTS()
	m := NewApproach(model)

	assert.Equal(t, 0.0, m.Value(), "no observations yet")

	x := model.InletFlow()
	m.Observe(x, 0)
	assert.InDelta(t, model.Beta(x), m.Value(), 1e-15)
}

func TestMetricNames(t *testing.T) {
	assert.Equal(t, "conversion", NewConversion().Name())
	assert.Equal(t, "total_flow_drift", NewTotalFlowDrift().Name())
	assert.Equal(t, "approach", NewApproach(reactor.NewLTS()).Name())
}

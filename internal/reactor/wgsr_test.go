package reactor

import (
	"testing"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestLTSDerivedConstants(t *testing.T) {
	m := NewLTS()

	// Regression against the literature correlation evaluated at the
	// nominal operating point.
	assert.InDelta(t, 0.49105794250604334, m.RateConstant(), 1e-12)
	assert.InDelta(t, 131.37897566734108, m.EquilibriumConstant(), 1e-9)
}

func TestLTSInletRate(t *testing.T) {
	m := NewLTS()
	x := m.InletFlow()

	// The nominal feed is far below equilibrium, so the net rate is
	// forward (positive).
	assert.InDelta(t, 0.03862170046525056, m.Beta(x), 1e-12)
	assert.InDelta(t, 0.47363951830577194, m.Rate(x), 1e-10)
}

func TestLTSInletTotalFlow(t *testing.T) {
	m := NewLTS()
	assert.InDelta(t, 12352.9, floats.Sum(m.InletFlow()), 1e-9)
}

func TestLTSStoichiometry(t *testing.T) {
	m := NewLTS()

	states := []dynamo.State{
		m.InletFlow(),
		{100, 200, 300, 400},
		{2000, 3000, 1000, 4000},
	}

	for _, x := range states {
		dx := m.Derive(x, 0)
		require.Len(t, dx, NumSpecies)

		assert.Equal(t, dx[CO], dx[H2O], "CO and H2O must be consumed equally")
		assert.Equal(t, dx[CO2], dx[H2], "CO2 and H2 must be produced equally")
		assert.Equal(t, -dx[CO], dx[CO2], "production must mirror consumption")
	}
}

func TestLTSEquilibriumRateVanishes(t *testing.T) {
	m := NewLTS()

	// Construct flows whose reaction quotient equals Ke exactly, so
	// beta == 1 and the net rate must vanish.
	fCO, fH2O, fCO2 := 100.0, 200.0, 300.0
	fH2 := m.EquilibriumConstant() * fCO * fH2O / fCO2
	x := dynamo.State{fCO, fH2O, fCO2, fH2}

	assert.InDelta(t, 1.0, m.Beta(x), 1e-12)
	assert.InDelta(t, 0.0, m.Rate(x), 1e-12)

	dx := m.Derive(x, 0)
	for i := range dx {
		assert.InDelta(t, 0.0, dx[i], 1e-12)
	}
}

func TestLTSTotalFlowConserved(t *testing.T) {
	m := NewLTS()
	x := m.InletFlow()

	// 1:1:1:1 stoichiometry conserves total moles, so the derivative of
	// the total flow is zero for any state.
	dx := m.Derive(x, 0)
	assert.InDelta(t, 0.0, floats.Sum(dx), 1e-12)
}

func TestLTSSetParamRederives(t *testing.T) {
	m := NewLTS()
	k0 := m.RateConstant()
	ke0 := m.EquilibriumConstant()

	require.NoError(t, m.SetParam("temperature", 520.0))

	assert.Greater(t, m.RateConstant(), k0, "k must grow with temperature")
	assert.Less(t, m.EquilibriumConstant(), ke0, "exothermic Ke must shrink with temperature")
}

func TestLTSSetParamBounds(t *testing.T) {
	m := NewLTS()

	assert.ErrorIs(t, m.SetParam("temperature", -5), dynamo.ErrParameterBounds)
	assert.ErrorIs(t, m.SetParam("pressure", 0), dynamo.ErrParameterBounds)
	assert.Error(t, m.SetParam("porosity", 0.4))
}

func TestLTSConversion(t *testing.T) {
	m := NewLTS()

	assert.InDelta(t, 0.0, m.Conversion(m.InletFlow()), 1e-12)

	x := m.InletFlow()
	x[CO] = x[CO] / 2
	assert.InDelta(t, 0.5, m.Conversion(x), 1e-12)
}

func TestHTSFasterAtTemperature(t *testing.T) {
	lts := NewLTS()
	hts := NewHTS()

	// Same feed, both below equilibrium: both models must drive the
	// reaction forward.
	assert.Positive(t, lts.Rate(lts.InletFlow()))
	assert.Positive(t, hts.Rate(hts.InletFlow()))

	// The HTS bed runs hotter, so its equilibrium constant is smaller.
	assert.Less(t, hts.EquilibriumConstant(), lts.EquilibriumConstant())
}

func TestHTSStoichiometry(t *testing.T) {
	m := NewHTS()
	dx := m.Derive(m.InletFlow(), 0)

	assert.Equal(t, dx[CO], dx[H2O])
	assert.Equal(t, dx[CO2], dx[H2])
	assert.Equal(t, -dx[CO], dx[H2])
	assert.InDelta(t, 0.0, floats.Sum(dx), 1e-12)
}

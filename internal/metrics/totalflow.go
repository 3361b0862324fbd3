package metrics

import (
	"math"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// TotalFlowDrift reports the largest relative deviation of the total
// molar flow from its inlet value. The shift reaction conserves total
// moles, so any drift is integration error.
type TotalFlowDrift struct {
	name     string
	inlet    float64
	maxDrift float64
	samples  int
}

func NewTotalFlowDrift() *TotalFlowDrift {
	return &TotalFlowDrift{name: "total_flow_drift"}
}

func (t *TotalFlowDrift) Name() string { return t.name }

func (t *TotalFlowDrift) Observe(x dynamo.State, w float64) {
	total := floats.Sum(x)

	if t.samples == 0 {
		t.inlet = total
	}
	t.samples++

	if t.inlet != 0 {
		drift := math.Abs(total-t.inlet) / math.Abs(t.inlet)
		t.maxDrift = math.Max(t.maxDrift, drift)
	}
}

func (t *TotalFlowDrift) Value() float64 {
	return t.maxDrift
}

func (t *TotalFlowDrift) Reset() {
	t.inlet = 0
	t.maxDrift = 0
	t.samples = 0
}

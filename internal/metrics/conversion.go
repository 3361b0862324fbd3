package metrics

import (
	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/reactor"
)

// Conversion tracks fractional CO conversion relative to the first
// observed state, so its final value is the outlet conversion.
type Conversion struct {
	name    string
	inletCO float64
	lastCO  float64
	samples int
}

func NewConversion() *Conversion {
	return &Conversion{name: "conversion"}
}

func (c *Conversion) Name() string { return c.name }

func (c *Conversion) Observe(x dynamo.State, w float64) {
	if len(x) <= reactor.CO {
		return
	}
	if c.samples == 0 {
		c.inletCO = x[reactor.CO]
	}
	c.lastCO = x[reactor.CO]
	c.samples++
}

func (c *Conversion) Value() float64 {
	if c.samples == 0 || c.inletCO == 0 {
		return 0
	}
	return (c.inletCO - c.lastCO) / c.inletCO
}

func (c *Conversion) Reset() {
	c.inletCO = 0
	c.lastCO = 0
	c.samples = 0
}

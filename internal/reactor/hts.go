package reactor

import (
	"fmt"
	"math"

	"github.com/shift-lab/shiftsim/internal/dynamo"
)

// HTS is the high-temperature shift bed model over an Fe2O3/Cr2O3
// catalyst. Same rate-law form as [LTS] with the iron-chrome power-law
// constants; the Ke(T) correlation is shared, it belongs to the reaction
// rather than the catalyst.
type HTS struct {
	Temp     float64 // operating temperature, K
	Pressure float64 // operating pressure, Pa

	A, B, C, D float64
	Order      float64
	LnA        float64
	Ea         float64 // J/mol

	inlet dynamo.State

	k  float64
	ke float64
}

// NewHTS returns the HTS model at its nominal operating point. The feed
// matches the LTS case so the two catalysts can be compared on the same
// syngas.
func NewHTS() *HTS {
	m := &HTS{
		Temp:     623.15,
		Pressure: 2.05e6,
		A:        0.9,
		B:        0.31,
		C:        -0.05,
		D:        -0.156,
		Order:    1.0,
		LnA:      26.1,
		Ea:       111.0e3,
		inlet:    dynamo.State{291.4, 5441.7, 1604.2, 5015.6},
	}
	m.derive()
	return m
}

func (m *HTS) derive() {
	a := math.Exp(m.LnA)
	newA := a * 1000 / 3600 * math.Pow(atmPa, -m.Order) * math.Pow(m.Pressure, m.Order)
	m.k = newA * math.Exp(-m.Ea/(GasConstant*m.Temp))
	m.ke = equilibriumConstant(m.Temp)
}

func (m *HTS) StateDim() int { return NumSpecies }

func (m *HTS) InletFlow() dynamo.State { return m.inlet.Clone() }

func (m *HTS) RateConstant() float64 { return m.k }

func (m *HTS) EquilibriumConstant() float64 { return m.ke }

func (m *HTS) Derive(x dynamo.State, _ float64) dynamo.State {
	rate := m.Rate(x)
	return dynamo.State{-rate, -rate, rate, rate}
}

func (m *HTS) Rate(x dynamo.State) float64 {
	c := concentrations(x, m.Pressure, m.Temp)
	return m.k *
		math.Pow(c[CO], m.A) * math.Pow(c[H2O], m.B) *
		math.Pow(c[CO2], m.D) * math.Pow(c[H2], m.C) *
		(1 - betaOf(c, m.ke))
}

func (m *HTS) Beta(x dynamo.State) float64 {
	return betaOf(concentrations(x, m.Pressure, m.Temp), m.ke)
}

func (m *HTS) Conversion(x dynamo.State) float64 {
	return (m.inlet[CO] - x[CO]) / m.inlet[CO]
}

func (m *HTS) GetParams() map[string]float64 {
	return map[string]float64{
		"temperature": m.Temp,
		"pressure":    m.Pressure,
		"ea":          m.Ea,
		"ln_a":        m.LnA,
	}
}

func (m *HTS) SetParam(name string, value float64) error {
	switch name {
	case "temperature":
		if value <= 0 {
			return dynamo.ErrParameterBounds
		}
		m.Temp = value
	case "pressure":
		if value <= 0 {
			return dynamo.ErrParameterBounds
		}
		m.Pressure = value
	case "ea":
		m.Ea = value
	case "ln_a":
		m.LnA = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	m.derive()
	return nil
}

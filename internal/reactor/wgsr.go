package reactor

import (
	"fmt"
	"math"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// Species indices within a shift reactor state vector.
const (
	CO = iota
	H2O
	CO2
	H2
	NumSpecies
)

// SpeciesNames is the fixed state ordering, used for CSV headers,
// chart legends and terminal plots.
var SpeciesNames = [NumSpecies]string{"F_CO", "F_H2O", "F_CO2", "F_H2"}

// GasConstant is R in base SI units, J/(K*mol).
const GasConstant = 8.314

// atmPa is one standard atmosphere in pascals, used to rebase the
// pre-exponential factor from its literature atm units.
const atmPa = 101325.0

// LTS is the low-temperature shift bed model over a Cu/ZnO/Al2O3
// catalyst, using the empirical power-law regression
//
//	r = k * cCO^a * cH2O^b * cCO2^d * cH2^c * (1 - beta)
//
// with beta the approach-to-equilibrium ratio. The d/c cross-assignment
// to CO2/H2 follows the published regression and is intentional; do not
// reorder it to match the species declaration order.
type LTS struct {
	Temp     float64 // operating temperature, K
	Pressure float64 // operating pressure, Pa

	A, B, C, D float64 // fitted concentration exponents
	Order      float64 // overall reaction order, sets the atm->Pa rebase
	LnA        float64 // ln pre-exponential factor, mol/(g*h) atm basis
	Ea         float64 // activation energy, J/mol

	inlet dynamo.State

	k  float64 // rate constant, mol/(kgcat*s)
	ke float64 // equilibrium constant, dimensionless
}

// NewLTS returns the LTS model at its nominal operating point.
func NewLTS() *LTS {
	m := &LTS{
		Temp:     497.15,
		Pressure: 2.05e6,
		A:        0.47,
		B:        0.72,
		C:        -0.65,
		D:        -0.38,
		Order:    0.16,
		LnA:      19.25,
		Ea:       79.2e3,
		inlet:    dynamo.State{291.4, 5441.7, 1604.2, 5015.6},
	}
	m.derive()
	return m
}

// derive recomputes the rate and equilibrium constants from the current
// operating conditions. The pre-exponential factor is converted from its
// mol/(g*h*atm^0.16) literature basis to mol/(kgcat*s) with the operating
// pressure folded in.
func (m *LTS) derive() {
	a := math.Exp(m.LnA)
	newA := a * 1000 / 3600 * math.Pow(atmPa, -m.Order) * math.Pow(m.Pressure, m.Order)
	m.k = newA * math.Exp(-m.Ea/(GasConstant*m.Temp))
	m.ke = equilibriumConstant(m.Temp)
}

func (m *LTS) StateDim() int { return NumSpecies }

// InletFlow returns the nominal feed, mol/s.
func (m *LTS) InletFlow() dynamo.State { return m.inlet.Clone() }

// RateConstant returns k on the mol/(kgcat*s) basis.
func (m *LTS) RateConstant() float64 { return m.k }

// EquilibriumConstant returns Ke at the operating temperature.
func (m *LTS) EquilibriumConstant() float64 { return m.ke }

// Derive gives the molar flow derivatives with respect to catalyst mass:
// CO and H2O are consumed, CO2 and H2 produced, all at the net rate
// (1:1:1:1 stoichiometry).
func (m *LTS) Derive(x dynamo.State, _ float64) dynamo.State {
	rate := m.Rate(x)
	return dynamo.State{-rate, -rate, rate, rate}
}

// Rate is the net forward reaction rate per unit catalyst mass,
// mol/(kgcat*s). It is undefined for zero or negative flows.
func (m *LTS) Rate(x dynamo.State) float64 {
	c := concentrations(x, m.Pressure, m.Temp)
	return m.k *
		math.Pow(c[CO], m.A) * math.Pow(c[H2O], m.B) *
		math.Pow(c[CO2], m.D) * math.Pow(c[H2], m.C) *
		(1 - betaOf(c, m.ke))
}

// Beta is the approach-to-equilibrium ratio; the net rate vanishes at 1.
func (m *LTS) Beta(x dynamo.State) float64 {
	return betaOf(concentrations(x, m.Pressure, m.Temp), m.ke)
}

// Conversion is the fractional CO conversion relative to the nominal feed.
func (m *LTS) Conversion(x dynamo.State) float64 {
	return (m.inlet[CO] - x[CO]) / m.inlet[CO]
}

func (m *LTS) GetParams() map[string]float64 {
	return map[string]float64{
		"temperature": m.Temp,
		"pressure":    m.Pressure,
		"ea":          m.Ea,
		"ln_a":        m.LnA,
	}
}

func (m *LTS) SetParam(name string, value float64) error {
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

// equilibriumConstant is the empirical Ke(T) correlation for the shift
// reaction, dimensionless.
func equilibriumConstant(temp float64) float64 {
	return math.Exp(4577.8/temp - 4.33)
}

// concentrations maps molar flows to mole-fraction-weighted gas-phase
// concentrations via the ideal gas law, mol/m^3.
func concentrations(x dynamo.State, pressure, temp float64) [NumSpecies]float64 {
	cTotal := pressure / (GasConstant * temp)
	ft := floats.Sum(x)

	var c [NumSpecies]float64
	for i := range c {
		c[i] = cTotal * x[i] / ft
	}
	return c
}

// betaOf is the reaction quotient over Ke.
func betaOf(c [NumSpecies]float64, ke float64) float64 {
	return (c[H2] * c[CO2]) / (c[CO] * c[H2O]) / ke
}

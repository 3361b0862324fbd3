// Package reactor provides kinetic models for the water-gas shift
// reaction, CO + H2O <=> CO2 + H2, over a packed catalyst bed.
//
// Each model implements the [dynamo.System] interface, giving the rate
// of change of the four species molar flows with respect to cumulative
// catalyst mass:
//
//   - [LTS]: low-temperature shift, Cu/ZnO/Al2O3 power-law correlation
//   - [HTS]: high-temperature shift, Fe2O3/Cr2O3 power-law correlation
//
// Models also implement [dynamo.Configurable] for runtime parameter
// adjustment; derived constants (rate constant, equilibrium constant)
// are recomputed whenever an operating condition changes.
package reactor

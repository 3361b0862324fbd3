// Package dynamo provides core primitives for integrating reactor
// governing equations.
//
// The package defines the fundamental interfaces and types for numerical
// integration of species molar balances along a packed catalyst bed
// (dF/dW = f(F, W)):
//
//   - [State]: vector of species molar flow rates
//   - [System]: interface for the kinetic model (dF/dW = f(F, W))
//   - [Integrator]: numerical stepping interface
//   - [Simulator]: marches the bed over a fixed output grid
//
// # Example
//
//	model := reactor.NewLTS()
//	integ := integrators.NewRK45()
//	sim := dynamo.New(model, integ)
//	result, err := sim.Run(ctx, model.InletFlow(), cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Parameter sweeps run one
// Simulator per case (see the sweep package).
package dynamo

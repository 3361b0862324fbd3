package dynamo

import "errors"

// Domain errors for bed integration.
var (
	// ErrInvalidState indicates a state vector with invalid dimensions or values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrNonPhysical indicates a flow went non-positive, outside the
	// rate law's domain.
	ErrNonPhysical = errors.New("dynamo: non-physical state (zero or negative flow)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrContextCanceled indicates the integration was interrupted.
	ErrContextCanceled = errors.New("dynamo: integration canceled by context")

	// ErrStepTooSmall indicates the adaptive mass step fell below minimum.
	ErrStepTooSmall = errors.New("dynamo: adaptive mass step below minimum")

	// ErrDimensionMismatch indicates mismatched state/model dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and model")
)

// SimulationError wraps an error with the grid position where it occurred.
type SimulationError struct {
	Point   int
	Mass    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

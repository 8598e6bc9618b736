package dynamo

import "errors"

// Domain errors for integration and parameter validation.
var (
	// ErrInvalidParameter indicates a physical parameter outside its
	// valid range (non-positive radius, impact parameter, ...).
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrNonPositiveStep indicates a zero or negative step size.
	ErrNonPositiveStep = errors.New("dynamo: step size must be positive")

	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates an adaptive step shrank below its minimum.
	ErrStepTooSmall = errors.New("dynamo: adaptive step below minimum")
)

package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a particle with NaN or Inf in position or velocity.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidCount indicates a particle count outside the allowed set.
	ErrInvalidCount = errors.New("dynamo: particle count not allowed")

	// ErrInvalidTransition indicates a run state change the state machine forbids.
	ErrInvalidTransition = errors.New("dynamo: invalid run state transition")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// SimulationError wraps an error with frame context.
type SimulationError struct {
	Frame   uint64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

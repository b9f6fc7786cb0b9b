package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidState indicates NaN or Inf crept into the global state.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrCanceled indicates the run was interrupted before completing
	// its fixed iteration count.
	ErrCanceled = errors.New("sim: run canceled")
)

// SimError wraps an error with the iteration it occurred at.
type SimError struct {
	Iteration int
	Wrapped   error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("iteration %d: %v", e.Iteration, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}

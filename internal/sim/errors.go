package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrNonFinite indicates the ball state picked up a NaN or Inf.
	ErrNonFinite = errors.New("sim: state is non-finite (NaN or Inf)")

	// ErrBadConfig indicates degenerate tuning that would divide by zero
	// or produce non-finite forces. Rejected at startup, never mid-run.
	ErrBadConfig = errors.New("sim: invalid configuration")
)

// FrameError wraps an error with the frame it occurred on.
type FrameError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}

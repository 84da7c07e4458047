package artifact

import "errors"

var (
	// ErrLengthMismatch indicates operand signals with different sample counts.
	ErrLengthMismatch = errors.New("artifact: signals must have equal length")
	// ErrInvalidCurrent indicates a scale denominator of zero or a non-finite
	// or negative stimulation current.
	ErrInvalidCurrent = errors.New("artifact: stimulation current outside valid domain")
	// ErrInvalidWeight indicates an alternating-sum weight that is NaN or
	// outside the closed interval [0,1].
	ErrInvalidWeight = errors.New("artifact: weight must be a finite value in [0,1]")
)

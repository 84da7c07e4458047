package ecapplot

import "errors"

var (
	// ErrNoSignals indicates an extraction with nothing to draw: nil, or no
	// current levels, or an empty time axis.
	ErrNoSignals = errors.New("ecapplot: extraction carries no signals")

	// ErrShapeMismatch indicates misaligned extraction arrays: signal counts
	// that disagree with the current count, or a signal whose sample count
	// differs from the time axis.
	ErrShapeMismatch = errors.New("ecapplot: extraction arrays disagree in shape")

	// ErrInvalidStyle indicates an unusable Style: non-positive panel
	// dimensions or line width, or a time scale that is not a finite positive
	// number.
	ErrInvalidStyle = errors.New("ecapplot: invalid style")
)

package dataset

import "errors"

// Sentinel errors for electrode-pair extraction. All are matched with
// errors.Is; failure sites wrap them with the offending key, name or pair.
var (
	// ErrTaskNotFound is returned when no row carries the requested task key.
	ErrTaskNotFound = errors.New("dataset: task not found")

	// ErrElectrodePairNotFound is returned when the task has no rows for the
	// requested electrode pair.
	ErrElectrodePairNotFound = errors.New("dataset: electrode pair not found")

	// ErrMissingPolarity is returned when one of the two polarity groups has
	// no rows; extraction needs both an anodic-first and a cathodic-first set.
	ErrMissingPolarity = errors.New("dataset: polarity group absent")

	// ErrMissingTimeAxis is returned when a polarity group carries no row
	// named with the time marker.
	ErrMissingTimeAxis = errors.New("dataset: time axis row absent")

	// ErrInconsistentTimeAxis is returned when the two polarity groups carry
	// different time rows. Suppressed by WithTrustedAlignment.
	ErrInconsistentTimeAxis = errors.New("dataset: polarity groups disagree on the time axis")

	// ErrMalformedMeasurementName is returned when a measurement name is
	// neither a known marker nor "<number><suffix>" with a finite,
	// non-negative magnitude.
	ErrMalformedMeasurementName = errors.New("dataset: malformed measurement name")

	// ErrDuplicateZeroTemplate is returned when a polarity group carries more
	// than one zero-template row; signal/current alignment would be ambiguous.
	ErrDuplicateZeroTemplate = errors.New("dataset: duplicate zero-template row")

	// ErrMismatchedSignalCount is returned when the polarity groups differ in
	// recording count, or a signal's sample count differs from the time axis.
	ErrMismatchedSignalCount = errors.New("dataset: mismatched signal count or length")

	// ErrMismatchedCurrents is returned when the cathodic group's currents
	// differ from the anodic group's in order or value. Suppressed by
	// WithTrustedAlignment.
	ErrMismatchedCurrents = errors.New("dataset: polarity groups disagree on currents")
)

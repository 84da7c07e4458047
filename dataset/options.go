package dataset

// Default row markers and the current-encoding suffix, as used by the
// historical measurement tables.
const (
	// DefaultTimeMarker names the row carrying the shared time axis.
	DefaultTimeMarker = "time"
	// DefaultZeroTemplateMarker names the stimulus-free baseline row.
	DefaultZeroTemplateMarker = "zerotemplate"
	// DefaultCurrentSuffix is the unit suffix trailing every encoded current
	// magnitude, e.g. "5cu".
	DefaultCurrentSuffix = "cu"
)

// Option customizes extraction via functional arguments.
type Option func(*extractOptions)

// extractOptions holds the resolved extraction parameters.
type extractOptions struct {
	timeMarker         string
	zeroTemplateMarker string
	currentSuffix      string
	// trustedAlignment skips the cross-polarity consistency checks (time-axis
	// equality, current order/value match), restoring the historical
	// pipeline's trusting behavior.
	trustedAlignment bool
}

// defaultOptions returns the extraction parameters matching the historical
// table layout: markers "time"/"zerotemplate", suffix "cu", full validation.
func defaultOptions() extractOptions {
	return extractOptions{
		timeMarker:         DefaultTimeMarker,
		zeroTemplateMarker: DefaultZeroTemplateMarker,
		currentSuffix:      DefaultCurrentSuffix,
	}
}

// WithTimeMarker overrides the name identifying the time-axis row.
// Panics on an empty marker; that is a programmer error, not table data.
func WithTimeMarker(marker string) Option {
	if marker == "" {
		panic("dataset: WithTimeMarker(\"\")")
	}
	return func(o *extractOptions) {
		o.timeMarker = marker
	}
}

// WithZeroTemplateMarker overrides the name identifying the zero-template row.
// Panics on an empty marker.
func WithZeroTemplateMarker(marker string) Option {
	if marker == "" {
		panic("dataset: WithZeroTemplateMarker(\"\")")
	}
	return func(o *extractOptions) {
		o.zeroTemplateMarker = marker
	}
}

// WithCurrentSuffix overrides the unit suffix stripped from encoded current
// magnitudes. Panics on an empty suffix.
func WithCurrentSuffix(suffix string) Option {
	if suffix == "" {
		panic("dataset: WithCurrentSuffix(\"\")")
	}
	return func(o *extractOptions) {
		o.currentSuffix = suffix
	}
}

// WithTrustedAlignment disables the cross-polarity consistency checks: the
// cathodic group's currents are no longer compared against the anodic
// group's, and the two time rows are not required to be equal. Use only for
// historical tables whose alignment is known good; misaligned groups then
// pair signals silently.
func WithTrustedAlignment() Option {
	return func(o *extractOptions) {
		o.trustedAlignment = true
	}
}

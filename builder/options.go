package builder

import (
	"math"
	"math/rand"

	"github.com/openecap/ecap/dataset"
)

// Option customizes a generator call by mutating its config before any
// samples are drawn. Option constructors validate and panic on meaningless
// inputs; the generators themselves never panic.
type Option func(*config)

// WithSamples sets the trace length of generated dataset rows.
// Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic("builder: WithSamples(n<1)")
	}
	return func(c *config) {
		c.samples = n
	}
}

// WithSampleInterval sets the time between samples in seconds.
// Panics unless dt is a finite positive number.
func WithSampleInterval(dt float64) Option {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		panic("builder: WithSampleInterval(dt<=0)")
	}
	return func(c *config) {
		c.sampleInterval = dt
	}
}

// WithCurrents sets the stimulation ladder, one generated recording per value
// and polarity, in the given order. Panics on an empty ladder or any current
// that is not finite and strictly positive — zero is the zero template's
// current and cannot name a recording row.
func WithCurrents(currents ...float64) Option {
	if len(currents) == 0 {
		panic("builder: WithCurrents() without currents")
	}
	for _, c := range currents {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			panic("builder: WithCurrents with a non-positive or non-finite current")
		}
	}
	owned := make([]float64, len(currents))
	copy(owned, currents)
	return func(c *config) {
		c.currents = owned
	}
}

// WithTaskKey sets the task key of generated tables. Panics on "".
func WithTaskKey(key string) Option {
	if key == "" {
		panic("builder: WithTaskKey(\"\")")
	}
	return func(c *config) {
		c.taskKey = key
	}
}

// WithElectrodePair sets the measurement site of generated tables.
func WithElectrodePair(pair dataset.ElectrodePair) Option {
	return func(c *config) {
		c.pair = pair
	}
}

// WithArtifactAmplitude scales the biphasic stimulation artifact per unit of
// current. Panics unless a is finite and non-negative; zero removes the
// artifact entirely.
func WithArtifactAmplitude(a float64) Option {
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		panic("builder: WithArtifactAmplitude(a<0)")
	}
	return func(c *config) {
		c.artifactAmp = a
	}
}

// WithResponseAmplitude scales the damped-sinusoid neural response per unit
// of current. Panics unless a is finite and non-negative; zero yields pure
// artifact traces.
func WithResponseAmplitude(a float64) Option {
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		panic("builder: WithResponseAmplitude(a<0)")
	}
	return func(c *config) {
		c.responseAmp = a
	}
}

// WithNoise sets the additive Gaussian noise sigma. Panics if sigma is
// negative or non-finite; zero keeps traces exactly reproducible sample for
// sample.
func WithNoise(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithRand attaches an explicit RNG, overriding the per-call seed. Panics on
// nil; prefer the seed parameter for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

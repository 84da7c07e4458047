package builder

import (
	"math/rand"

	"github.com/openecap/ecap/dataset"
)

// Defaults for the synthetic recordings; all overridable via options.
const (
	// defSamples is the trace length of a generated dataset row.
	defSamples = 200
	// defSampleInterval is the time between samples in seconds (10 µs, so the
	// default trace spans 2 ms).
	defSampleInterval = 1e-5
	// defArtifactAmp scales the biphasic stimulation artifact per unit of
	// current.
	defArtifactAmp = 1.0
	// defResponseAmp scales the damped-sinusoid neural response per unit of
	// current.
	defResponseAmp = 0.5
	// defNoiseSigma disables additive noise; zero templates are then exactly
	// zero, which keeps fixtures golden-friendly.
	defNoiseSigma = 0.0
	// defTaskKey labels generated tables.
	defTaskKey = "synthetic"
)

// defCurrents returns the default stimulation ladder. A fresh slice per call:
// configs must never share backing arrays.
func defCurrents() []float64 {
	return []float64{1, 2, 4, 8}
}

// config holds the resolved generator parameters for one call.
type config struct {
	samples        int
	sampleInterval float64
	currents       []float64
	taskKey        string
	pair           dataset.ElectrodePair
	artifactAmp    float64
	responseAmp    float64
	noiseSigma     float64
	rng            *rand.Rand
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		samples:        defSamples,
		sampleInterval: defSampleInterval,
		currents:       defCurrents(),
		taskKey:        defTaskKey,
		pair:           dataset.ElectrodePair{Stimulating: 1, Recording: 2},
		artifactAmp:    defArtifactAmp,
		responseAmp:    defResponseAmp,
		noiseSigma:     defNoiseSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom prefers an explicitly attached RNG and otherwise seeds a fresh one,
// keeping every generator deterministic per (seed, options).
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

package builder

import (
	"math"
	"math/rand"
)

// Recording returns one synthetic anodic-first ECAP trace of n samples:
// a biphasic stimulation artifact over the first few samples, followed by a
// damped-sinusoid neural response, plus optional Gaussian noise. The trace is
// stimulated at the first current of the configured ladder.
//
// Strictly deterministic per (n, seed, options); n < 1 returns nil.
func Recording(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	cfg.samples = n

	return synthTrace(cfg, rngFrom(cfg, seed), cfg.currents[0], anodicSign)
}

// Polarity signs of the artifact. The neural response does not flip with the
// pulse ordering; only the artifact does.
const (
	anodicSign   = 1.0
	cathodicSign = -1.0
)

// synthTrace generates one recording at the given current, with the artifact
// signed by polarity. current 0 is the stimulus-free zero template: no
// artifact, no response, only noise.
func synthTrace(cfg config, rng *rand.Rand, current, sign float64) []float64 {
	out := make([]float64, cfg.samples)

	duration := float64(cfg.samples) * cfg.sampleInterval
	// Artifact occupies the first 5% of the trace, at least two samples, so
	// both phases of the biphasic pulse exist even in short traces.
	artifactLen := cfg.samples / 20
	if artifactLen < 2 {
		artifactLen = 2
	}
	if artifactLen > cfg.samples {
		artifactLen = cfg.samples
	}

	// Response shape: four cycles over the trace, decaying over a quarter of
	// its duration, latched to the end of the artifact.
	freq := 4 / duration
	tau := duration / 4

	for i := range out {
		var v float64
		switch {
		case current == 0:
			// Stimulus-free: the zero template records nothing but noise.
		case i < artifactLen/2:
			v = sign * cfg.artifactAmp * current
		case i < artifactLen:
			v = -sign * cfg.artifactAmp * current
		default:
			t := float64(i-artifactLen) * cfg.sampleInterval
			v = cfg.responseAmp * current * math.Exp(-t/tau) * math.Sin(2*math.Pi*freq*t)
		}
		if cfg.noiseSigma > 0 {
			v += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return out
}

// timeAxis generates the shared time row: i·dt seconds per sample.
func timeAxis(cfg config) []float64 {
	out := make([]float64, cfg.samples)
	for i := range out {
		out[i] = float64(i) * cfg.sampleInterval
	}

	return out
}

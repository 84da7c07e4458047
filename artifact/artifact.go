package artifact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultWeight is the anodic share used by callers that have no reason to
// favor either polarity in AlternatingStimulationSum.
const DefaultWeight = 0.5

// ZeroTemplateSubtraction returns signal − zeroTemplate, element-wise.
//
// The zero template is a stimulus-free measurement of the same site; whatever
// it recorded (amplifier offset, ambient pickup, switching residue) is no
// neural response and is removed from every sample.
//
// Returns ErrLengthMismatch when the operands differ in sample count.
func ZeroTemplateSubtraction(signal, zeroTemplate []float64) ([]float64, error) {
	if len(signal) != len(zeroTemplate) {
		return nil, fmt.Errorf("%w: signal %d samples, zero template %d",
			ErrLengthMismatch, len(signal), len(zeroTemplate))
	}

	out := make([]float64, len(signal))
	floats.SubTo(out, signal, zeroTemplate)

	return out, nil
}

// ScaledTemplateSubtraction returns
//
//	supraThreshold − (supraCurrent/subCurrent) · subThreshold.
//
// subThreshold is a recording below the neural threshold: pure stimulation
// artifact, no response. The artifact grows proportionally with the current,
// so scaling the sub-threshold template by the current ratio and subtracting
// it isolates the neural response in the supra-threshold recording.
//
// The scale is unbounded: a large current ratio amplifies the template (and
// its noise) by the full ratio. See DampedScaledTemplateSubtraction for the
// bounded variant.
//
// Returns ErrLengthMismatch when the recordings differ in sample count and
// ErrInvalidCurrent when subCurrent is not strictly positive or either
// current is non-finite.
func ScaledTemplateSubtraction(subThreshold, supraThreshold []float64, subCurrent, supraCurrent float64) ([]float64, error) {
	if len(subThreshold) != len(supraThreshold) {
		return nil, fmt.Errorf("%w: sub-threshold %d samples, supra-threshold %d",
			ErrLengthMismatch, len(subThreshold), len(supraThreshold))
	}
	if err := scaleDomain(subCurrent, supraCurrent); err != nil {
		return nil, err
	}

	return subtractScaled(subThreshold, supraThreshold, supraCurrent/subCurrent), nil
}

// DampedScaledTemplateSubtraction is ScaledTemplateSubtraction with the scale
// factor damped through the arctangent:
//
//	supraThreshold − atan(supraCurrent/subCurrent) · subThreshold.
//
// atan (math.Atan, radians, principal branch) keeps the scale inside
// (−π/2, π/2) regardless of how large the current ratio grows, so a template
// recorded far below threshold is never amplified beyond ≈1.57×.
//
// Inputs and errors are identical to ScaledTemplateSubtraction.
func DampedScaledTemplateSubtraction(subThreshold, supraThreshold []float64, subCurrent, supraCurrent float64) ([]float64, error) {
	if len(subThreshold) != len(supraThreshold) {
		return nil, fmt.Errorf("%w: sub-threshold %d samples, supra-threshold %d",
			ErrLengthMismatch, len(subThreshold), len(supraThreshold))
	}
	if err := scaleDomain(subCurrent, supraCurrent); err != nil {
		return nil, err
	}

	return subtractScaled(subThreshold, supraThreshold, math.Atan(supraCurrent/subCurrent)), nil
}

// AlternatingStimulationSum returns weight·anodic + (1−weight)·cathodic.
//
// Under alternating stimulation the artifact flips sign with the pulse
// polarity while the neural response does not; the weighted sum therefore
// suppresses the artifact. DefaultWeight averages both polarities; weight 1
// returns the anodic recording, weight 0 the cathodic one.
//
// Returns ErrLengthMismatch when the recordings differ in sample count and
// ErrInvalidWeight when weight is NaN or outside [0,1].
func AlternatingStimulationSum(anodic, cathodic []float64, weight float64) ([]float64, error) {
	if len(anodic) != len(cathodic) {
		return nil, fmt.Errorf("%w: anodic %d samples, cathodic %d",
			ErrLengthMismatch, len(anodic), len(cathodic))
	}
	if math.IsNaN(weight) || weight < 0 || weight > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWeight, weight)
	}

	out := make([]float64, len(anodic))
	floats.ScaleTo(out, weight, anodic)
	floats.AddScaled(out, 1-weight, cathodic)

	return out, nil
}

// subtractScaled computes supraThreshold − scale·subThreshold into a fresh
// slice. Lengths are already verified by the callers.
func subtractScaled(subThreshold, supraThreshold []float64, scale float64) []float64 {
	out := make([]float64, len(supraThreshold))
	floats.AddScaledTo(out, supraThreshold, -scale, subThreshold)

	return out
}

// scaleDomain rejects currents that cannot form a valid scale factor: the
// sub-threshold current is the denominator and must be strictly positive;
// both currents must be finite.
func scaleDomain(subCurrent, supraCurrent float64) error {
	if math.IsNaN(subCurrent) || math.IsInf(subCurrent, 0) || subCurrent <= 0 {
		return fmt.Errorf("%w: sub-threshold current %v", ErrInvalidCurrent, subCurrent)
	}
	if math.IsNaN(supraCurrent) || math.IsInf(supraCurrent, 0) || supraCurrent < 0 {
		return fmt.Errorf("%w: supra-threshold current %v", ErrInvalidCurrent, supraCurrent)
	}

	return nil
}

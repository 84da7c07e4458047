// Package artifact removes stimulation artifacts from evoked compound action
// potential (ECAP) recordings via template subtraction, and combines
// alternating-polarity recordings into a single response.
//
// What
//
//   - ZeroTemplateSubtraction: subtract a stimulus-free baseline recording,
//     removing the fixed stimulation artifact sample by sample.
//   - ScaledTemplateSubtraction: subtract a sub-threshold recording scaled by
//     the ratio of stimulation currents, removing the current-proportional
//     artifact from a supra-threshold recording.
//   - DampedScaledTemplateSubtraction: same subtraction with the scale factor
//     damped through arctan, so it stays inside (−π/2, π/2) no matter how far
//     the supra-threshold current exceeds the template's.
//   - AlternatingStimulationSum: weighted sum of an anodic-first and a
//     cathodic-first recording; opposite-sign artifacts cancel while the
//     neural response adds.
//
// Contract
//
//   - Every operation is pure: inputs are never mutated, the result is a
//     freshly allocated slice, and no state is shared between calls.
//   - Operand lengths are the caller's responsibility, but violations are
//     never tolerated silently: a length mismatch returns ErrLengthMismatch.
//   - Currents feeding a scale factor must be finite; the template
//     (sub-threshold) current must be strictly positive since it is the
//     denominator of the scale. Violations return ErrInvalidCurrent.
//   - The alternating-sum weight must be a finite value in [0,1]; anything
//     else returns ErrInvalidWeight. DefaultWeight (0.5) gives the plain
//     average.
//   - Zero-length signals of equal length are valid and yield a zero-length
//     result.
//
// Complexity
//
//	All operations run in O(n) time and allocate exactly one O(n) output
//	slice, with n the number of samples.
//
// Usage
//
//	ecap, err := artifact.ScaledTemplateSubtraction(sub, supra, 2.0, 8.0)
//	if err != nil {
//	    // ErrLengthMismatch or ErrInvalidCurrent
//	}
//
// Errors
//
//   - ErrLengthMismatch  — operand signals differ in sample count.
//   - ErrInvalidCurrent  — zero/negative template current, or any non-finite current.
//   - ErrInvalidWeight   — alternating-sum weight is NaN or outside [0,1].
package artifact

// Package builder generates deterministic synthetic ECAP recordings and
// long-form measurement tables for tests, demos and fixtures.
//
// What
//
//   - Recording: one synthetic trace — a biphasic stimulation artifact over
//     the first few samples, then a damped-sinusoid neural response, plus
//     optional Gaussian noise.
//   - Dataset: a complete dataset.Table for one task and electrode pair —
//     per polarity a time row, a stimulus-free zero-template row and one
//     recording per configured current, laid out in the historical row order.
//
// Contract
//
//   - Strict determinism per (seed, options): the same call yields the same
//     samples, making outputs golden-friendly. Zero configuration and zero
//     noise give an exactly reproducible table whose zero templates are all
//     zeros.
//   - The artifact flips sign with the pulse polarity; the neural response
//     does not. Summing the two polarities therefore cancels the artifact,
//     which is exactly what the artifact package's operations expect.
//   - Option constructors validate and panic on meaningless inputs; the
//     generators themselves never panic (invalid sizes return nil).
//
// Usage
//
//	tbl := builder.Dataset(42,
//	    builder.WithCurrents(2, 4, 8),
//	    builder.WithNoise(0.01),
//	)
//	ext, err := dataset.ExtractElectrodePair(tbl, "synthetic",
//	    dataset.ElectrodePair{Stimulating: 1, Recording: 2})
package builder

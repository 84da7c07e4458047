// Package ecapplot renders extraction results as stacked per-current figures:
// one time-aligned panel per stimulation level, pairing the anodic-first
// trace (solid) with the cathodic-first trace (dashed).
//
// What
//
// Render takes a dataset.Extraction and a Style and produces a Figure: panels
// stacked without vertical gaps on a shared, display-scaled time axis and a
// shared amplitude range, each panel annotated with its current magnitude,
// the top panel titled with the electrode pair. Figures are written as PNG
// via WriteTo or Save.
//
// Contract
//
//   - Styling is an explicit Style value; there is no package-level mutable
//     figure state. DefaultStyle reproduces the reference look (red solid
//     anodic, blue dashed cathodic, 1.5 pt, milliseconds on the time axis).
//   - Correctness scope is shape verification of the inputs: Render rejects
//     empty or misaligned extractions. Pixel output is not part of the
//     contract.
//   - Render reads the extraction and never mutates it.
//
// Usage
//
//	fig, err := ecapplot.Render(ext, ecapplot.DefaultStyle())
//	if err != nil {
//	    // ErrNoSignals, ErrShapeMismatch or ErrInvalidStyle
//	}
//	err = fig.Save("pair_1_2.png")
//
// Errors
//
//   - ErrNoSignals     — nil extraction, no current levels, or empty time axis.
//   - ErrShapeMismatch — signal/current counts or sample counts disagree.
//   - ErrInvalidStyle  — non-positive sizes or a non-finite time scale.
package ecapplot

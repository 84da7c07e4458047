// Package dataset models long-form ECAP measurement tables and extracts the
// aligned signal/current/time arrays for one electrode pair.
//
// What
//
// A measurement table (Table) holds one Record per row: task key, electrode
// pair, pulse polarity, a measurement name and the sample sequence. The name
// classifies the row — the shared time axis ("time"), the stimulus-free
// zero-template baseline ("zerotemplate"), or an encoded stimulation current
// such as "5cu". ExtractElectrodePair filters the table down to one task and
// electrode pair, partitions the rows by polarity, and returns an Extraction:
// the shared time axis, per-current anodic and cathodic recordings in table
// row order, the two zero-template baselines, and the current magnitudes.
//
// Contract
//
//   - The input table is read, never mutated; the Extraction shares no memory
//     with it.
//   - Rows are located by their name markers, never by position in the table.
//   - Row order is preserved: Anodic, Cathodic and Currents come back in the
//     order the rows appear, not sorted by current.
//   - Both polarity groups must be present, each with a time row. By default
//     the groups must agree on the time axis, recording count and current
//     sequence; WithTrustedAlignment waives the cross-group checks for
//     historical tables.
//   - Zero-template rows are optional and at most one per polarity; a missing
//     one leaves the corresponding field nil.
//   - Markers and the current suffix are configurable via WithTimeMarker,
//     WithZeroTemplateMarker and WithCurrentSuffix.
//
// Complexity
//
//	Extraction runs in O(r·n) time and memory, with r the matching rows and
//	n the samples per row (every returned slice is a fresh copy).
//
// Usage
//
//	ext, err := dataset.ExtractElectrodePair(tbl, "T1", dataset.ElectrodePair{Stimulating: 1, Recording: 2})
//	if err != nil {
//	    // errors.Is against the dataset sentinels
//	}
//	ecap, err := artifact.ZeroTemplateSubtraction(ext.Anodic[0], ext.AnodicZeroTemplate)
//
// Errors
//
//   - ErrTaskNotFound             — no row carries the task key.
//   - ErrElectrodePairNotFound    — the task has no rows for the pair.
//   - ErrMissingPolarity          — a polarity group is empty.
//   - ErrMissingTimeAxis          — a group has no time-marker row.
//   - ErrInconsistentTimeAxis     — the groups' time rows differ.
//   - ErrMalformedMeasurementName — a name decodes to no valid current.
//   - ErrDuplicateZeroTemplate    — two zero-template rows in one group.
//   - ErrMismatchedSignalCount    — group sizes or sample counts disagree.
//   - ErrMismatchedCurrents       — the groups' current sequences differ.
package dataset

package dataset

import "fmt"

// Polarity identifies the phase ordering of a biphasic stimulation pulse.
// The constants carry the literal labels used in the measurement tables, so a
// Record built straight from a table row compares correctly.
type Polarity string

const (
	// AnodicFirst labels recordings stimulated with the anodic phase first.
	AnodicFirst Polarity = "anodiccathodic"
	// CathodicFirst labels recordings stimulated with the cathodic phase first.
	CathodicFirst Polarity = "cathodicanodic"
)

// String renders the human-readable form used in figures and error messages.
func (p Polarity) String() string {
	switch p {
	case AnodicFirst:
		return "anodic-first"
	case CathodicFirst:
		return "cathodic-first"
	default:
		return string(p)
	}
}

// ElectrodePair identifies one measurement site: the electrode that delivers
// the stimulation pulse and the electrode that records the response.
type ElectrodePair struct {
	Stimulating int
	Recording   int
}

// String renders the pair as "(stim→rec)" for figure titles and errors.
func (e ElectrodePair) String() string {
	return fmt.Sprintf("(%d→%d)", e.Stimulating, e.Recording)
}

// Record is one row of a long-form measurement table.
//
// Name is one of three things: the time marker (the row carries the shared
// time axis instead of a voltage trace), the zero-template marker (a
// stimulus-free baseline recording), or an encoded stimulation current such
// as "5cu" (magnitude plus a fixed unit suffix).
type Record struct {
	// TaskKey identifies the recording session or experimental task.
	TaskKey string
	// StimulatingElectrode and RecordingElectrode locate the measurement site.
	StimulatingElectrode int
	RecordingElectrode   int
	// Polarity is the pulse phase ordering of this recording.
	Polarity Polarity
	// Name classifies the row: time marker, zero-template marker, or an
	// encoded current magnitude.
	Name string
	// Datapoints holds the sample sequence: time offsets for the time row,
	// measured voltage for every other row.
	Datapoints []float64
}

// Table is a long-form measurement table, one Record per row. Extraction
// reads it and never mutates it; row order is significant and preserved.
type Table []Record

// Extraction is the aligned view of one electrode pair within one task:
// every per-current recording of both polarities on a shared time axis.
type Extraction struct {
	// TaskKey and Pair echo the lookup that produced this result.
	TaskKey string
	Pair    ElectrodePair

	// Time is the shared time axis; every signal below has len(Time) samples.
	Time []float64

	// Anodic and Cathodic hold one recording per current level, in table row
	// order (not sorted by current), aligned by position with Currents and
	// with each other.
	Anodic   [][]float64
	Cathodic [][]float64

	// AnodicZeroTemplate and CathodicZeroTemplate are the stimulus-free
	// baseline recordings, nil when the table carries none.
	AnodicZeroTemplate   []float64
	CathodicZeroTemplate []float64

	// Currents lists the stimulation current magnitudes in the same order as
	// Anodic and Cathodic. The zero template is excluded.
	Currents []float64
}

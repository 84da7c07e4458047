package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ExtractElectrodePair reshapes a long-form measurement table into the
// aligned arrays for one electrode pair within one task.
//
// The rows are filtered by task key, then by electrode pair, then partitioned
// by polarity. Within each polarity group the time-axis row is located by its
// name marker, the zero-template row (if any) is split off as the per-polarity
// baseline, and every remaining row is decoded as "<magnitude><suffix>" into a
// (current, signal) pair. Row order is preserved throughout: signals and
// currents come back in table order, not sorted by current.
//
// By default the two polarity groups are required to agree: identical time
// rows, equal recording counts, and element-wise equal current sequences.
// WithTrustedAlignment skips those cross-group checks for historical tables.
//
// The table is never mutated and the result shares no memory with it.
func ExtractElectrodePair(tbl Table, taskKey string, pair ElectrodePair, opts ...Option) (*Extraction, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	task := filterTask(tbl, taskKey)
	if len(task) == 0 {
		return nil, fmt.Errorf("%w: task %q", ErrTaskNotFound, taskKey)
	}

	site := filterPair(task, pair)
	if len(site) == 0 {
		return nil, fmt.Errorf("%w: task %q, pair %s", ErrElectrodePairNotFound, taskKey, pair)
	}

	anodic, err := parseGroup(site, AnodicFirst, o)
	if err != nil {
		return nil, err
	}
	cathodic, err := parseGroup(site, CathodicFirst, o)
	if err != nil {
		return nil, err
	}

	if !o.trustedAlignment {
		if !floats.Equal(anodic.time, cathodic.time) {
			return nil, fmt.Errorf("%w: pair %s", ErrInconsistentTimeAxis, pair)
		}
		if len(anodic.signals) != len(cathodic.signals) {
			return nil, fmt.Errorf("%w: %d anodic vs %d cathodic recordings",
				ErrMismatchedSignalCount, len(anodic.signals), len(cathodic.signals))
		}
		if !floats.Equal(anodic.currents, cathodic.currents) {
			return nil, fmt.Errorf("%w: anodic %v vs cathodic %v",
				ErrMismatchedCurrents, anodic.currents, cathodic.currents)
		}
	}

	return &Extraction{
		TaskKey:              taskKey,
		Pair:                 pair,
		Time:                 anodic.time,
		Anodic:               anodic.signals,
		Cathodic:             cathodic.signals,
		AnodicZeroTemplate:   anodic.zeroTemplate,
		CathodicZeroTemplate: cathodic.zeroTemplate,
		Currents:             anodic.currents,
	}, nil
}

// filterTask returns the rows carrying the given task key, in table order.
func filterTask(tbl Table, taskKey string) []Record {
	var out []Record
	for _, r := range tbl {
		if r.TaskKey == taskKey {
			out = append(out, r)
		}
	}

	return out
}

// filterPair returns the rows measured at the given electrode pair, in order.
func filterPair(rows []Record, pair ElectrodePair) []Record {
	var out []Record
	for _, r := range rows {
		if r.StimulatingElectrode == pair.Stimulating && r.RecordingElectrode == pair.Recording {
			out = append(out, r)
		}
	}

	return out
}

// polarityGroup is one polarity's decoded share of an extraction.
type polarityGroup struct {
	time         []float64
	signals      [][]float64
	currents     []float64
	zeroTemplate []float64
}

// parseGroup decodes one polarity's rows: locates the time axis by marker,
// splits off the zero template wherever it appears, and parses every other
// name into a current magnitude. Signal rows are copied, never aliased.
func parseGroup(rows []Record, pol Polarity, o extractOptions) (polarityGroup, error) {
	var g polarityGroup

	group := make([]Record, 0, len(rows))
	for _, r := range rows {
		if r.Polarity == pol {
			group = append(group, r)
		}
	}
	if len(group) == 0 {
		return g, fmt.Errorf("%w: no %s rows", ErrMissingPolarity, pol)
	}

	// The time row is located by its marker, never by position: historical
	// tables happen to order it first, but that is layout, not contract.
	for _, r := range group {
		if r.Name == o.timeMarker {
			g.time = copyOf(r.Datapoints)
			break
		}
	}
	if g.time == nil {
		return g, fmt.Errorf("%w: no %q row among %s rows", ErrMissingTimeAxis, o.timeMarker, pol)
	}

	for _, r := range group {
		if r.Name == o.timeMarker {
			continue
		}
		if len(r.Datapoints) != len(g.time) {
			return g, fmt.Errorf("%w: %s row %q has %d samples, time axis %d",
				ErrMismatchedSignalCount, pol, r.Name, len(r.Datapoints), len(g.time))
		}
		if r.Name == o.zeroTemplateMarker {
			if g.zeroTemplate != nil {
				return g, fmt.Errorf("%w: %s group", ErrDuplicateZeroTemplate, pol)
			}
			g.zeroTemplate = copyOf(r.Datapoints)
			continue
		}

		current, err := parseCurrent(r.Name, o.currentSuffix)
		if err != nil {
			return g, err
		}
		g.currents = append(g.currents, current)
		g.signals = append(g.signals, copyOf(r.Datapoints))
	}

	return g, nil
}

// parseCurrent decodes "<magnitude><suffix>" into a finite, non-negative
// stimulation current.
func parseCurrent(name, suffix string) (float64, error) {
	magnitude, ok := strings.CutSuffix(name, suffix)
	if !ok || magnitude == "" {
		return 0, fmt.Errorf("%w: %q is not \"<number>%s\"", ErrMalformedMeasurementName, name, suffix)
	}

	current, err := strconv.ParseFloat(magnitude, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedMeasurementName, name, err)
	}
	if math.IsNaN(current) || math.IsInf(current, 0) || current < 0 {
		return 0, fmt.Errorf("%w: %q decodes to %v", ErrMalformedMeasurementName, name, current)
	}

	return current, nil
}

// copyOf clones a sample slice so extraction results never alias the table.
func copyOf(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}

package builder

import (
	"strconv"

	"github.com/openecap/ecap/dataset"
)

// Dataset returns a complete long-form measurement table for one task and
// electrode pair: per polarity a time row, a zero-template row and one
// recording per configured current, in the historical row order (time first,
// zero template before the recordings).
//
// The two polarity groups share the time axis and the current ladder, so the
// table always extracts cleanly under the default validation. Strictly
// deterministic per (seed, options).
func Dataset(seed int64, opts ...Option) dataset.Table {
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	tbl := make(dataset.Table, 0, 2*(len(cfg.currents)+2))
	for _, group := range []struct {
		polarity dataset.Polarity
		sign     float64
	}{
		{dataset.AnodicFirst, anodicSign},
		{dataset.CathodicFirst, cathodicSign},
	} {
		tbl = append(tbl,
			record(cfg, group.polarity, dataset.DefaultTimeMarker, timeAxis(cfg)),
			record(cfg, group.polarity, dataset.DefaultZeroTemplateMarker, synthTrace(cfg, rng, 0, group.sign)),
		)
		for _, current := range cfg.currents {
			name := strconv.FormatFloat(current, 'g', -1, 64) + dataset.DefaultCurrentSuffix
			tbl = append(tbl, record(cfg, group.polarity, name, synthTrace(cfg, rng, current, group.sign)))
		}
	}

	return tbl
}

// record assembles one table row for the configured task and site.
func record(cfg config, pol dataset.Polarity, name string, samples []float64) dataset.Record {
	return dataset.Record{
		TaskKey:              cfg.taskKey,
		StimulatingElectrode: cfg.pair.Stimulating,
		RecordingElectrode:   cfg.pair.Recording,
		Polarity:             pol,
		Name:                 name,
		Datapoints:           samples,
	}
}

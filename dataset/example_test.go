package dataset_test

import (
	"errors"
	"fmt"

	"github.com/openecap/ecap/dataset"
)

// ExampleExtractElectrodePair extracts one electrode pair from a minimal
// long-form table and prints the aligned result.
func ExampleExtractElectrodePair() {
	rec := func(pol dataset.Polarity, name string, samples ...float64) dataset.Record {
		return dataset.Record{
			TaskKey:              "session-07",
			StimulatingElectrode: 1,
			RecordingElectrode:   2,
			Polarity:             pol,
			Name:                 name,
			Datapoints:           samples,
		}
	}
	tbl := dataset.Table{
		rec(dataset.AnodicFirst, "time", 0, 0.1, 0.2),
		rec(dataset.AnodicFirst, "zerotemplate", 0.1, 0.1, 0.1),
		rec(dataset.AnodicFirst, "2cu", 0.9, 1.8, 0.4),
		rec(dataset.AnodicFirst, "4cu", 1.7, 3.5, 0.8),
		rec(dataset.CathodicFirst, "time", 0, 0.1, 0.2),
		rec(dataset.CathodicFirst, "zerotemplate", -0.1, -0.1, -0.1),
		rec(dataset.CathodicFirst, "2cu", -0.8, 1.6, 0.3),
		rec(dataset.CathodicFirst, "4cu", -1.5, 3.2, 0.7),
	}

	ext, err := dataset.ExtractElectrodePair(tbl, "session-07", dataset.ElectrodePair{Stimulating: 1, Recording: 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pair=%s\n", ext.Pair)
	fmt.Printf("time=%v\n", ext.Time)
	fmt.Printf("currents=%v\n", ext.Currents)
	fmt.Printf("anodic@2cu=%v\n", ext.Anodic[0])
	fmt.Printf("cathodic zero template=%v\n", ext.CathodicZeroTemplate)
	// Output:
	// pair=(1→2)
	// time=[0 0.1 0.2]
	// currents=[2 4]
	// anodic@2cu=[0.9 1.8 0.4]
	// cathodic zero template=[-0.1 -0.1 -0.1]
}

// ExampleExtractElectrodePair_notFound shows the sentinel matching a caller
// uses to report which lookup failed.
func ExampleExtractElectrodePair_notFound() {
	tbl := dataset.Table{{
		TaskKey:              "session-07",
		StimulatingElectrode: 1,
		RecordingElectrode:   2,
		Polarity:             dataset.AnodicFirst,
		Name:                 "time",
		Datapoints:           []float64{0, 0.1},
	}}

	_, err := dataset.ExtractElectrodePair(tbl, "session-99", dataset.ElectrodePair{Stimulating: 1, Recording: 2})
	fmt.Println(errors.Is(err, dataset.ErrTaskNotFound))
	// Output:
	// true
}

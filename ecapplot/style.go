package ecapplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style is the explicit figure configuration. There is no process-wide
// styling state: every Render call receives its Style by value.
type Style struct {
	// AnodicColor and CathodicColor are the trace colors. The anodic trace is
	// always solid; the cathodic trace uses CathodicDashes.
	AnodicColor   color.Color
	CathodicColor color.Color

	// LineWidth is the stroke width of both traces.
	LineWidth vg.Length

	// CathodicDashes is the dash pattern of the cathodic trace. An empty
	// pattern draws it solid.
	CathodicDashes []vg.Length

	// PanelWidth and PanelHeight size one per-current subplot; the figure is
	// PanelWidth × PanelHeight·(number of current levels), panels stacked
	// without vertical gaps on a shared time axis.
	PanelWidth  vg.Length
	PanelHeight vg.Length

	// TimeScale multiplies every time offset for display. Recordings carry
	// seconds; the default 1e3 renders milliseconds.
	TimeScale float64

	// TimeLabel and SignalLabel caption the shared axes. The time label is
	// drawn on the bottom panel only.
	TimeLabel   string
	SignalLabel string

	// Legend toggles the anodic/cathodic legend on the top panel.
	Legend bool
}

// DefaultStyle mirrors the reference figure: red solid anodic trace, blue
// dashed cathodic trace, 1.5 pt lines, 8-inch-wide stacked panels, time in
// milliseconds.
func DefaultStyle() Style {
	return Style{
		AnodicColor:    color.RGBA{R: 0xd6, G: 0x2b, B: 0x28, A: 0xff},
		CathodicColor:  color.RGBA{R: 0x1f, G: 0x4f, B: 0xd6, A: 0xff},
		LineWidth:      vg.Points(1.5),
		CathodicDashes: []vg.Length{vg.Points(6), vg.Points(3)},
		PanelWidth:     8 * vg.Inch,
		PanelHeight:    2 * vg.Inch,
		TimeScale:      1e3,
		TimeLabel:      "time (ms)",
		SignalLabel:    "amplitude (V)",
		Legend:         true,
	}
}

package ecapplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/openecap/ecap/dataset"
)

// Figure is a rendered electrode-pair figure: one time-aligned panel per
// current level, anodic trace solid, cathodic trace dashed. It is written out
// as PNG via WriteTo or Save.
type Figure struct {
	plots       [][]*plot.Plot
	panelWidth  vg.Length
	panelHeight vg.Length
}

// Render builds the stacked per-current figure for one extraction.
//
// Each current level gets one panel titled with its magnitude; the top panel
// carries the electrode pair and, when Style.Legend is set, the polarity
// legend. All panels share time and amplitude ranges, so responses at
// different currents are directly comparable. The correctness contract is
// shape verification of the inputs: pixel output is the caller's concern.
//
// Returns ErrNoSignals for an empty extraction, ErrShapeMismatch for
// misaligned arrays and ErrInvalidStyle for an unusable Style.
func Render(ext *dataset.Extraction, sty Style) (*Figure, error) {
	if err := validateStyle(sty); err != nil {
		return nil, err
	}
	if err := validateShapes(ext); err != nil {
		return nil, err
	}

	// Shared amplitude range across panels, the stacked-subplot equivalent of
	// a shared Y axis.
	yMin, yMax := amplitudeRange(ext)

	plots := make([][]*plot.Plot, len(ext.Anodic))
	for i := range ext.Anodic {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%g cu", ext.Currents[i])
		p.Y.Label.Text = sty.SignalLabel
		p.Y.Min, p.Y.Max = yMin, yMax

		anodic, err := traceLine(ext.Time, ext.Anodic[i], sty.TimeScale, sty.AnodicColor, sty.LineWidth, nil)
		if err != nil {
			return nil, err
		}
		cathodic, err := traceLine(ext.Time, ext.Cathodic[i], sty.TimeScale, sty.CathodicColor, sty.LineWidth, sty.CathodicDashes)
		if err != nil {
			return nil, err
		}
		p.Add(anodic, cathodic)

		if i == 0 {
			p.Title.Text = fmt.Sprintf("%s — %g cu", ext.Pair, ext.Currents[i])
			if sty.Legend {
				p.Legend.Add(dataset.AnodicFirst.String(), anodic)
				p.Legend.Add(dataset.CathodicFirst.String(), cathodic)
				p.Legend.Top = true
			}
		}
		// The time label belongs to the bottom panel only; the axes are
		// shared and the panels stack without gaps.
		if i == len(ext.Anodic)-1 {
			p.X.Label.Text = sty.TimeLabel
		}
		plots[i] = []*plot.Plot{p}
	}

	return &Figure{
		plots:       plots,
		panelWidth:  sty.PanelWidth,
		panelHeight: sty.PanelHeight,
	}, nil
}

// Panels reports the number of stacked subplots, one per current level.
func (f *Figure) Panels() int {
	return len(f.plots)
}

// WriteTo renders the figure and writes it as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.New(f.panelWidth, f.panelHeight*vg.Length(len(f.plots)))
	canvases := plot.Align(f.plots, draw.Tiles{Rows: len(f.plots), Cols: 1}, draw.New(img))
	for i := range f.plots {
		f.plots[i][0].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}

	return png.WriteTo(w)
}

// Save writes the figure as a PNG file.
func (f *Figure) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ecapplot: save figure: %w", err)
	}
	if _, err = f.WriteTo(file); err != nil {
		file.Close()

		return fmt.Errorf("ecapplot: save figure: %w", err)
	}

	return file.Close()
}

// traceLine builds one styled trace with time scaled for display.
func traceLine(time, signal []float64, scale float64, col color.Color, width vg.Length, dashes []vg.Length) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(signal))
	for i := range signal {
		xys[i] = plotter.XY{X: time[i] * scale, Y: signal[i]}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("ecapplot: build trace: %w", err)
	}
	line.LineStyle.Color = col
	line.LineStyle.Width = width
	line.LineStyle.Dashes = dashes

	return line, nil
}

// validateStyle rejects styles that cannot produce a drawable figure.
func validateStyle(sty Style) error {
	if sty.PanelWidth <= 0 || sty.PanelHeight <= 0 {
		return fmt.Errorf("%w: panel %v × %v", ErrInvalidStyle, sty.PanelWidth, sty.PanelHeight)
	}
	if sty.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %v", ErrInvalidStyle, sty.LineWidth)
	}
	if math.IsNaN(sty.TimeScale) || math.IsInf(sty.TimeScale, 0) || sty.TimeScale <= 0 {
		return fmt.Errorf("%w: time scale %v", ErrInvalidStyle, sty.TimeScale)
	}
	if sty.AnodicColor == nil || sty.CathodicColor == nil {
		return fmt.Errorf("%w: nil trace color", ErrInvalidStyle)
	}

	return nil
}

// validateShapes checks the only correctness contract this package carries:
// the extraction arrays must be mutually aligned.
func validateShapes(ext *dataset.Extraction) error {
	if ext == nil || len(ext.Anodic) == 0 || len(ext.Time) == 0 {
		return fmt.Errorf("%w: nothing to draw", ErrNoSignals)
	}
	if len(ext.Cathodic) != len(ext.Anodic) || len(ext.Currents) != len(ext.Anodic) {
		return fmt.Errorf("%w: %d anodic, %d cathodic, %d currents",
			ErrShapeMismatch, len(ext.Anodic), len(ext.Cathodic), len(ext.Currents))
	}
	for i := range ext.Anodic {
		if len(ext.Anodic[i]) != len(ext.Time) || len(ext.Cathodic[i]) != len(ext.Time) {
			return fmt.Errorf("%w: level %d has %d/%d samples against a %d-sample time axis",
				ErrShapeMismatch, i, len(ext.Anodic[i]), len(ext.Cathodic[i]), len(ext.Time))
		}
	}

	return nil
}

// amplitudeRange spans all traces with a little headroom, so every panel
// shares one amplitude scale.
func amplitudeRange(ext *dataset.Extraction) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range ext.Anodic {
		for _, sig := range [][]float64{ext.Anodic[i], ext.Cathodic[i]} {
			for _, v := range sig {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
	}
	if lo == hi {
		// A flat trace still needs a non-degenerate axis.
		lo, hi = lo-1, hi+1
	}
	pad := 0.05 * (hi - lo)

	return lo - pad, hi + pad
}

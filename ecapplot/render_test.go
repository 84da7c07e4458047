package ecapplot_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openecap/ecap/dataset"
	"github.com/openecap/ecap/ecapplot"
)

// extraction builds a well-shaped two-level result for the fixture pair.
func extraction() *dataset.Extraction {
	return &dataset.Extraction{
		TaskKey:              "T1",
		Pair:                 dataset.ElectrodePair{Stimulating: 1, Recording: 2},
		Time:                 []float64{0, 0.001, 0.002},
		Anodic:               [][]float64{{0.5, 1.5, 0.25}, {1, 3, 0.5}},
		Cathodic:             [][]float64{{-0.5, 1.25, 0.25}, {-1, 2.5, 0.5}},
		AnodicZeroTemplate:   []float64{0, 0, 0},
		CathodicZeroTemplate: []float64{0, 0, 0},
		Currents:             []float64{2, 4},
	}
}

// TestRender_PanelPerCurrentLevel verifies the figure layout contract: one
// panel per current level.
func TestRender_PanelPerCurrentLevel(t *testing.T) {
	fig, err := ecapplot.Render(extraction(), ecapplot.DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, 2, fig.Panels())
}

// TestRender_WritesPNG smoke-tests the full pipeline down to encoded bytes.
func TestRender_WritesPNG(t *testing.T) {
	fig, err := ecapplot.Render(extraction(), ecapplot.DefaultStyle())
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4], "output must be a PNG stream")
}

// TestRender_NoSignals verifies the empty-input contract.
func TestRender_NoSignals(t *testing.T) {
	_, err := ecapplot.Render(nil, ecapplot.DefaultStyle())
	assert.ErrorIs(t, err, ecapplot.ErrNoSignals)

	empty := extraction()
	empty.Anodic, empty.Cathodic, empty.Currents = nil, nil, nil
	_, err = ecapplot.Render(empty, ecapplot.DefaultStyle())
	assert.ErrorIs(t, err, ecapplot.ErrNoSignals)

	noTime := extraction()
	noTime.Time = nil
	_, err = ecapplot.Render(noTime, ecapplot.DefaultStyle())
	assert.ErrorIs(t, err, ecapplot.ErrNoSignals)
}

// TestRender_ShapeMismatch verifies that misaligned extraction arrays are
// rejected rather than drawn partially.
func TestRender_ShapeMismatch(t *testing.T) {
	t.Run("cathodic count", func(t *testing.T) {
		ext := extraction()
		ext.Cathodic = ext.Cathodic[:1]
		_, err := ecapplot.Render(ext, ecapplot.DefaultStyle())
		assert.ErrorIs(t, err, ecapplot.ErrShapeMismatch)
	})
	t.Run("current count", func(t *testing.T) {
		ext := extraction()
		ext.Currents = append(ext.Currents, 8)
		_, err := ecapplot.Render(ext, ecapplot.DefaultStyle())
		assert.ErrorIs(t, err, ecapplot.ErrShapeMismatch)
	})
	t.Run("sample count", func(t *testing.T) {
		ext := extraction()
		ext.Anodic[1] = ext.Anodic[1][:2]
		_, err := ecapplot.Render(ext, ecapplot.DefaultStyle())
		assert.ErrorIs(t, err, ecapplot.ErrShapeMismatch)
	})
}

// TestRender_InvalidStyle verifies the style validation contract.
func TestRender_InvalidStyle(t *testing.T) {
	base := ecapplot.DefaultStyle()

	zeroWidth := base
	zeroWidth.PanelWidth = 0
	_, err := ecapplot.Render(extraction(), zeroWidth)
	assert.ErrorIs(t, err, ecapplot.ErrInvalidStyle)

	badScale := base
	badScale.TimeScale = math.NaN()
	_, err = ecapplot.Render(extraction(), badScale)
	assert.ErrorIs(t, err, ecapplot.ErrInvalidStyle)

	noColor := base
	noColor.AnodicColor = nil
	_, err = ecapplot.Render(extraction(), noColor)
	assert.ErrorIs(t, err, ecapplot.ErrInvalidStyle)
}

// TestRender_FlatTraces verifies that all-constant signals still render: the
// shared amplitude axis must not degenerate.
func TestRender_FlatTraces(t *testing.T) {
	ext := extraction()
	for i := range ext.Anodic {
		for j := range ext.Anodic[i] {
			ext.Anodic[i][j] = 1
			ext.Cathodic[i][j] = 1
		}
	}

	fig, err := ecapplot.Render(ext, ecapplot.DefaultStyle())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

// TestRender_SaveWritesFile verifies the file path of the PNG writer.
func TestRender_SaveWritesFile(t *testing.T) {
	fig, err := ecapplot.Render(extraction(), ecapplot.DefaultStyle())
	require.NoError(t, err)

	path := t.TempDir() + "/pair.png"
	require.NoError(t, fig.Save(path))
	assert.FileExists(t, path)
}

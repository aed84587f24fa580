package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kungfu-chess/core"
)

func newTestBoard(t *testing.T) Board {
	t.Helper()
	b, err := New(8, 8, 64, 48, 1.0, 0.5)
	require.NoError(t, err)
	return b
}

func TestNew_RejectsDegenerateGeometry(t *testing.T) {
	cases := []struct {
		name         string
		w, h, px, py int
		ux, uy       float64
	}{
		{"zero width", 0, 8, 64, 64, 1, 1},
		{"negative height", 8, -1, 64, 64, 1, 1},
		{"zero pixels", 8, 8, 0, 64, 1, 1},
		{"zero units", 8, 8, 64, 64, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.w, tc.h, tc.px, tc.py, tc.ux, tc.uy)
			assert.Error(t, err)
		})
	}
}

func TestCellMetricRoundTrip(t *testing.T) {
	b := newTestBoard(t)
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := core.Cell{Row: r, Col: c}
			assert.Equal(t, cell, b.MetricToCell(b.CellToMetric(cell)))
		}
	}
}

func TestMetricPixelRoundTrip(t *testing.T) {
	b := newTestBoard(t)
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := core.Cell{Row: r, Col: c}
			m := b.CellToMetric(cell)
			px := b.MetricToPixel(m)
			assert.Equal(t, Pixel{X: c * 64, Y: r * 48}, px)
			assert.Equal(t, cell, b.MetricToCell(b.PixelToMetric(px)))
		}
	}
}

func TestMetricToCell_RoundsToNearest(t *testing.T) {
	b := newTestBoard(t)
	assert.Equal(t, core.Cell{Row: 2, Col: 3}, b.MetricToCell(Point{X: 3.4, Y: 1.2}))
	assert.Equal(t, core.Cell{Row: 3, Col: 4}, b.MetricToCell(Point{X: 3.6, Y: 1.3}))
}

func TestInBounds(t *testing.T) {
	b := newTestBoard(t)
	assert.True(t, b.InBounds(core.Cell{Row: 0, Col: 0}))
	assert.True(t, b.InBounds(core.Cell{Row: 7, Col: 7}))
	assert.False(t, b.InBounds(core.Cell{Row: 8, Col: 0}))
	assert.False(t, b.InBounds(core.Cell{Row: 0, Col: -1}))
}

func TestLerpAndDistance(t *testing.T) {
	a, z := Point{0, 0}, Point{3, 4}
	assert.InDelta(t, 5.0, Distance(a, z), 1e-9)
	assert.Equal(t, Point{1.5, 2}, Lerp(a, z, 0.5))
}

func TestNotation(t *testing.T) {
	b := newTestBoard(t)

	name, ok := b.Square(core.Cell{Row: 6, Col: 4})
	require.True(t, ok)
	assert.Equal(t, "e2", name)

	name, ok = b.Square(core.Cell{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Equal(t, "a8", name)

	cell, err := b.ParseSquare("E4")
	require.NoError(t, err)
	assert.Equal(t, core.Cell{Row: 4, Col: 4}, cell)

	_, err = b.ParseSquare("z9")
	assert.Error(t, err)
}

func TestNotation_UnavailableOffStandardGrid(t *testing.T) {
	b, err := New(10, 10, 32, 32, 1, 1)
	require.NoError(t, err)
	_, ok := b.Square(core.Cell{Row: 1, Col: 1})
	assert.False(t, ok)
	_, err = b.ParseSquare("a1")
	assert.Error(t, err)
}

func TestParseCell(t *testing.T) {
	b := newTestBoard(t)
	cell, err := b.ParseCell("(6, 0)")
	require.NoError(t, err)
	assert.Equal(t, core.Cell{Row: 6, Col: 0}, cell)

	cell, err = b.ParseCell("b1")
	require.NoError(t, err)
	assert.Equal(t, core.Cell{Row: 7, Col: 1}, cell)

	_, err = b.ParseCell("x,1")
	assert.Error(t, err)
}

package board

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/core"
)

// Point is a position in real-world units; X grows with columns, Y with rows
type Point struct {
	X, Y float64
}

// Pixel is a position on the render surface
type Pixel struct {
	X, Y int
}

// Board is the immutable grid geometry shared by physics and rendering
type Board struct {
	CellWPix, CellHPix     int     // cell size in pixels
	CellWUnits, CellHUnits float64 // cell size in real-world units
	WCells, HCells         int     // grid size in cells
}

// New validates and returns a board geometry
func New(wCells, hCells, cellWPix, cellHPix int, cellWUnits, cellHUnits float64) (Board, error) {
	if wCells <= 0 || hCells <= 0 {
		return Board{}, errors.Errorf("board: grid %dx%d must be positive", wCells, hCells)
	}
	if cellWPix <= 0 || cellHPix <= 0 {
		return Board{}, errors.Errorf("board: cell %dx%d px must be positive", cellWPix, cellHPix)
	}
	if cellWUnits <= 0 || cellHUnits <= 0 {
		return Board{}, errors.Errorf("board: cell %gx%g units must be positive", cellWUnits, cellHUnits)
	}
	return Board{
		CellWPix:   cellWPix,
		CellHPix:   cellHPix,
		CellWUnits: cellWUnits,
		CellHUnits: cellHUnits,
		WCells:     wCells,
		HCells:     hCells,
	}, nil
}

// Rows returns the number of rows (height in cells)
func (b Board) Rows() int { return b.HCells }

// Cols returns the number of columns (width in cells)
func (b Board) Cols() int { return b.WCells }

// InBounds reports whether the cell lies on the grid
func (b Board) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < b.HCells && c.Col >= 0 && c.Col < b.WCells
}

// CellToMetric returns the top-left corner of the cell in units
func (b Board) CellToMetric(c core.Cell) Point {
	return Point{
		X: float64(c.Col) * b.CellWUnits,
		Y: float64(c.Row) * b.CellHUnits,
	}
}

// MetricToCell rounds a metric position to the nearest cell
func (b Board) MetricToCell(p Point) core.Cell {
	return core.Cell{
		Row: int(math.Round(p.Y / b.CellHUnits)),
		Col: int(math.Round(p.X / b.CellWUnits)),
	}
}

// MetricToPixel converts units to the nearest pixel
func (b Board) MetricToPixel(p Point) Pixel {
	return Pixel{
		X: int(math.Round(p.X / b.CellWUnits * float64(b.CellWPix))),
		Y: int(math.Round(p.Y / b.CellHUnits * float64(b.CellHPix))),
	}
}

// PixelToMetric converts a pixel position back to units
func (b Board) PixelToMetric(px Pixel) Point {
	return Point{
		X: float64(px.X) / float64(b.CellWPix) * b.CellWUnits,
		Y: float64(px.Y) / float64(b.CellHPix) * b.CellHUnits,
	}
}

// CellToPixel returns the top-left pixel of the cell
func (b Board) CellToPixel(c core.Cell) Pixel {
	return b.MetricToPixel(b.CellToMetric(c))
}

// Distance returns the Euclidean distance between two metric points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp interpolates from a toward b by fraction t in [0,1]
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

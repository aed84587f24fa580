package core

import "strconv"

// Cell is a board coordinate, row-major with (0,0) at the top-left
type Cell struct {
	Row, Col int
}

// Offset returns the cell displaced by (dr, dc)
func (c Cell) Offset(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Delta returns (dr, dc) such that c.Offset(dr, dc) == to
func (c Cell) Delta(to Cell) (dr, dc int) {
	return to.Row - c.Row, to.Col - c.Col
}

func (c Cell) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Color is the side a piece belongs to, encoded as the second character of its id
type Color byte

const (
	White Color = 'W'
	Black Color = 'B'
)

// Colors lists both sides in a stable order
var Colors = [2]Color{White, Black}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case 0:
		return "none"
	default:
		return "color(" + string(rune(c)) + ")"
	}
}

// Opponent returns the other side; unknown colors map to themselves
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return c
}

// Occupancy is the read view of the per-tick cell index used by move legality
// ColorsAt returns the colors of every piece on the cell, nil when empty
type Occupancy interface {
	ColorsAt(cell Cell) []Color
}

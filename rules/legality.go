package rules

import (
	"github.com/lixenwraith/kungfu-chess/core"
)

// IsLegalMove validates src -> dst for a mover of the given color
// Order: board bounds, rule table, then the optional clear-path walk
func (t *Table) IsLegalMove(src, dst core.Cell, occ core.Occupancy, needClearPath bool, mover core.Color) bool {
	if t == nil {
		return false
	}
	if dst.Row < 0 || dst.Row >= t.rows || dst.Col < 0 || dst.Col >= t.cols {
		return false
	}

	dr, dc := src.Delta(dst)
	if !t.IsLegal(dr, dc, colorsAt(occ, dst), mover) {
		return false
	}

	if needClearPath && !PathClear(src, dst, occ, mover) {
		return false
	}
	return true
}

// PathClear reports whether no piece of the mover's color sits strictly between
// src and dst, nor on dst itself
// Intermediate cells step by max(|dr|,|dc|), each axis truncated toward zero
func PathClear(src, dst core.Cell, occ core.Occupancy, mover core.Color) bool {
	if hasColor(colorsAt(occ, dst), mover) {
		return false
	}

	dr, dc := src.Delta(dst)
	steps := max(abs(dr), abs(dc))
	if steps == 0 {
		return true
	}
	stepR := float64(dr) / float64(steps)
	stepC := float64(dc) / float64(steps)

	for i := 1; i < steps; i++ {
		cell := core.Cell{
			Row: src.Row + int(float64(i)*stepR),
			Col: src.Col + int(float64(i)*stepC),
		}
		if hasColor(colorsAt(occ, cell), mover) {
			return false
		}
	}
	return true
}

func colorsAt(occ core.Occupancy, cell core.Cell) []core.Color {
	if occ == nil {
		return nil
	}
	return occ.ColorsAt(cell)
}

func hasColor(colors []core.Color, want core.Color) bool {
	for _, c := range colors {
		if c == want {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package engine

import (
	"sort"

	"github.com/lixenwraith/kungfu-chess/core"
)

// occupancy maps a cell to the pieces whose physics currently round into it
// Derived data: rebuilt from piece cells, never trusted across rebuilds
type occupancy map[core.Cell][]*Piece

func buildOccupancy(pieces []*Piece) occupancy {
	occ := make(occupancy, len(pieces))
	for _, p := range pieces {
		c := p.Cell()
		occ[c] = append(occ[c], p)
	}
	return occ
}

// ColorsAt implements core.Occupancy
func (o occupancy) ColorsAt(c core.Cell) []core.Color {
	pieces := o[c]
	if len(pieces) == 0 {
		return nil
	}
	colors := make([]core.Color, len(pieces))
	for i, p := range pieces {
		colors[i] = p.Color()
	}
	return colors
}

// contested returns cells holding two or more pieces in row-major order
func (o occupancy) contested() []core.Cell {
	var cells []core.Cell
	for c, pieces := range o {
		if len(pieces) > 1 {
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

package input

import (
	"sync"

	"github.com/lixenwraith/kungfu-chess/core"
)

// Cursor is a board position clamped to rows x cols
// Key events and the renderer touch it from different goroutines
type Cursor struct {
	mu         sync.Mutex
	cell       core.Cell
	rows, cols int
}

func NewCursor(rows, cols int, start core.Cell) *Cursor {
	c := &Cursor{rows: rows, cols: cols}
	c.Set(start)
	return c
}

// Move steps the cursor, stopping at the board edge
func (c *Cursor) Move(dr, dc int) core.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cell = c.clamp(c.cell.Offset(dr, dc))
	return c.cell
}

// Set places the cursor, clamped to the board
func (c *Cursor) Set(cell core.Cell) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cell = c.clamp(cell)
}

// Cell returns the current position
func (c *Cursor) Cell() core.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cell
}

func (c *Cursor) clamp(cell core.Cell) core.Cell {
	cell.Row = min(max(cell.Row, 0), c.rows-1)
	cell.Col = min(max(cell.Col, 0), c.cols-1)
	return cell
}

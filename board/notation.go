package board

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/core"
)

// Algebraic notation only applies to the standard 8x8 grid, White on rows 6-7
const notationSize = 8

var squareByName = func() map[string]chess.Square {
	m := make(map[string]chess.Square, notationSize*notationSize)
	for sq := chess.A1; sq <= chess.H8; sq++ {
		m[sq.String()] = sq
	}
	return m
}()

// HasNotation reports whether squares of this board can be named algebraically
func (b Board) HasNotation() bool {
	return b.WCells == notationSize && b.HCells == notationSize
}

// Square names a cell in algebraic notation ("e2")
func (b Board) Square(c core.Cell) (string, bool) {
	if !b.HasNotation() || !b.InBounds(c) {
		return "", false
	}
	return cellToSquare(c).String(), true
}

// ParseSquare resolves an algebraic square name to a cell
func (b Board) ParseSquare(name string) (core.Cell, error) {
	if !b.HasNotation() {
		return core.Cell{}, errors.Errorf("board: %dx%d grid has no algebraic notation", b.WCells, b.HCells)
	}
	sq, ok := squareByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return core.Cell{}, errors.Errorf("board: unknown square %q", name)
	}
	return squareToCell(sq), nil
}

// ParseCell accepts either algebraic notation or "row,col"
func (b Board) ParseCell(s string) (core.Cell, error) {
	s = strings.TrimSpace(s)
	if r, c, ok := strings.Cut(strings.Trim(s, "()"), ","); ok {
		var cell core.Cell
		var err error
		if cell.Row, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
			return core.Cell{}, errors.Wrapf(err, "board: bad row in %q", s)
		}
		if cell.Col, err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
			return core.Cell{}, errors.Wrapf(err, "board: bad column in %q", s)
		}
		return cell, nil
	}
	return b.ParseSquare(s)
}

func cellToSquare(c core.Cell) chess.Square {
	rank := chess.Rank(notationSize - 1 - c.Row)
	file := chess.File(c.Col)
	return chess.Square(int(rank)*notationSize + int(file))
}

func squareToCell(sq chess.Square) core.Cell {
	return core.Cell{
		Row: notationSize - 1 - int(sq.Rank()),
		Col: int(sq.File()),
	}
}

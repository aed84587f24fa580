// Package render draws published game snapshots onto a terminal screen
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
	"github.com/lixenwraith/kungfu-chess/physics"
)

// Terminal cells per board cell
const (
	CellWidth  = 4
	CellHeight = 2
)

// Board origin on screen, leaving room for rank labels
const (
	OriginX = 3
	OriginY = 1
)

// CursorView is one player's cursor as drawn
type CursorView struct {
	Cell     core.Cell
	Selected string // piece id, empty when nothing is selected
}

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws the board, pieces at their continuous positions, cursors and the status bar
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, cursors []CursorView, status string) {
	r.screen.Clear()
	if snap == nil {
		r.screen.Show()
		return
	}
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawSquares(snap.Board)
	r.drawCursors(snap.Board, cursors)
	r.drawLabels(snap.Board, defaultStyle)
	r.drawPieces(snap, cursors)
	r.drawStatusBar(snap, status, defaultStyle)

	r.screen.Show()
}

func squareColor(c core.Cell) tcell.Color {
	if (c.Row+c.Col)%2 == 0 {
		return RgbLightSquare
	}
	return RgbDarkSquare
}

func (r *TerminalRenderer) fillCell(c core.Cell, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	x0, y0 := OriginX+c.Col*CellWidth, OriginY+c.Row*CellHeight
	for y := y0; y < y0+CellHeight; y++ {
		for x := x0; x < x0+CellWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawSquares(b board.Board) {
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			c := core.Cell{Row: row, Col: col}
			r.fillCell(c, squareColor(c))
		}
	}
}

func (r *TerminalRenderer) drawCursors(b board.Board, cursors []CursorView) {
	for i, cur := range cursors {
		if b.InBounds(cur.Cell) {
			r.fillCell(cur.Cell, RgbCursors[i%len(RgbCursors)])
		}
	}
}

// drawLabels writes ranks on the left and files below, algebraic when the grid supports it
func (r *TerminalRenderer) drawLabels(b board.Board, style tcell.Style) {
	style = style.Foreground(RgbLabel)
	for row := 0; row < b.Rows(); row++ {
		label := strconv.Itoa(row)
		if sq, ok := b.Square(core.Cell{Row: row, Col: 0}); ok {
			label = sq[1:]
		}
		r.drawText(0, OriginY+row*CellHeight, label, style)
	}
	y := OriginY + b.Rows()*CellHeight
	for col := 0; col < b.Cols(); col++ {
		label := strconv.Itoa(col)
		if sq, ok := b.Square(core.Cell{Row: 0, Col: col}); ok {
			label = sq[:1]
		}
		r.drawText(OriginX+col*CellWidth+CellWidth/2, y, label, style)
	}
}

// ScreenPos maps a metric position to the terminal cell its glyph occupies
func ScreenPos(b board.Board, p board.Point) (int, int) {
	x := OriginX + int(math.Round(p.X/b.CellWUnits*CellWidth)) + CellWidth/2
	y := OriginY + int(math.Round(p.Y/b.CellHUnits*CellHeight)) + CellHeight/2
	return x, y
}

func (r *TerminalRenderer) drawPieces(snap *engine.Snapshot, cursors []CursorView) {
	selected := make(map[string]bool)
	for _, c := range cursors {
		if c.Selected != "" {
			selected[c.Selected] = true
		}
	}

	for _, v := range snap.Pieces {
		x, y := ScreenPos(snap.Board, v.Position)
		_, _, under, _ := r.screen.GetContent(x, y)
		_, bg, _ := under.Decompose()

		fg := RgbWhitePiece
		if v.Color == core.Black {
			fg = RgbBlackPiece
		}
		if v.Physics == physics.KindRest {
			fg = RgbRestPiece
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true)
		if selected[v.ID] {
			style = style.Underline(true)
		}

		glyph := rune(v.Kind)
		if frame := []rune(v.Frame); len(frame) > 0 {
			glyph = frame[0]
		}
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot, status string, style tcell.Style) {
	y := OriginY + snap.Board.Rows()*CellHeight + 1
	gameID := snap.GameID
	if len(gameID) > 8 {
		gameID = gameID[:8]
	}
	line := fmt.Sprintf("game %s  t=%.1fs  tick %d", gameID, float64(snap.NowMs)/1000, snap.Tick)
	if snap.Paused {
		line += "  [paused]"
	}
	r.drawText(0, y, line, style.Foreground(RgbStatus))

	if snap.Over {
		y++
		r.drawText(0, y, GameOverText(snap), style.Foreground(RgbWinner).Bold(true))
	}
	if status != "" {
		r.drawText(0, y+1, status, style.Foreground(RgbLabel))
	}
}

// GameOverText describes the outcome of a finished game
func GameOverText(snap *engine.Snapshot) string {
	if snap.Winner == 0 {
		return "GAME OVER: both kings fell"
	}
	return fmt.Sprintf("GAME OVER: %s wins", snap.Winner)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

package engine

import (
	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/physics"
)

// PieceView is a read-only copy of one piece for presentation and input previews
type PieceView struct {
	ID       string
	Kind     byte
	Color    core.Color
	Cell     core.Cell
	Position board.Point
	Pixel    board.Pixel
	State    string
	Physics  physics.Kind
	Blocker  bool
	Frame    string
	StartMs  int64
}

// Snapshot is the immutable game state published after each tick
// Safe to read from any goroutine; never mutated after publication
type Snapshot struct {
	GameID string
	Tick   uint64
	NowMs  int64
	Board  board.Board
	Pieces []PieceView // sorted by id
	Paused bool
	Over   bool
	Winner core.Color // zero when no winner
}

func (g *Game) snapshot(nowMs int64) *Snapshot {
	views := make([]PieceView, len(g.pieces))
	for i, p := range g.pieces {
		views[i] = PieceView{
			ID:       p.ID(),
			Kind:     p.Kind(),
			Color:    p.Color(),
			Cell:     p.Cell(),
			Position: p.Position(),
			Pixel:    p.Pixel(),
			State:    p.StateName(),
			Physics:  p.PhysicsKind(),
			Blocker:  p.IsMovementBlocker(),
			Frame:    p.Frame(),
			StartMs:  p.StartMs(),
		}
	}
	return &Snapshot{
		GameID: g.id.String(),
		Tick:   g.ticks,
		NowMs:  nowMs,
		Board:  g.board,
		Pieces: views,
		Paused: g.clock.IsPaused(),
		Over:   g.over,
		Winner: g.winner,
	}
}

// Piece looks up a piece by id
func (s *Snapshot) Piece(id string) (PieceView, bool) {
	for _, v := range s.Pieces {
		if v.ID == id {
			return v, true
		}
	}
	return PieceView{}, false
}

// PiecesAt returns every piece rounding into cell
func (s *Snapshot) PiecesAt(c core.Cell) []PieceView {
	var out []PieceView
	for _, v := range s.Pieces {
		if v.Cell == c {
			out = append(out, v)
		}
	}
	return out
}

// PieceAt returns the piece shown on cell, preferring the latest arrival
func (s *Snapshot) PieceAt(c core.Cell) (PieceView, bool) {
	var best PieceView
	found := false
	for _, v := range s.Pieces {
		if v.Cell == c && (!found || v.StartMs > best.StartMs) {
			best, found = v, true
		}
	}
	return best, found
}

// ColorsAt implements core.Occupancy for legality previews
func (s *Snapshot) ColorsAt(c core.Cell) []core.Color {
	var colors []core.Color
	for _, v := range s.Pieces {
		if v.Cell == c {
			colors = append(colors, v.Color)
		}
	}
	return colors
}

package engine

import (
	"log"

	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/event"
)

// survivor picks the most recent arrival on a contested cell
// Ties prefer a piece that can capture, then the smaller id, so the result never depends on slice order
func survivor(pieces []*Piece) *Piece {
	best := pieces[0]
	for _, p := range pieces[1:] {
		switch {
		case p.StartMs() > best.StartMs():
			best = p
		case p.StartMs() < best.StartMs():
		case p.capturesThisTick() != best.capturesThisTick():
			if p.capturesThisTick() {
				best = p
			}
		case p.ID() < best.ID():
			best = p
		}
	}
	return best
}

// resolveCollisions removes captured pieces and reports what happened
// A survivor that cannot capture leaves the cell unresolved until a later tick
// A standoff is reported once, when its cell first becomes unresolved
func (g *Game) resolveCollisions(nowMs int64) {
	captured := make(map[*Piece]bool)
	standoffs := make(map[core.Cell]bool)

	for _, cell := range g.occ.contested() {
		occupants := g.occ[cell]
		win := survivor(occupants)

		unresolved := false
		for _, p := range occupants {
			if p == win || p.Color() == win.Color() {
				continue
			}
			if !win.capturesThisTick() || !p.CanBeCaptured() {
				unresolved = true
				continue
			}
			captured[p] = true
			log.Printf("game %s: %s captured %s at %v", g.shortID(), win.ID(), p.ID(), cell)
			g.notify(event.Notice{
				Type:        event.NoticeCapture,
				TimestampMs: nowMs,
				PieceID:     win.ID(),
				Other:       p.ID(),
				Cell:        cell,
				Color:       win.Color(),
			})
		}

		if !unresolved {
			continue
		}
		standoffs[cell] = true
		if !g.standoffs[cell] {
			g.notify(event.Notice{
				Type:        event.NoticeUnresolved,
				TimestampMs: nowMs,
				PieceID:     win.ID(),
				Cell:        cell,
				Color:       win.Color(),
			})
		}
	}

	g.standoffs = standoffs

	if len(captured) == 0 {
		return
	}
	g.removePieces(captured)
}

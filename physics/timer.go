package physics

import (
	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
)

// timer is a fixed-position countdown that completes after durationMs
type timer struct {
	base
	durationMs int64
}

func (p *timer) Advance(nowMs int64) (core.Command, bool) {
	if p.elapsedMs(nowMs) >= p.durationMs {
		return p.done(nowMs), true
	}
	return core.Command{}, false
}

// Duration returns the configured countdown in milliseconds
func (p *timer) Duration() int64 { return p.durationMs }

// Rest is a cooldown: fixed cell, cannot capture, blocks movement
type Rest struct {
	timer
}

func NewRest(b board.Board, durationMs int64) *Rest {
	return &Rest{timer: timer{base: base{board: b}, durationMs: max(durationMs, 0)}}
}

func (p *Rest) Reset(cmd core.Command)  { p.place(cmd) }
func (p *Rest) Kind() Kind              { return KindRest }
func (p *Rest) CanCapture() bool        { return false }
func (p *Rest) CanBeCaptured() bool     { return true }
func (p *Rest) IsMovementBlocker() bool { return true }

// Jump lands on the destination instantly and stays airborne for durationMs
// With a single cell it is an in-place dodge
type Jump struct {
	timer
}

func NewJump(b board.Board, durationMs int64) *Jump {
	return &Jump{timer: timer{base: base{board: b}, durationMs: max(durationMs, 0)}}
}

func (p *Jump) Reset(cmd core.Command) {
	p.place(cmd)
	if len(cmd.Params) < 2 {
		return
	}
	p.endCell = cmd.Params[1]
	p.pos = p.board.CellToMetric(p.endCell)
}

func (p *Jump) Kind() Kind              { return KindJump }
func (p *Jump) CanCapture() bool        { return true }
func (p *Jump) CanBeCaptured() bool     { return false }
func (p *Jump) IsMovementBlocker() bool { return false }

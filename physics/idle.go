package physics

import (
	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
)

// Idle holds the source cell forever and never completes
type Idle struct {
	base
}

func NewIdle(b board.Board) *Idle {
	return &Idle{base: base{board: b}}
}

func (p *Idle) Reset(cmd core.Command)             { p.place(cmd) }
func (p *Idle) Advance(int64) (core.Command, bool) { return core.Command{}, false }
func (p *Idle) Kind() Kind                         { return KindIdle }
func (p *Idle) CanCapture() bool                   { return false }
func (p *Idle) CanBeCaptured() bool                { return true }
func (p *Idle) IsMovementBlocker() bool            { return true }

package physics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
)

// ErrZeroSpeed rejects a motion state that could never arrive
var ErrZeroSpeed = errors.New("physics: move speed is zero")

// Move interpolates linearly from source to destination at a constant speed
type Move struct {
	base
	speed      float64 // units per second, always positive
	from, to   board.Point
	durationMs float64
}

// NewMove returns a motion model; negative speed is taken by magnitude
func NewMove(b board.Board, speedUnitsPerSec float64) (*Move, error) {
	if speedUnitsPerSec == 0 || math.IsNaN(speedUnitsPerSec) {
		return nil, ErrZeroSpeed
	}
	return &Move{
		base:  base{board: b},
		speed: math.Abs(speedUnitsPerSec),
	}, nil
}

// Reset expects [src, dst]; a single cell degenerates to an instant arrival
func (p *Move) Reset(cmd core.Command) {
	p.place(cmd)
	if len(cmd.Params) > 1 {
		p.endCell = cmd.Params[1]
	}
	p.from = p.board.CellToMetric(p.startCell)
	p.to = p.board.CellToMetric(p.endCell)
	p.durationMs = board.Distance(p.from, p.to) / p.speed * 1000
}

func (p *Move) Advance(nowMs int64) (core.Command, bool) {
	elapsed := float64(p.elapsedMs(nowMs))
	if elapsed >= p.durationMs {
		p.pos = p.to
		return p.done(nowMs), true
	}
	p.pos = board.Lerp(p.from, p.to, elapsed/p.durationMs)
	return core.Command{}, false
}

// Speed returns the normalized speed in units per second
func (p *Move) Speed() float64 { return p.speed }

// Duration returns the travel time of the current trajectory in milliseconds
func (p *Move) Duration() float64 { return p.durationMs }

func (p *Move) Kind() Kind              { return KindMove }
func (p *Move) CanCapture() bool        { return true }
func (p *Move) CanBeCaptured() bool     { return true }
func (p *Move) IsMovementBlocker() bool { return false }

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine/fsm"
	"github.com/lixenwraith/kungfu-chess/physics"
)

// KingType is the piece type whose loss ends the game
const KingType = 'K'

// PieceID formats the canonical id: type, color, start cell
func PieceID(kind byte, color core.Color, home core.Cell) string {
	return fmt.Sprintf("%c%c_%d_%d", kind, byte(color), home.Row, home.Col)
}

// ParsePieceID splits an id produced by PieceID
func ParsePieceID(id string) (kind byte, color core.Color, home core.Cell, err error) {
	fields := strings.Split(id, "_")
	if len(fields) != 3 || len(fields[0]) != 2 {
		return 0, 0, core.Cell{}, errors.Wrapf(ErrBadPieceID, "%q", id)
	}
	color = core.Color(fields[0][1])
	if color != core.White && color != core.Black {
		return 0, 0, core.Cell{}, errors.Wrapf(ErrBadPieceID, "%q: color %q", id, fields[0][1])
	}
	row, err1 := strconv.Atoi(fields[1])
	col, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return 0, 0, core.Cell{}, errors.Wrapf(ErrBadPieceID, "%q: cell", id)
	}
	return fields[0][0], color, core.Cell{Row: row, Col: col}, nil
}

// Framer is implemented by presenters that expose a current sprite frame
type Framer interface {
	Frame() string
}

// Piece is an identity plus its own state graph
// Mutated only by the tick goroutine
type Piece struct {
	id      string
	kind    byte
	color   core.Color
	home    core.Cell
	machine *fsm.Machine
}

// NewPiece binds a machine to an id; the machine is reset to idle at the id's home cell
func NewPiece(id string, machine *fsm.Machine) (*Piece, error) {
	kind, color, home, err := ParsePieceID(id)
	if err != nil {
		return nil, err
	}
	p := &Piece{id: id, kind: kind, color: color, home: home, machine: machine}
	p.Reset(0)
	return p, nil
}

func (p *Piece) ID() string            { return p.id }
func (p *Piece) Kind() byte            { return p.kind }
func (p *Piece) Color() core.Color     { return p.color }
func (p *Piece) Home() core.Cell       { return p.home }
func (p *Piece) IsKing() bool          { return p.kind == KingType }
func (p *Piece) State() *fsm.State     { return p.machine.Current() }
func (p *Piece) StateName() string     { return p.machine.Current().Name }
func (p *Piece) Machine() *fsm.Machine { return p.machine }

func (p *Piece) physics() physics.Physics { return p.machine.Current().Physics }

func (p *Piece) Cell() core.Cell           { return p.physics().Cell() }
func (p *Piece) Position() board.Point     { return p.physics().Position() }
func (p *Piece) Pixel() board.Pixel        { return p.physics().Pixel() }
func (p *Piece) StartMs() int64            { return p.physics().StartMs() }
func (p *Piece) CanCapture() bool          { return p.physics().CanCapture() }
func (p *Piece) CanBeCaptured() bool       { return p.physics().CanBeCaptured() }
func (p *Piece) IsMovementBlocker() bool   { return p.physics().IsMovementBlocker() }
func (p *Piece) PhysicsKind() physics.Kind { return p.physics().Kind() }

// capturesThisTick is CanCapture extended to a capturing state that completed during this tick's update
func (p *Piece) capturesThisTick() bool { return p.CanCapture() || p.machine.ArrivedCapturing() }

// Frame returns the active sprite frame, or the type letter without a presenter
func (p *Piece) Frame() string {
	if f, ok := p.machine.Current().Presenter.(Framer); ok {
		if frame := f.Frame(); frame != "" {
			return frame
		}
	}
	return string(p.kind)
}

// Reset returns the piece to idle on its home cell at nowMs
func (p *Piece) Reset(nowMs int64) {
	p.machine.Reset(core.Command{
		TimestampMs: nowMs,
		PieceID:     p.id,
		Kind:        core.KindIdle,
		Params:      []core.Cell{p.home},
	})
}

// OnCommand dispatches cmd to the active state with this piece's color
func (p *Piece) OnCommand(cmd core.Command, occ core.Occupancy) (bool, error) {
	return p.machine.OnCommand(cmd, occ, p.color)
}

// Update advances the active state to nowMs
func (p *Piece) Update(nowMs int64) error {
	if err := p.machine.Update(nowMs); err != nil {
		return errors.Wrapf(err, "piece %s", p.id)
	}
	return nil
}

// Package physics turns a command into a timed trajectory on the board and
// reports an internal completion command when the timed behavior ends
package physics

import (
	"strings"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
)

// Kind selects the trajectory law of a state
type Kind uint8

const (
	KindIdle Kind = iota
	KindMove
	KindJump
	KindRest
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindJump:
		return "jump"
	case KindRest:
		return "rest"
	default:
		return "idle"
	}
}

// ParseKind resolves a configured kind name
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle":
		return KindIdle, true
	case "move":
		return KindMove, true
	case "jump":
		return KindJump, true
	case "rest":
		return KindRest, true
	}
	return KindIdle, false
}

// InferKind derives the kind from a state name when none is configured
// "move" and "jump" match exactly, any name ending in "rest" rests, all else idles
func InferKind(stateName string) Kind {
	name := strings.ToLower(stateName)
	switch {
	case name == "move":
		return KindMove
	case name == "jump":
		return KindJump
	case strings.HasSuffix(name, "rest"):
		return KindRest
	}
	return KindIdle
}

// Physics is the closed set of per-state trajectory models
// Each instance is owned by exactly one state and mutated only by Reset and Advance
type Physics interface {
	// Reset starts the trajectory described by cmd at cmd.TimestampMs
	Reset(cmd core.Command)
	// Advance moves the trajectory to nowMs; ok is true once with a "done" command when complete
	Advance(nowMs int64) (done core.Command, ok bool)

	Kind() Kind
	Position() board.Point
	Pixel() board.Pixel
	Cell() core.Cell
	StartMs() int64

	CanCapture() bool
	CanBeCaptured() bool
	IsMovementBlocker() bool

	sealed()
}

// base holds the trajectory state shared by all variants
type base struct {
	board     board.Board
	startCell core.Cell
	endCell   core.Cell
	pos       board.Point
	startMs   int64
}

func (b *base) Position() board.Point { return b.pos }
func (b *base) Pixel() board.Pixel    { return b.board.MetricToPixel(b.pos) }
func (b *base) Cell() core.Cell       { return b.board.MetricToCell(b.pos) }
func (b *base) StartMs() int64        { return b.startMs }
func (b *base) sealed()               {}

// place pins the trajectory to a single cell
func (b *base) place(cmd core.Command) {
	cell := b.Cell()
	if len(cmd.Params) > 0 {
		cell = cmd.Params[0]
	}
	b.startCell, b.endCell = cell, cell
	b.pos = b.board.CellToMetric(cell)
	b.startMs = cmd.TimestampMs
}

func (b *base) done(nowMs int64) core.Command {
	return core.Command{
		TimestampMs: nowMs,
		Kind:        core.KindDone,
		Params:      []core.Cell{b.endCell},
	}
}

// elapsedMs clamps commands stamped in the future to zero elapsed time
func (b *base) elapsedMs(nowMs int64) int64 {
	if nowMs < b.startMs {
		return 0
	}
	return nowMs - b.startMs
}

package input

import (
	"log"
	"sync"

	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
)

// Game is the part of the orchestrator a producer needs
type Game interface {
	Enqueue(cmd core.Command) bool
	Snapshot() *engine.Snapshot
}

// KeyboardProcessor turns one player's intents into commands
// Selection state is guarded; the cursor guards itself
type KeyboardProcessor struct {
	color  core.Color
	cursor *Cursor
	game   Game

	mu       sync.Mutex
	selected string // piece id, empty when nothing is selected
}

func NewKeyboardProcessor(color core.Color, cursor *Cursor, game Game) *KeyboardProcessor {
	return &KeyboardProcessor{color: color, cursor: cursor, game: game}
}

func (k *KeyboardProcessor) Color() core.Color { return k.color }
func (k *KeyboardProcessor) Cursor() *Cursor   { return k.cursor }

// Selected returns the selected piece id, if any
func (k *KeyboardProcessor) Selected() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.selected
}

// Handle applies an intent; returns the command submitted, if any
func (k *KeyboardProcessor) Handle(intent IntentType) (core.Command, bool) {
	if dr, dc, ok := intent.delta(); ok {
		k.cursor.Move(dr, dc)
		return core.Command{}, false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	switch intent {
	case IntentSelect:
		return k.selectAt(k.cursor.Cell())
	case IntentJump:
		return k.jumpTo(k.cursor.Cell())
	case IntentCancel:
		k.selected = ""
	}
	return core.Command{}, false
}

// selectAt picks an own piece, or sends the selection to target
func (k *KeyboardProcessor) selectAt(target core.Cell) (core.Command, bool) {
	snap := k.game.Snapshot()

	if k.selected == "" {
		if v, ok := k.ownPieceAt(snap, target); ok {
			k.selected = v.ID
			log.Printf("input %s: selected %s", k.color, v.ID)
		}
		return core.Command{}, false
	}

	sel, ok := snap.Piece(k.selected)
	if !ok {
		k.selected = ""
		return core.Command{}, false
	}
	if sel.Cell == target {
		k.selected = ""
		return core.Command{}, false
	}
	if v, ok := k.ownPieceAt(snap, target); ok {
		k.selected = v.ID
		return core.Command{}, false
	}

	k.selected = ""
	return k.submit(snap, core.Command{PieceID: sel.ID, Kind: core.KindMove, Params: []core.Cell{sel.Cell, target}})
}

// jumpTo jumps the selection to target, or dodges in place with the piece under the cursor
func (k *KeyboardProcessor) jumpTo(target core.Cell) (core.Command, bool) {
	snap := k.game.Snapshot()

	if k.selected != "" {
		sel, ok := snap.Piece(k.selected)
		k.selected = ""
		if !ok {
			return core.Command{}, false
		}
		params := []core.Cell{sel.Cell, target}
		if sel.Cell == target {
			params = params[:1]
		}
		return k.submit(snap, core.Command{PieceID: sel.ID, Kind: core.KindJump, Params: params})
	}

	if v, ok := k.ownPieceAt(snap, target); ok {
		return k.submit(snap, core.Command{PieceID: v.ID, Kind: core.KindJump, Params: []core.Cell{v.Cell}})
	}
	return core.Command{}, false
}

func (k *KeyboardProcessor) submit(snap *engine.Snapshot, cmd core.Command) (core.Command, bool) {
	cmd.TimestampMs = snap.NowMs
	if !k.game.Enqueue(cmd) {
		return core.Command{}, false
	}
	return cmd, true
}

func (k *KeyboardProcessor) ownPieceAt(snap *engine.Snapshot, cell core.Cell) (engine.PieceView, bool) {
	for _, v := range snap.PiecesAt(cell) {
		if v.Color == k.color {
			return v, true
		}
	}
	return engine.PieceView{}, false
}

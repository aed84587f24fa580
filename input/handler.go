package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// Pauser is toggled by the pause key
type Pauser interface {
	Pause()
	Resume()
}

// Handler routes terminal events to the players' processors
type Handler struct {
	keys    *KeyTable
	players []*KeyboardProcessor
	pauser  Pauser
	paused  bool
}

func NewHandler(keys *KeyTable, pauser Pauser, players ...*KeyboardProcessor) *Handler {
	return &Handler{keys: keys, players: players, pauser: pauser}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	b, ok := h.keys.Lookup(key)
	if !ok {
		return true
	}

	switch b.Intent {
	case IntentQuit:
		return false
	case IntentPause:
		h.togglePause()
		return true
	}

	if b.Player < 0 || b.Player >= len(h.players) {
		return true
	}
	if cmd, sent := h.players[b.Player].Handle(b.Intent); sent {
		log.Printf("input: player %d sent %v", b.Player, cmd)
	}
	return true
}

func (h *Handler) togglePause() {
	if h.pauser == nil {
		return
	}
	h.paused = !h.paused
	if h.paused {
		h.pauser.Pause()
	} else {
		h.pauser.Resume()
	}
}

// Players returns the processors in player order
func (h *Handler) Players() []*KeyboardProcessor { return h.players }

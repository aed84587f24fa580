package input

import "github.com/gdamore/tcell/v2"

// PlayerNone marks a system binding not owned by a player
const PlayerNone = -1

// Binding routes a key to a player's intent
type Binding struct {
	Player int
	Intent IntentType
}

// KeyTable maps keys to bindings
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	Keys map[tcell.Key]Binding

	// Printable keys
	Runes map[rune]Binding
}

// DefaultKeyTable returns the two-player layout
// Player 0: arrows, Enter selects, Space jumps, Backspace cancels
// Player 1: w/a/s/d, f selects, g jumps, e cancels
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyCtrlC:      {PlayerNone, IntentQuit},
			tcell.KeyCtrlQ:      {PlayerNone, IntentQuit},
			tcell.KeyUp:         {0, IntentUp},
			tcell.KeyDown:       {0, IntentDown},
			tcell.KeyLeft:       {0, IntentLeft},
			tcell.KeyRight:      {0, IntentRight},
			tcell.KeyEnter:      {0, IntentSelect},
			tcell.KeyBackspace:  {0, IntentCancel},
			tcell.KeyBackspace2: {0, IntentCancel},
		},
		Runes: map[rune]Binding{
			'q': {PlayerNone, IntentQuit},
			'p': {PlayerNone, IntentPause},
			' ': {0, IntentJump},
			'w': {1, IntentUp},
			's': {1, IntentDown},
			'a': {1, IntentLeft},
			'd': {1, IntentRight},
			'f': {1, IntentSelect},
			'g': {1, IntentJump},
			'e': {1, IntentCancel},
		},
	}
}

// Lookup translates a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := t.Runes[ev.Rune()]
		return b, ok
	}
	b, ok := t.Keys[ev.Key()]
	return b, ok
}

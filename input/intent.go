package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit  // Ctrl+C, Ctrl+Q, q
	IntentPause // p

	// Per-player cursor motion
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Per-player piece actions
	IntentSelect // pick a piece, then its destination
	IntentJump   // jump the selection to the cursor, or dodge in place
	IntentCancel // drop the selection
)

var intentNames = map[IntentType]string{
	IntentNone:   "none",
	IntentQuit:   "quit",
	IntentPause:  "pause",
	IntentUp:     "up",
	IntentDown:   "down",
	IntentLeft:   "left",
	IntentRight:  "right",
	IntentSelect: "select",
	IntentJump:   "jump",
	IntentCancel: "cancel",
}

func (i IntentType) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// delta returns the cursor step for motion intents
func (i IntentType) delta() (dr, dc int, ok bool) {
	switch i {
	case IntentUp:
		return -1, 0, true
	case IntentDown:
		return 1, 0, true
	case IntentLeft:
		return 0, -1, true
	case IntentRight:
		return 0, 1, true
	}
	return 0, 0, false
}

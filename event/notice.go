package event

import "github.com/lixenwraith/kungfu-chess/core"

// NoticeType classifies what happened during a tick
type NoticeType int

const (
	// NoticeMoveStarted: a command moved a piece out of idle
	NoticeMoveStarted NoticeType = iota
	// NoticeCapture: Other was removed by PieceID at Cell
	NoticeCapture
	// NoticeUnresolved: pieces share Cell but the survivor cannot capture
	NoticeUnresolved
	// NoticeRejected: a command was refused by the game (full queue, same-colour target, out of bounds)
	NoticeRejected
	// NoticeViolation: a command broke the source-cell contract; Err is set
	NoticeViolation
	// NoticeWin: Color is the winner
	NoticeWin
)

var noticeNames = map[NoticeType]string{
	NoticeMoveStarted: "MoveStarted",
	NoticeCapture:     "Capture",
	NoticeUnresolved:  "Unresolved",
	NoticeRejected:    "Rejected",
	NoticeViolation:   "Violation",
	NoticeWin:         "Win",
}

func (t NoticeType) String() string {
	if name, ok := noticeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Notice is an outcome of one tick, delivered to handlers after the tick completes
type Notice struct {
	Type        NoticeType
	TimestampMs int64
	PieceID     string
	Other       string // captured piece
	Cell        core.Cell
	Color       core.Color
	Command     core.Command
	Err         error
}

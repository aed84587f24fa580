package core

import (
	"fmt"
	"strings"
)

// Built-in command kinds; any other kind is whatever the loaded transition tables define
const (
	KindIdle = "idle"
	KindMove = "move"
	KindJump = "jump"
	KindDone = "done"
)

// Command is an immutable instruction for one piece
// An empty PieceID marks a completion event synthesized by physics
type Command struct {
	TimestampMs int64
	PieceID     string
	Kind        string
	Params      []Cell
}

// Internal reports whether the command was synthesized inside the core
func (c Command) Internal() bool {
	return c.PieceID == ""
}

// WithTimestamp returns a copy stamped with ts; Params are shared read-only
func (c Command) WithTimestamp(ts int64) Command {
	c.TimestampMs = ts
	return c
}

func (c Command) String() string {
	cells := make([]string, len(c.Params))
	for i, p := range c.Params {
		cells[i] = p.String()
	}
	id := c.PieceID
	if id == "" {
		id = "<internal>"
	}
	return fmt.Sprintf("Command(t=%d, piece=%s, kind=%s, params=[%s])", c.TimestampMs, id, c.Kind, strings.Join(cells, " "))
}

package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/engine/fsm"
)

var (
	// ErrInvalidBoard rejects a piece set that cannot start a game
	ErrInvalidBoard = errors.New("invalid board")

	// ErrSourceMismatch is the protocol-contract violation raised by a stale or misrouted command
	ErrSourceMismatch = fsm.ErrSourceMismatch

	// ErrBadPieceID rejects an id not of the form <type><color>_<row>_<col>
	ErrBadPieceID = errors.New("malformed piece id")
)

// IsViolation reports whether err is a command contract violation rather than a configuration failure
func IsViolation(err error) bool {
	return errors.Is(err, fsm.ErrSourceMismatch) || errors.Is(err, fsm.ErrBadParams)
}

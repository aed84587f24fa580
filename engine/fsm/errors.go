package fsm

import "github.com/pkg/errors"

var (
	// ErrSourceMismatch signals a command whose source cell is not where the piece is
	// It indicates a stale or misrouted command and is a contract violation
	ErrSourceMismatch = errors.New("command source is not the current cell")

	// ErrBadParams signals a move command without exactly a source and destination
	ErrBadParams = errors.New("move command needs source and destination")

	// ErrTransitionLoop signals completion events that never settle within one update
	ErrTransitionLoop = errors.New("completion chain did not settle")

	// ErrMissingInitial signals a graph without the idle state
	ErrMissingInitial = errors.New("state graph has no initial state")

	// ErrDuplicateState signals two states with the same name
	ErrDuplicateState = errors.New("duplicate state name")
)

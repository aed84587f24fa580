package physics

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/parameter"
)

// Config is the physics section of a state definition
type Config struct {
	Kind             Kind
	SpeedUnitsPerSec float64 // move only; zero is rejected
	DurationMs       int64   // jump and rest; 0 selects the default
	NeedClearPath    bool
}

// New builds a fresh instance for one state of one piece
func New(b board.Board, cfg Config) (Physics, error) {
	switch cfg.Kind {
	case KindIdle:
		return NewIdle(b), nil
	case KindMove:
		m, err := NewMove(b, cfg.SpeedUnitsPerSec)
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindJump:
		return NewJump(b, durationOr(cfg.DurationMs, parameter.DefaultJumpDurationMs)), nil
	case KindRest:
		return NewRest(b, durationOr(cfg.DurationMs, parameter.DefaultRestDurationMs)), nil
	}
	return nil, errors.Errorf("physics: unknown kind %d", cfg.Kind)
}

func durationOr(ms, def int64) int64 {
	if ms == 0 {
		return def
	}
	return ms
}

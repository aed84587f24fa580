package fsm

import (
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/physics"
	"github.com/lixenwraith/kungfu-chess/rules"
)

// StateID is the index of a state in its machine's arena
type StateID int

const StateNone StateID = -1

// InitialState is the state every piece starts in
const InitialState = "idle"

// Presenter is notified of state entry and elapsed time (animation)
type Presenter interface {
	Reset(cmd core.Command)
	Update(nowMs int64)
}

// State is a node of one piece's transition graph
// Moves is shared read-only across pieces; Physics and Presenter are owned
type State struct {
	ID            StateID
	Name          string
	Moves         *rules.Table // nil: no legal moves
	Physics       physics.Physics
	Presenter     Presenter // optional
	NeedClearPath bool

	// Edges (Immutable after Build)
	transitions map[string]StateID
}

// Next returns the target of an event, if any
func (s *State) Next(event string) (StateID, bool) {
	id, ok := s.transitions[event]
	return id, ok
}

// Events returns the number of outgoing edges
func (s *State) Events() int { return len(s.transitions) }

func (s *State) reset(cmd core.Command) {
	s.Physics.Reset(cmd)
	if s.Presenter != nil {
		s.Presenter.Reset(cmd)
	}
}

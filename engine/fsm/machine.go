package fsm

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/parameter"
)

// Machine is one piece's state arena and its current position in it
// The graph may contain cycles; edges are indices, never owning references
type Machine struct {
	// Graph Data (Immutable after Build)
	states  []*State
	byName  map[string]StateID
	initial StateID

	// Runtime State
	current StateID
	arrived bool // a state that can capture completed during the last Update
}

// Current returns the active state
func (m *Machine) Current() *State {
	return m.states[m.current]
}

// State returns a state by id
func (m *Machine) State(id StateID) *State {
	if id < 0 || int(id) >= len(m.states) {
		return nil
	}
	return m.states[id]
}

// Lookup resolves a state name
func (m *Machine) Lookup(name string) (StateID, bool) {
	id, ok := m.byName[name]
	return id, ok
}

// Len returns the number of states
func (m *Machine) Len() int { return len(m.states) }

// Reset re-enters the initial state with cmd (an idle command carrying the cell)
func (m *Machine) Reset(cmd core.Command) {
	m.current = m.initial
	m.arrived = false
	m.states[m.current].reset(cmd)
}

// ArrivedCapturing reports whether a state that can capture completed during the last Update
// The piece keeps that capability for the collision pass of the same tick
func (m *Machine) ArrivedCapturing() bool { return m.arrived }

// OnCommand applies an event to the active state
// Returns true when the machine moved to a new state
// Unknown events and illegal moves leave the machine untouched and return false, nil
// A move whose source is not the current cell is a contract violation
func (m *Machine) OnCommand(cmd core.Command, occ core.Occupancy, mover core.Color) (bool, error) {
	cur := m.Current()
	next, ok := cur.Next(cmd.Kind)
	if !ok {
		return false, nil
	}

	switch cmd.Kind {
	case core.KindMove:
		if len(cmd.Params) != 2 {
			return false, errors.Wrapf(ErrBadParams, "%v", cmd)
		}
		src, dst := cmd.Params[0], cmd.Params[1]
		if at := cur.Physics.Cell(); src != at {
			return false, errors.Wrapf(ErrSourceMismatch, "%s: source %v, piece at %v", cmd.PieceID, src, at)
		}
		if !cur.Moves.IsLegalMove(src, dst, occ, cur.NeedClearPath, mover) {
			log.Printf("fsm: %s illegal move %v -> %v in %s", cmd.PieceID, src, dst, cur.Name)
			return false, nil
		}
	case core.KindJump:
		if len(cmd.Params) >= 2 {
			if at := cur.Physics.Cell(); cmd.Params[0] != at {
				return false, errors.Wrapf(ErrSourceMismatch, "%s: jump source %v, piece at %v", cmd.PieceID, cmd.Params[0], at)
			}
		}
	}

	m.current = next
	m.states[next].reset(cmd)
	return true, nil
}

// Update advances the active physics to nowMs
// Completion events are re-dispatched synchronously until the machine settles
func (m *Machine) Update(nowMs int64) error {
	m.arrived = false
	for i := 0; i < parameter.MaxChainedTransitions; i++ {
		cur := m.Current()
		done, ok := cur.Physics.Advance(nowMs)
		if ok {
			if cur.Physics.CanCapture() {
				m.arrived = true
			}
			moved, err := m.OnCommand(done, nil, 0)
			if err != nil {
				return err
			}
			if moved {
				continue
			}
		}
		if cur.Presenter != nil {
			cur.Presenter.Update(nowMs)
		}
		return nil
	}
	return errors.Wrapf(ErrTransitionLoop, "state %s after %d transitions", m.Current().Name, parameter.MaxChainedTransitions)
}

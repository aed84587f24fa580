package fsm

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/physics"
	"github.com/lixenwraith/kungfu-chess/rules"
)

type edge struct {
	from, event, to string
}

// Builder assembles a machine in two phases: all states first, then edges by name
type Builder struct {
	states []*State
	byName map[string]StateID
	edges  []edge
	err    error
}

func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]StateID)}
}

// AddState appends a node to the arena; physics must be a fresh instance
func (b *Builder) AddState(name string, moves *rules.Table, phys physics.Physics, presenter Presenter, needClearPath bool) StateID {
	if b.err != nil {
		return StateNone
	}
	if _, dup := b.byName[name]; dup {
		b.err = errors.Wrapf(ErrDuplicateState, "%q", name)
		return StateNone
	}
	if phys == nil {
		b.err = errors.Errorf("state %q has no physics", name)
		return StateNone
	}

	id := StateID(len(b.states))
	b.states = append(b.states, &State{
		ID:            id,
		Name:          name,
		Moves:         moves,
		Physics:       phys,
		Presenter:     presenter,
		NeedClearPath: needClearPath,
		transitions:   make(map[string]StateID),
	})
	b.byName[name] = id
	return id
}

// AddTransition records an edge; it is resolved at Build time
func (b *Builder) AddTransition(from, event, to string) {
	b.edges = append(b.edges, edge{from: from, event: event, to: to})
}

// Build resolves edges and returns the machine positioned at the initial state
// Edges naming an unknown state are skipped; later edges for the same event override earlier ones
func (b *Builder) Build() (*Machine, error) {
	if b.err != nil {
		return nil, b.err
	}

	for _, e := range b.edges {
		from, ok := b.byName[e.from]
		if !ok {
			log.Printf("fsm: skip edge %s -%s-> %s: unknown source", e.from, e.event, e.to)
			continue
		}
		to, ok := b.byName[e.to]
		if !ok {
			log.Printf("fsm: skip edge %s -%s-> %s: unknown target", e.from, e.event, e.to)
			continue
		}
		b.states[from].transitions[e.event] = to
	}

	initial, ok := b.byName[InitialState]
	if !ok {
		return nil, ErrMissingInitial
	}

	return &Machine{
		states:  b.states,
		byName:  b.byName,
		initial: initial,
		current: initial,
	}, nil
}

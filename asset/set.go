package asset

import (
	"log"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
	"github.com/lixenwraith/kungfu-chess/engine/fsm"
	"github.com/lixenwraith/kungfu-chess/parameter"
	"github.com/lixenwraith/kungfu-chess/physics"
	"github.com/lixenwraith/kungfu-chess/rules"
	"github.com/lixenwraith/kungfu-chess/sprite"
)

// Set is a compiled piece catalogue plus the starting layout
// Rule tables are built once per (type, color, state) and shared by every piece instance
type Set struct {
	Source string
	Board  board.Board

	layout [][]string
	types  map[byte]*pieceType
}

type pieceType struct {
	kind        byte
	states      []*compiledState // sorted by name
	transitions []TransitionDef
}

type compiledState struct {
	name   string
	phys   physics.Config
	tables map[core.Color]*rules.Table
	sprite *sprite.Animation // prototype, cloned per piece
}

// Load compiles a set from file name -> content
func Load(files map[string]string, source string) (*Set, error) {
	boardData, ok := files[BoardFile]
	if !ok {
		return nil, errors.Errorf("%s: missing %s", source, BoardFile)
	}
	def, err := DecodeBoard(boardData)
	if err != nil {
		return nil, errors.Wrap(err, source)
	}

	layout := def.Layout()
	cols := len(layout[0])
	for r, row := range layout {
		if len(row) != cols {
			return nil, errors.Errorf("%s: board row %d has %d cells, want %d", source, r, len(row), cols)
		}
	}

	b, err := board.New(cols, len(layout),
		intOr(def.CellPxW, parameter.DefaultCellPixels), intOr(def.CellPxH, parameter.DefaultCellPixels),
		floatOr(def.CellUnitsW, parameter.DefaultCellUnits), floatOr(def.CellUnitsH, parameter.DefaultCellUnits))
	if err != nil {
		return nil, errors.Wrap(err, source)
	}

	s := &Set{Source: source, Board: b, layout: layout, types: make(map[byte]*pieceType)}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind, ok := typeFromFile(name)
		if !ok {
			continue
		}
		pdef, err := DecodePiece(name, files[name])
		if err != nil {
			return nil, errors.Wrap(err, source)
		}
		pt, err := compilePiece(kind, pdef, b)
		if err != nil {
			return nil, errors.Wrapf(err, "%s/%s", source, name)
		}
		s.types[kind] = pt
	}

	for r, row := range layout {
		for c, token := range row {
			if token == "" {
				continue
			}
			kind, _, err := parseToken(token)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: cell (%d,%d)", source, r, c)
			}
			if _, ok := s.types[kind]; !ok {
				return nil, errors.Wrapf(ErrUnknownPiece, "%s: %c at (%d,%d)", source, kind, r, c)
			}
		}
	}

	log.Printf("asset: loaded %d piece types from %s, board %dx%d", len(s.types), source, b.Rows(), b.Cols())
	return s, nil
}

// typeFromFile accepts single uppercase letter names like "K.toml"
func typeFromFile(name string) (byte, bool) {
	base, ok := strings.CutSuffix(name, ".toml")
	if !ok || len(base) != 1 || base[0] < 'A' || base[0] > 'Z' {
		return 0, false
	}
	return base[0], true
}

// parseToken splits a layout field such as "PW"
func parseToken(token string) (byte, core.Color, error) {
	if len(token) != 2 {
		return 0, 0, errors.Errorf("bad piece token %q", token)
	}
	color := core.Color(token[1])
	if color != core.White && color != core.Black {
		return 0, 0, errors.Errorf("bad color in token %q", token)
	}
	return token[0], color, nil
}

func compilePiece(kind byte, def *PieceDef, b board.Board) (*pieceType, error) {
	idle, ok := def.States[fsm.InitialState]
	if !ok {
		return nil, fsm.ErrMissingInitial
	}
	if len(idle.Graphics.Frames) == 0 {
		return nil, ErrMissingFrames
	}

	pt := &pieceType{kind: kind, transitions: def.Transitions}
	names := make([]string, 0, len(def.States))
	for name := range def.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st, err := compileState(name, def.States[name], idle, b)
		if err != nil {
			return nil, errors.Wrapf(err, "state %s", name)
		}
		pt.states = append(pt.states, st)
	}
	return pt, nil
}

func compileState(name string, def, idle StateDef, b board.Board) (*compiledState, error) {
	kind := physics.InferKind(name)
	if def.Kind != "" {
		k, ok := physics.ParseKind(def.Kind)
		if !ok {
			return nil, errors.Errorf("unknown kind %q", def.Kind)
		}
		kind = k
	}

	cfg := physics.Config{
		Kind:             kind,
		SpeedUnitsPerSec: parameter.DefaultMoveSpeed,
		DurationMs:       def.DurationMs,
		NeedClearPath:    def.NeedClearPath == nil || *def.NeedClearPath,
	}
	if def.SpeedUnitsPerSec != nil {
		cfg.SpeedUnitsPerSec = *def.SpeedUnitsPerSec
	}
	// Surface configuration errors (zero speed) at load, not at piece creation
	if _, err := physics.New(b, cfg); err != nil {
		return nil, err
	}

	st := &compiledState{name: name, phys: cfg, tables: make(map[core.Color]*rules.Table)}
	if def.Moves != nil {
		white, err := rules.ParseLines(def.Moves, b.Rows(), b.Cols())
		if err != nil {
			return nil, err
		}
		st.tables[core.White] = white
		st.tables[core.Black] = white.Mirrored()
	}

	gfx := def.Graphics
	if len(gfx.Frames) == 0 {
		gfx = idle.Graphics
	}
	loop := gfx.Loop == nil || *gfx.Loop
	anim, err := sprite.New(gfx.Frames, gfx.FPS, loop)
	if err != nil {
		return nil, err
	}
	st.sprite = anim
	return st, nil
}

// Types returns the loaded piece type letters in order
func (s *Set) Types() []byte {
	kinds := make([]byte, 0, len(s.types))
	for k := range s.types {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// NewPiece builds a piece with its own state graph, idle on cell
func (s *Set) NewPiece(kind byte, color core.Color, cell core.Cell) (*engine.Piece, error) {
	pt, ok := s.types[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPiece, "%c", kind)
	}

	bl := fsm.NewBuilder()
	for _, st := range pt.states {
		phys, err := physics.New(s.Board, st.phys)
		if err != nil {
			return nil, errors.Wrapf(err, "%c state %s", kind, st.name)
		}
		bl.AddState(st.name, st.tables[color], phys, st.sprite.Clone(), st.phys.NeedClearPath)
	}
	for _, tr := range pt.transitions {
		bl.AddTransition(tr.From, tr.Event, tr.To)
	}
	m, err := bl.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "%c", kind)
	}
	return engine.NewPiece(engine.PieceID(kind, color, cell), m)
}

// Pieces builds every piece of the starting layout
func (s *Set) Pieces() ([]*engine.Piece, error) {
	var pieces []*engine.Piece
	for r, row := range s.layout {
		for c, token := range row {
			if token == "" {
				continue
			}
			kind, color, err := parseToken(token)
			if err != nil {
				return nil, err
			}
			p, err := s.NewPiece(kind, color, core.Cell{Row: r, Col: c})
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, p)
		}
	}
	return pieces, nil
}

// NewGame builds the starting layout into a game
func (s *Set) NewGame(opts ...engine.Option) (*engine.Game, error) {
	pieces, err := s.Pieces()
	if err != nil {
		return nil, err
	}
	return engine.NewGame(s.Board, pieces, opts...)
}

func intOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func floatOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

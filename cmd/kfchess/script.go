package main

import (
	"bufio"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
)

// scriptStep is one line of a replay script
//
//	<at_ms> <piece_id|square> <kind> [square ...]
//
// at_ms is game time; a square as piece reference names whichever piece stands there when the step fires
// A move or jump given only its destination gets the piece's current cell as source
type scriptStep struct {
	AtMs   int64
	Piece  string
	Kind   string
	Params []core.Cell
	Line   int
}

// parseScript reads steps, skipping blanks and # comments, sorted by time with file order kept on ties
func parseScript(r io.Reader, b board.Board) ([]scriptStep, error) {
	var steps []scriptStep
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, errors.Errorf("script line %d: want <at_ms> <piece> <kind> [cells...]", line)
		}

		at, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || at < 0 {
			return nil, errors.Errorf("script line %d: bad time %q", line, fields[0])
		}
		step := scriptStep{AtMs: at, Piece: fields[1], Kind: fields[2], Line: line}
		for _, f := range fields[3:] {
			c, err := b.ParseCell(f)
			if err != nil {
				return nil, errors.Wrapf(err, "script line %d", line)
			}
			step.Params = append(step.Params, c)
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].AtMs < steps[j].AtMs })
	return steps, nil
}

// resolve turns a step into a command against the current snapshot
func (s scriptStep) resolve(snap *engine.Snapshot) (core.Command, error) {
	id := s.Piece
	if _, _, _, err := engine.ParsePieceID(id); err != nil {
		cell, cerr := snap.Board.ParseCell(id)
		if cerr != nil {
			return core.Command{}, errors.Errorf("script line %d: %q is neither a piece id nor a square", s.Line, id)
		}
		v, ok := snap.PieceAt(cell)
		if !ok {
			return core.Command{}, errors.Errorf("script line %d: no piece on %s", s.Line, id)
		}
		id = v.ID
	}

	params := s.Params
	if len(params) == 1 && (s.Kind == core.KindMove || s.Kind == core.KindJump) {
		v, ok := snap.Piece(id)
		if !ok {
			return core.Command{}, errors.Errorf("script line %d: unknown piece %s", s.Line, id)
		}
		params = []core.Cell{v.Cell, params[0]}
	}
	return core.Command{
		TimestampMs: snap.NowMs,
		PieceID:     id,
		Kind:        s.Kind,
		Params:      params,
	}, nil
}

// scriptRunner feeds due steps into the game tick by tick
type scriptRunner struct {
	steps []scriptStep
	next  int
}

// feed enqueues every step due at nowMs; unresolvable steps are logged and skipped
func (r *scriptRunner) feed(g *engine.Game, nowMs int64) {
	for r.next < len(r.steps) && r.steps[r.next].AtMs <= nowMs {
		step := r.steps[r.next]
		r.next++
		cmd, err := step.resolve(g.Snapshot())
		if err != nil {
			log.Printf("script: %v", err)
			g.Stats().SetMessage("%v", err)
			continue
		}
		if !g.Enqueue(cmd) {
			log.Printf("script: queue full, dropped %v", cmd)
		}
	}
}

func (r *scriptRunner) done() bool { return r.next >= len(r.steps) }

// lastMs is the time of the final step, zero for an empty script
func (r *scriptRunner) lastMs() int64 {
	if len(r.steps) == 0 {
		return 0
	}
	return r.steps[len(r.steps)-1].AtMs
}

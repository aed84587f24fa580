package engine

import (
	"context"
	"log"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/event"
	"github.com/lixenwraith/kungfu-chess/status"
)

// Game owns the pieces and drives the tick loop
// Thread-Safety:
//   - Enqueue, Now, Snapshot, Stop, Pause, Resume: any goroutine
//   - Start, Tick, Run: the single loop goroutine
type Game struct {
	id    uuid.UUID
	board board.Board

	// Loop-owned state
	pieces  []*Piece // sorted by id
	byID    map[string]*Piece
	occ     occupancy
	started bool
	ticks   uint64
	over    bool
	winner  core.Color
	notices []event.Notice

	standoffs map[core.Cell]bool // cells left unresolved by the last collision pass

	queue  *event.CommandQueue
	clock  *GameClock
	router *event.Router[*Snapshot]
	stats  *status.Registry

	tickInterval time.Duration
	onViolation  ViolationHandler

	stopped atomic.Bool
	latest  atomic.Pointer[Snapshot]
}

// NewGame validates the piece set and returns a game ready to Start
// Fails with ErrInvalidBoard unless each color has exactly one king and no two pieces share a cell
func NewGame(b board.Board, pieces []*Piece, opts ...Option) (*Game, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeScale <= 0 || math.IsNaN(o.timeScale) || math.IsInf(o.timeScale, 0) {
		return nil, errors.Errorf("time scale %v must be positive", o.timeScale)
	}
	if err := validatePieces(b, pieces); err != nil {
		return nil, err
	}

	sorted := make([]*Piece, len(pieces))
	copy(sorted, pieces)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })

	g := &Game{
		id:           uuid.New(),
		board:        b,
		pieces:       sorted,
		byID:         make(map[string]*Piece, len(sorted)),
		queue:        event.NewCommandQueue(),
		clock:        NewGameClock(o.provider, o.timeScale),
		router:       event.NewRouter[*Snapshot](),
		stats:        o.stats,
		tickInterval: o.tickInterval,
		onViolation:  o.onViolation,
	}
	if g.stats == nil {
		g.stats = status.NewRegistry()
	}
	for _, p := range sorted {
		g.byID[p.ID()] = p
	}
	for _, h := range o.handlers {
		g.router.Register(h)
	}
	g.occ = buildOccupancy(g.pieces)
	g.latest.Store(g.snapshot(0))
	return g, nil
}

func validatePieces(b board.Board, pieces []*Piece) error {
	if len(pieces) == 0 {
		return errors.Wrap(ErrInvalidBoard, "no pieces")
	}
	kings := make(map[core.Color]int)
	ids := make(map[string]bool, len(pieces))
	cells := make(map[core.Cell]string, len(pieces))
	for _, p := range pieces {
		if ids[p.ID()] {
			return errors.Wrapf(ErrInvalidBoard, "duplicate piece id %s", p.ID())
		}
		ids[p.ID()] = true

		c := p.Cell()
		if !b.InBounds(c) {
			return errors.Wrapf(ErrInvalidBoard, "%s off board at %v", p.ID(), c)
		}
		if other, dup := cells[c]; dup {
			return errors.Wrapf(ErrInvalidBoard, "%s and %s both start at %v", other, p.ID(), c)
		}
		cells[c] = p.ID()

		if p.IsKing() {
			kings[p.Color()]++
		}
	}
	for _, color := range core.Colors {
		if kings[color] != 1 {
			return errors.Wrapf(ErrInvalidBoard, "%s has %d kings", color, kings[color])
		}
	}
	return nil
}

// ID returns the session identifier
func (g *Game) ID() uuid.UUID { return g.id }

func (g *Game) shortID() string { return g.id.String()[:8] }

// Board returns the geometry
func (g *Game) Board() board.Board { return g.board }

// Stats returns the metrics registry
func (g *Game) Stats() *status.Registry { return g.stats }

// Now returns scaled simulated milliseconds since Start
func (g *Game) Now() int64 { return g.clock.NowMs() }

// Pause freezes simulated time; ticks keep running but nothing advances
func (g *Game) Pause() { g.clock.Pause() }

func (g *Game) Resume() { g.clock.Resume() }

// Stop asks Run to return before its next tick
func (g *Game) Stop() { g.stopped.Store(true) }

// Snapshot returns the state published by the latest tick
func (g *Game) Snapshot() *Snapshot { return g.latest.Load() }

// Enqueue submits an external command; safe from any goroutine
// Returns false when the input queue is full
func (g *Game) Enqueue(cmd core.Command) bool {
	if g.queue.Push(cmd) {
		return true
	}
	g.stats.Inc(status.KeyDropped)
	log.Printf("game %s: queue full, dropped %v", g.shortID(), cmd)
	return false
}

// Pieces returns the live pieces sorted by id; loop goroutine only
func (g *Game) Pieces() []*Piece { return g.pieces }

// Piece looks up a live piece; loop goroutine only
func (g *Game) Piece(id string) (*Piece, bool) {
	p, ok := g.byID[id]
	return p, ok
}

// IsWin reports whether some color has lost its king
func (g *Game) IsWin() bool { return g.over }

// Winner returns the color still holding a king, zero if none
func (g *Game) Winner() core.Color { return g.winner }

// Start zeroes the clock and resets every piece to idle on its home cell
func (g *Game) Start() {
	g.clock.Start()
	now := g.Now()
	for _, p := range g.pieces {
		p.Reset(now)
	}
	g.occ = buildOccupancy(g.pieces)
	g.started = true
	g.latest.Store(g.snapshot(now))
	log.Printf("game %s: started with %d pieces", g.shortID(), len(g.pieces))
}

// Tick runs one iteration: drain, advance, rebuild, collide, win check
// A contract violation aborts the rest of the drain and is returned after the tick completes
// A configuration failure (completion chain loop) is returned as well
func (g *Game) Tick() error {
	if !g.started {
		g.Start()
	}
	if g.over {
		return nil
	}

	now := g.Now()
	g.notices = g.notices[:0]

	g.occ = buildOccupancy(g.pieces)
	err := g.drain(now)

	if uerr := g.advance(now); uerr != nil && err == nil {
		err = uerr
	}

	g.occ = buildOccupancy(g.pieces)
	g.resolveCollisions(now)
	g.checkWin(now)

	g.ticks++
	g.stats.Inc(status.KeyTicks)
	snap := g.snapshot(now)
	g.latest.Store(snap)
	g.router.Dispatch(snap, g.notices)
	return err
}

// drain dispatches every queued command present now; never waits for more
func (g *Game) drain(now int64) error {
	cmds := g.queue.Consume()
	for i, cmd := range cmds {
		if err := g.dispatch(cmd, now); err != nil {
			g.stats.Inc(status.KeyViolations)
			g.notify(event.Notice{
				Type:        event.NoticeViolation,
				TimestampMs: now,
				PieceID:     cmd.PieceID,
				Command:     cmd,
				Err:         err,
			})
			for _, dropped := range cmds[i+1:] {
				g.reject(dropped, now, "dropped after contract violation")
			}
			return err
		}
	}
	return nil
}

func (g *Game) dispatch(cmd core.Command, now int64) error {
	g.stats.Inc(status.KeyCommands)
	p, ok := g.byID[cmd.PieceID]
	if !ok {
		g.reject(cmd, now, "unknown piece")
		return nil
	}
	cmd = cmd.WithTimestamp(now)

	if (cmd.Kind == core.KindMove || cmd.Kind == core.KindJump) && len(cmd.Params) >= 2 {
		dst := cmd.Params[1]
		if !g.board.InBounds(dst) {
			g.reject(cmd, now, "destination off board")
			return nil
		}
		for _, occupant := range g.occ[dst] {
			if occupant != p && occupant.Color() == p.Color() {
				g.reject(cmd, now, "destination holds "+occupant.ID())
				return nil
			}
		}
	}

	from := p.StateName()
	moved, err := p.OnCommand(cmd, g.occ)
	if err != nil {
		log.Printf("game %s: contract violation: %v", g.shortID(), err)
		return err
	}
	if !moved {
		g.reject(cmd, now, "not accepted in "+from)
		return nil
	}

	// Jumps relocate instantly; later commands in this drain must see it
	g.occ = buildOccupancy(g.pieces)
	g.notify(event.Notice{
		Type:        event.NoticeMoveStarted,
		TimestampMs: now,
		PieceID:     p.ID(),
		Cell:        p.Cell(),
		Color:       p.Color(),
		Command:     cmd,
	})
	return nil
}

func (g *Game) reject(cmd core.Command, now int64, reason string) {
	g.stats.Inc(status.KeyRejected)
	log.Printf("game %s: rejected %v: %s", g.shortID(), cmd, reason)
	g.notify(event.Notice{
		Type:        event.NoticeRejected,
		TimestampMs: now,
		PieceID:     cmd.PieceID,
		Command:     cmd,
	})
}

// advance updates every piece; the first configuration error is returned, the rest are logged
func (g *Game) advance(now int64) error {
	var first error
	for _, p := range g.pieces {
		if err := p.Update(now); err != nil {
			log.Printf("game %s: %v", g.shortID(), err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (g *Game) removePieces(captured map[*Piece]bool) {
	kept := g.pieces[:0]
	for _, p := range g.pieces {
		if captured[p] {
			delete(g.byID, p.ID())
			g.stats.Inc(status.KeyCaptures)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(g.pieces); i++ {
		g.pieces[i] = nil
	}
	g.pieces = kept
	g.occ = buildOccupancy(g.pieces)
}

func (g *Game) checkWin(now int64) {
	kings := make(map[core.Color]int)
	for _, p := range g.pieces {
		if p.IsKing() {
			kings[p.Color()]++
		}
	}

	var alive []core.Color
	for _, color := range core.Colors {
		if kings[color] > 0 {
			alive = append(alive, color)
		}
	}
	if len(alive) == len(core.Colors) {
		return
	}

	g.over = true
	if len(alive) == 1 {
		g.winner = alive[0]
	}
	if g.winner != 0 {
		g.stats.SetMessage("%s wins", g.winner)
	} else {
		g.stats.SetMessage("both kings fell")
	}
	log.Printf("game %s: over, winner %s", g.shortID(), g.winner)
	g.notify(event.Notice{Type: event.NoticeWin, TimestampMs: now, Color: g.winner})
}

func (g *Game) notify(n event.Notice) {
	if n.Type == event.NoticeUnresolved {
		g.stats.Inc(status.KeyUnresolved)
	}
	g.notices = append(g.notices, n)
}

// Run ticks until the game is won, Stop is called, ctx ends, or iterations ticks have run
// iterations <= 0 runs without a limit
// Contract violations go to the violation handler; a chain loop always stops the run
func (g *Game) Run(ctx context.Context, iterations int) error {
	if !g.started {
		g.Start()
	}

	var ticker *time.Ticker
	if g.tickInterval > 0 {
		ticker = time.NewTicker(g.tickInterval)
		defer ticker.Stop()
	}

	for i := 0; iterations <= 0 || i < iterations; i++ {
		if g.stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := g.Tick(); err != nil {
			if !IsViolation(err) {
				return err
			}
			if herr := g.onViolation(err); herr != nil {
				return herr
			}
		}
		if g.over {
			return nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
	return nil
}

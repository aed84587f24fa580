package engine

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/board"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine/fsm"
	"github.com/lixenwraith/kungfu-chess/event"
	"github.com/lixenwraith/kungfu-chess/physics"
	"github.com/lixenwraith/kungfu-chess/rules"
	"github.com/lixenwraith/kungfu-chess/status"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func testBoard(t *testing.T) board.Board {
	t.Helper()
	b, err := board.New(8, 8, 64, 64, 1, 1)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	return b
}

// pieceSpec describes a minimal piece type for tests
type pieceSpec struct {
	moves     []string
	clearPath bool
	speed     float64
	restMs    int64
	jumpMs    int64
}

var (
	kingSpec   = pieceSpec{moves: []string{"-1,0", "1,0", "0,-1", "0,1", "-1,-1", "-1,1", "1,-1", "1,1"}, clearPath: true, speed: 1, restMs: 500}
	rookSpec   = pieceSpec{moves: []string{"-1,0", "-2,0", "-3,0", "1,0", "2,0", "0,1", "0,-1"}, clearPath: true, speed: 2, restMs: 500}
	knightSpec = pieceSpec{moves: []string{"-2,1", "-2,-1", "2,1", "2,-1"}, clearPath: false, speed: 2, restMs: 500}
	pawnSpec   = pieceSpec{moves: []string{"-1,0:non_capture", "-2,0:non_capture", "-1,-1:capture", "-1,1:capture"}, clearPath: true, speed: 4, restMs: 500, jumpMs: 1000}
)

func newPiece(t *testing.T, b board.Board, kind byte, color core.Color, cell core.Cell, s pieceSpec) *Piece {
	t.Helper()
	tbl, err := rules.ParseLines(s.moves, b.Rows(), b.Cols())
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if color == core.Black {
		tbl = tbl.Mirrored()
	}
	mv, err := physics.NewMove(b, s.speed)
	if err != nil {
		t.Fatalf("move: %v", err)
	}

	bl := fsm.NewBuilder()
	bl.AddState("idle", tbl, physics.NewIdle(b), nil, s.clearPath)
	bl.AddState("move", nil, mv, nil, false)
	bl.AddState("jump", nil, physics.NewJump(b, max(s.jumpMs, 300)), nil, false)
	bl.AddState("long_rest", nil, physics.NewRest(b, s.restMs), nil, false)
	bl.AddTransition("idle", core.KindMove, "move")
	bl.AddTransition("idle", core.KindJump, "jump")
	bl.AddTransition("move", core.KindDone, "long_rest")
	bl.AddTransition("jump", core.KindDone, "idle")
	bl.AddTransition("long_rest", core.KindDone, "idle")
	m, err := bl.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	p, err := NewPiece(PieceID(kind, color, cell), m)
	if err != nil {
		t.Fatalf("piece: %v", err)
	}
	return p
}

type fixture struct {
	t     *testing.T
	b     board.Board
	clock *MockTimeProvider
	game  *Game
	seen  []event.Notice
}

func cell(r, c int) core.Cell { return core.Cell{Row: r, Col: c} }

// newFixture places both kings on row 0/7 corners plus extra pieces
func newFixture(t *testing.T, extra func(b board.Board) []*Piece, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{t: t, b: testBoard(t), clock: NewMockTimeProvider(epoch)}
	pieces := []*Piece{
		newPiece(t, f.b, 'K', core.White, cell(7, 7), kingSpec),
		newPiece(t, f.b, 'K', core.Black, cell(0, 7), kingSpec),
	}
	if extra != nil {
		pieces = append(pieces, extra(f.b)...)
	}
	opts = append([]Option{
		WithTimeProvider(f.clock),
		WithTickInterval(0),
		WithHandler(event.HandlerFunc[*Snapshot]{
			Fn: func(_ *Snapshot, n event.Notice) { f.seen = append(f.seen, n) },
			Types: []event.NoticeType{
				event.NoticeMoveStarted, event.NoticeCapture, event.NoticeUnresolved,
				event.NoticeRejected, event.NoticeViolation, event.NoticeWin,
			},
		}),
	}, opts...)

	g, err := NewGame(f.b, pieces, opts...)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Start()
	f.game = g
	return f
}

// step advances wall time then ticks
func (f *fixture) step(d time.Duration) error {
	f.clock.Advance(d)
	return f.game.Tick()
}

// run ticks n times at interval d and fails on any error
func (f *fixture) run(n int, d time.Duration) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		if err := f.step(d); err != nil {
			f.t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func (f *fixture) move(id string, src, dst core.Cell) {
	f.t.Helper()
	if !f.game.Enqueue(core.Command{PieceID: id, Kind: core.KindMove, Params: []core.Cell{src, dst}}) {
		f.t.Fatal("enqueue refused")
	}
}

func (f *fixture) piece(id string) *Piece {
	f.t.Helper()
	p, ok := f.game.Piece(id)
	if !ok {
		f.t.Fatalf("piece %s missing", id)
	}
	return p
}

func (f *fixture) count(typ event.NoticeType) int {
	n := 0
	for _, s := range f.seen {
		if s.Type == typ {
			n++
		}
	}
	return n
}

func TestPawnAdvance(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'P', core.White, cell(6, 0), pawnSpec)}
	})

	f.move("PW_6_0", cell(6, 0), cell(4, 0))
	f.run(1, 0)
	if got := f.piece("PW_6_0").StateName(); got != "move" {
		t.Fatalf("state %s, want move", got)
	}

	f.run(20, 50*time.Millisecond)
	p := f.piece("PW_6_0")
	if p.Cell() != cell(4, 0) {
		t.Errorf("pawn at %v, want (4,0)", p.Cell())
	}
	if p.Position() != f.b.CellToMetric(cell(4, 0)) {
		t.Errorf("pawn position %v not exact", p.Position())
	}
	if p.StateName() != "idle" {
		t.Errorf("state %s, want idle after rest", p.StateName())
	}
}

func TestKnightJumpsOverPieces(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{
			newPiece(t, b, 'N', core.White, cell(7, 1), knightSpec),
			newPiece(t, b, 'P', core.White, cell(6, 1), pawnSpec),
			newPiece(t, b, 'P', core.White, cell(6, 2), pawnSpec),
		}
	})

	f.move("NW_7_1", cell(7, 1), cell(5, 2))
	f.run(30, 50*time.Millisecond)
	if got := f.piece("NW_7_1").Cell(); got != cell(5, 2) {
		t.Errorf("knight at %v, want (5,2)", got)
	}
}

func TestRookBlockedByOwnPiece(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{
			newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec),
			newPiece(t, b, 'P', core.White, cell(6, 0), pawnSpec),
		}
	})

	f.move("RW_7_0", cell(7, 0), cell(5, 0))
	f.run(10, 50*time.Millisecond)
	r := f.piece("RW_7_0")
	if r.Cell() != cell(7, 0) || r.StateName() != "idle" {
		t.Errorf("rook %s at %v, want idle at (7,0)", r.StateName(), r.Cell())
	}
	if f.count(event.NoticeRejected) != 1 {
		t.Errorf("expected 1 rejected notice, got %d", f.count(event.NoticeRejected))
	}
}

func TestRejectedCommandIdempotent(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec)}
	})
	r := f.piece("RW_7_0")

	for i := 0; i < 2; i++ {
		f.move("RW_7_0", cell(7, 0), cell(6, 1))
		f.run(1, 10*time.Millisecond)
		if r.Cell() != cell(7, 0) || r.StateName() != "idle" || r.StartMs() != 0 {
			t.Errorf("attempt %d: %s at %v start %d", i, r.StateName(), r.Cell(), r.StartMs())
		}
	}
}

func TestCaptureByMover(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{
			newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec),
			newPiece(t, b, 'P', core.Black, cell(5, 0), pawnSpec),
		}
	})

	f.run(1, 100*time.Millisecond)
	f.move("RW_7_0", cell(7, 0), cell(5, 0))
	f.run(20, 100*time.Millisecond)

	if _, ok := f.game.Piece("PB_5_0"); ok {
		t.Error("black pawn should be captured")
	}
	if got := f.piece("RW_7_0").Cell(); got != cell(5, 0) {
		t.Errorf("rook at %v, want (5,0)", got)
	}
	if f.count(event.NoticeCapture) != 1 {
		t.Errorf("expected 1 capture, got %d", f.count(event.NoticeCapture))
	}
	if f.game.IsWin() {
		t.Error("capturing a pawn must not end the game")
	}
}

func TestSameColorDestinationRejected(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{
			newPiece(t, b, 'N', core.White, cell(7, 1), knightSpec),
			newPiece(t, b, 'P', core.White, cell(5, 2), pawnSpec),
		}
	})

	f.move("NW_7_1", cell(7, 1), cell(5, 2))
	f.run(1, 10*time.Millisecond)
	if got := f.piece("NW_7_1").StateName(); got != "idle" {
		t.Errorf("knight state %s, want idle", got)
	}
	if len(f.game.Pieces()) != 4 {
		t.Errorf("expected 4 pieces, got %d", len(f.game.Pieces()))
	}
}

func TestUnknownPieceDropped(t *testing.T) {
	f := newFixture(t, nil)
	f.move("QW_7_3", cell(7, 3), cell(5, 3))
	f.run(1, 10*time.Millisecond)
	if f.count(event.NoticeRejected) != 1 {
		t.Errorf("expected a rejected notice, got %d", f.count(event.NoticeRejected))
	}
}

func TestKingCaptureWins(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'R', core.White, cell(3, 7), rookSpec)}
	})

	f.run(1, 100*time.Millisecond)
	if f.game.IsWin() {
		t.Fatal("game over with both kings alive")
	}

	f.move("RW_3_7", cell(3, 7), cell(0, 7))
	for i := 0; i < 30 && !f.game.IsWin(); i++ {
		f.run(1, 100*time.Millisecond)
	}

	if !f.game.IsWin() {
		t.Fatal("expected win after black king captured")
	}
	if f.game.Winner() != core.White {
		t.Errorf("winner %s, want white", f.game.Winner())
	}
	if f.count(event.NoticeWin) != 1 {
		t.Errorf("expected 1 win notice, got %d", f.count(event.NoticeWin))
	}
	snap := f.game.Snapshot()
	if !snap.Over || snap.Winner != core.White {
		t.Errorf("snapshot over=%v winner=%s", snap.Over, snap.Winner)
	}
}

func TestSourceMismatchViolation(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec)}
	})

	f.move("RW_7_0", cell(6, 0), cell(5, 0))
	f.move("KW_7_7", cell(7, 7), cell(6, 7))
	err := f.step(10 * time.Millisecond)
	if !errors.Is(err, ErrSourceMismatch) {
		t.Fatalf("expected ErrSourceMismatch, got %v", err)
	}
	if !IsViolation(err) {
		t.Error("IsViolation false for source mismatch")
	}
	if f.count(event.NoticeViolation) != 1 {
		t.Errorf("expected violation notice")
	}
	// the rest of the drain was aborted and reported
	if got := f.piece("KW_7_7").StateName(); got != "idle" {
		t.Errorf("king state %s, want idle", got)
	}
	if f.count(event.NoticeRejected) != 1 {
		t.Errorf("expected 1 rejected notice for the dropped command, got %d", f.count(event.NoticeRejected))
	}
	if got := f.game.Stats().Count(status.KeyRejected); got != 1 {
		t.Errorf("rejected counter %d, want 1", got)
	}
}

func TestCommandsRestamped(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec)}
	})
	f.clock.Advance(400 * time.Millisecond)
	f.game.Enqueue(core.Command{TimestampMs: 99999, PieceID: "RW_7_0", Kind: core.KindMove, Params: []core.Cell{cell(7, 0), cell(5, 0)}})
	if err := f.game.Tick(); err != nil {
		t.Fatal(err)
	}
	if got := f.piece("RW_7_0").StartMs(); got != 400 {
		t.Errorf("move started at %d, want 400", got)
	}
}

func TestJumpDodgesCapture(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{
			newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec),
			newPiece(t, b, 'P', core.Black, cell(6, 0), pawnSpec),
		}
	})

	// pawn is airborne from 50ms to 1050ms
	f.game.Enqueue(core.Command{PieceID: "PB_6_0", Kind: core.KindJump, Params: []core.Cell{cell(6, 0)}})
	f.run(1, 50*time.Millisecond)
	// rook starts at 100ms and rounds into (6,0) after 350ms
	f.move("RW_7_0", cell(7, 0), cell(6, 0))
	f.run(8, 50*time.Millisecond)

	if got := f.piece("RW_7_0").Cell(); got != cell(6, 0) {
		t.Fatalf("rook at %v, want (6,0)", got)
	}
	if _, ok := f.game.Piece("PB_6_0"); !ok {
		t.Fatal("airborne pawn was captured")
	}
	if f.count(event.NoticeUnresolved) != 1 {
		t.Errorf("expected one unresolved notice while airborne, got %d", f.count(event.NoticeUnresolved))
	}
	if f.count(event.NoticeCapture) != 0 {
		t.Errorf("unexpected capture")
	}
}

func TestTimeScale(t *testing.T) {
	f := newFixture(t, nil, WithTimeScale(4))
	f.clock.Advance(250 * time.Millisecond)
	if got := f.game.Now(); got != 1000 {
		t.Errorf("Now = %d, want 1000", got)
	}
}

func TestPauseFreezesTime(t *testing.T) {
	f := newFixture(t, nil)
	f.clock.Advance(100 * time.Millisecond)
	f.game.Pause()
	f.clock.Advance(time.Second)
	if got := f.game.Now(); got != 100 {
		t.Errorf("paused Now = %d, want 100", got)
	}
	f.game.Resume()
	f.clock.Advance(50 * time.Millisecond)
	if got := f.game.Now(); got != 150 {
		t.Errorf("resumed Now = %d, want 150", got)
	}
}

func TestInvalidBoard(t *testing.T) {
	b := testBoard(t)
	wk := func() *Piece { return newPiece(t, b, 'K', core.White, cell(7, 4), kingSpec) }
	bk := func() *Piece { return newPiece(t, b, 'K', core.Black, cell(0, 4), kingSpec) }

	cases := []struct {
		name   string
		pieces []*Piece
	}{
		{"empty", nil},
		{"missing black king", []*Piece{wk()}},
		{"two white kings", []*Piece{wk(), bk(), newPiece(t, b, 'K', core.White, cell(7, 3), kingSpec)}},
		{"shared cell", []*Piece{wk(), bk(), newPiece(t, b, 'R', core.White, cell(0, 4), rookSpec)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGame(b, tc.pieces); !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("expected ErrInvalidBoard, got %v", err)
			}
		})
	}

	if _, err := NewGame(b, []*Piece{wk(), bk()}, WithTimeScale(0)); err == nil {
		t.Error("zero time scale accepted")
	}
}

func TestRunIterationsAndStop(t *testing.T) {
	f := newFixture(t, nil)
	if err := f.game.Run(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if got := f.game.Snapshot().Tick; got != 5 {
		t.Errorf("ticks %d, want 5", got)
	}

	f.game.Stop()
	if err := f.game.Run(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if got := f.game.Snapshot().Tick; got != 5 {
		t.Errorf("ticks after Stop %d, want 5", got)
	}
}

func TestRunContextCancelled(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.game.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunViolationHandler(t *testing.T) {
	var handled []error
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec)}
	}, WithViolationHandler(func(err error) error {
		handled = append(handled, err)
		return nil
	}))

	f.move("RW_7_0", cell(1, 1), cell(5, 0))
	if err := f.game.Run(context.Background(), 3); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(handled) != 1 {
		t.Errorf("handler called %d times, want 1", len(handled))
	}

	// default handler stops the run
	g := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec)}
	})
	g.move("RW_7_0", cell(1, 1), cell(5, 0))
	if err := g.game.Run(context.Background(), 3); !errors.Is(err, ErrSourceMismatch) {
		t.Errorf("expected ErrSourceMismatch from Run, got %v", err)
	}
}

func TestSnapshotViews(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{newPiece(t, b, 'P', core.White, cell(6, 0), pawnSpec)}
	})
	f.run(1, 0)
	snap := f.game.Snapshot()
	if len(snap.Pieces) != 3 {
		t.Fatalf("snapshot has %d pieces", len(snap.Pieces))
	}
	v, ok := snap.PieceAt(cell(6, 0))
	if !ok || v.ID != "PW_6_0" || !v.Blocker || v.State != "idle" || v.Frame != "P" {
		t.Errorf("PieceAt(6,0) = %+v", v)
	}
	if colors := snap.ColorsAt(cell(6, 0)); len(colors) != 1 || colors[0] != core.White {
		t.Errorf("ColorsAt = %v", colors)
	}
	if v.Pixel != (board.Pixel{X: 0, Y: 6 * 64}) {
		t.Errorf("pixel %v", v.Pixel)
	}
	if snap.GameID != f.game.ID().String() {
		t.Error("snapshot game id mismatch")
	}
}

func TestQueueFullCounted(t *testing.T) {
	f := newFixture(t, nil)
	for f.game.Enqueue(core.Command{PieceID: "KW_7_7", Kind: "noop"}) {
	}
	if f.game.Stats().Count("dropped") != 1 {
		t.Errorf("dropped = %d", f.game.Stats().Count("dropped"))
	}
}

func TestCaptureIndependentOfTickSize(t *testing.T) {
	tests := []struct {
		name  string
		tick  time.Duration
		scale float64
		ticks int
	}{
		{"fine ticks", 100 * time.Millisecond, 1, 30},
		{"coarse ticks", 1500 * time.Millisecond, 1, 3},
		{"high time scale", 16 * time.Millisecond, 100, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(b board.Board) []*Piece {
				return []*Piece{
					newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec),
					newPiece(t, b, 'P', core.Black, cell(5, 0), pawnSpec),
				}
			}, WithTimeScale(tt.scale))

			// the move can complete and enter its rest within a single tick
			f.move("RW_7_0", cell(7, 0), cell(5, 0))
			f.run(tt.ticks, tt.tick)

			if _, ok := f.game.Piece("PB_5_0"); ok {
				t.Error("black pawn should be captured")
			}
			if got := f.piece("RW_7_0").Cell(); got != cell(5, 0) {
				t.Errorf("rook at %v, want (5,0)", got)
			}
			if f.count(event.NoticeCapture) != 1 {
				t.Errorf("captures %d, want 1", f.count(event.NoticeCapture))
			}
			if f.count(event.NoticeUnresolved) != 0 {
				t.Errorf("unexpected unresolved notices: %d", f.count(event.NoticeUnresolved))
			}
		})
	}
}

// startMoving puts p in its move state started at ms, heading two rows up
func startMoving(t *testing.T, p *Piece, ms int64) {
	t.Helper()
	p.Reset(0)
	src := p.Home()
	moved, err := p.OnCommand(core.Command{
		TimestampMs: ms,
		PieceID:     p.ID(),
		Kind:        core.KindMove,
		Params:      []core.Cell{src, src.Offset(-2, 0)},
	}, buildOccupancy(nil))
	if err != nil || !moved {
		t.Fatalf("%s did not start moving: moved=%v err=%v", p.ID(), moved, err)
	}
}

func TestSurvivorOrderIndependent(t *testing.T) {
	b := testBoard(t)
	tests := []struct {
		name   string
		setup  func(rook, pawn *Piece)
		wantID string
	}{
		{
			name: "later idle start wins",
			setup: func(rook, pawn *Piece) {
				rook.Reset(100)
				pawn.Reset(200)
			},
			wantID: "PB_5_0",
		},
		{
			name: "later mover wins",
			setup: func(rook, pawn *Piece) {
				startMoving(t, rook, 300)
				pawn.Reset(200)
			},
			wantID: "RW_7_0",
		},
		{
			name: "tie prefers the piece that can capture",
			setup: func(rook, pawn *Piece) {
				startMoving(t, rook, 100)
				pawn.Reset(100)
			},
			wantID: "RW_7_0",
		},
		{
			name: "tie without capture prefers smaller id",
			setup: func(rook, pawn *Piece) {
				rook.Reset(100)
				pawn.Reset(100)
			},
			wantID: "PB_5_0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rook := newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec)
			pawn := newPiece(t, b, 'P', core.Black, cell(5, 0), pawnSpec)
			tt.setup(rook, pawn)

			for _, order := range [][]*Piece{{rook, pawn}, {pawn, rook}} {
				if got := survivor(order); got.ID() != tt.wantID {
					t.Errorf("order %s,%s: survivor %s, want %s", order[0].ID(), order[1].ID(), got.ID(), tt.wantID)
				}
			}
		})
	}
}

func TestResolveCollisionsOrderIndependent(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(rook, pawn *Piece)
		wantCaptured bool
	}{
		{"mover arrives last and captures", func(rook, pawn *Piece) { startMoving(t, rook, 100); pawn.Reset(50) }, true},
		{"tie goes to the mover", func(rook, pawn *Piece) { startMoving(t, rook, 100); pawn.Reset(100) }, true},
		{"idle arrival cannot capture", func(rook, pawn *Piece) { startMoving(t, rook, 100); pawn.Reset(200) }, false},
	}
	for _, tt := range tests {
		for _, rookFirst := range []bool{true, false} {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t, func(b board.Board) []*Piece {
					return []*Piece{
						newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec),
						newPiece(t, b, 'P', core.Black, cell(5, 0), pawnSpec),
					}
				})
				rook, pawn := f.piece("RW_7_0"), f.piece("PB_5_0")
				tt.setup(rook, pawn)

				contested := []*Piece{pawn, rook}
				if rookFirst {
					contested = []*Piece{rook, pawn}
				}
				f.game.occ = occupancy{cell(6, 0): contested}
				f.game.resolveCollisions(300)

				_, pawnAlive := f.game.Piece("PB_5_0")
				if pawnAlive == tt.wantCaptured {
					t.Errorf("rookFirst=%v: pawn alive=%v, want captured=%v", rookFirst, pawnAlive, tt.wantCaptured)
				}
				if _, ok := f.game.Piece("RW_7_0"); !ok {
					t.Errorf("rookFirst=%v: rook must never be removed", rookFirst)
				}
				wantNotice := event.NoticeCapture
				if !tt.wantCaptured {
					wantNotice = event.NoticeUnresolved
				}
				if len(f.game.notices) != 1 || f.game.notices[0].Type != wantNotice {
					t.Errorf("rookFirst=%v: notices %v, want one %s", rookFirst, f.game.notices, wantNotice)
				}
			})
		}
	}
}

func TestStandoffReportedOnce(t *testing.T) {
	f := newFixture(t, func(b board.Board) []*Piece {
		return []*Piece{
			newPiece(t, b, 'R', core.White, cell(7, 0), rookSpec),
			newPiece(t, b, 'P', core.Black, cell(6, 0), pawnSpec),
		}
	})

	// pawn airborne 50ms..1050ms; rook shares its cell from 350ms, arrives at 600ms and rests
	f.game.Enqueue(core.Command{PieceID: "PB_6_0", Kind: core.KindJump, Params: []core.Cell{cell(6, 0)}})
	f.run(1, 50*time.Millisecond)
	f.move("RW_7_0", cell(7, 0), cell(6, 0))
	f.run(18, 50*time.Millisecond)

	if _, ok := f.game.Piece("PB_6_0"); !ok {
		t.Fatal("pawn should survive the standoff")
	}
	if got := f.count(event.NoticeUnresolved); got != 1 {
		t.Errorf("unresolved notices %d, want 1", got)
	}
	if got := f.game.Stats().Count(status.KeyUnresolved); got != 1 {
		t.Errorf("unresolved counter %d, want 1", got)
	}
}

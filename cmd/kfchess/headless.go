package main

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/kungfu-chess/asset"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
	"github.com/lixenwraith/kungfu-chess/parameter"
	"github.com/lixenwraith/kungfu-chess/render"
)

// settleMs is how long a replay keeps ticking after its last step
const settleMs = 5000

// runHeadless replays steps on a stepped clock and prints the final board
// iterations > 0 caps the tick count; otherwise it runs until the script settles or a side wins
func runHeadless(set *asset.Set, steps []scriptStep, iterations int, scale float64, out io.Writer) (*engine.Snapshot, error) {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	game, err := set.NewGame(
		engine.WithTimeProvider(mock),
		engine.WithTimeScale(scale),
		engine.WithTickInterval(0),
	)
	if err != nil {
		return nil, err
	}
	game.Start()

	runner := &scriptRunner{steps: steps}
	for i := 0; iterations <= 0 || i < iterations; i++ {
		now := game.Now()
		if iterations <= 0 && runner.done() && now >= runner.lastMs()+settleMs {
			break
		}
		runner.feed(game, now)

		if err := game.Tick(); err != nil {
			if !engine.IsViolation(err) {
				return game.Snapshot(), err
			}
			log.Printf("headless: %v", err)
		}
		if game.IsWin() {
			break
		}
		mock.Advance(parameter.TickInterval)
	}

	snap := game.Snapshot()
	printBoard(out, snap)
	fmt.Fprintln(out, resultLine(snap))
	if summary := game.Stats().Summary(); summary != "" {
		fmt.Fprintln(out, summary)
	}
	return snap, nil
}

// printBoard writes one row per line; white uppercase, black lowercase, '.' empty
func printBoard(w io.Writer, snap *engine.Snapshot) {
	b := snap.Board
	for row := 0; row < b.Rows(); row++ {
		var sb strings.Builder
		for col := 0; col < b.Cols(); col++ {
			ch := byte('.')
			if v, ok := snap.PieceAt(core.Cell{Row: row, Col: col}); ok {
				ch = v.Kind
				if v.Color == core.Black {
					ch = strings.ToLower(string(ch))[0]
				}
			}
			sb.WriteByte(ch)
		}
		fmt.Fprintln(w, sb.String())
	}
}

func resultLine(snap *engine.Snapshot) string {
	if snap.Over {
		return render.GameOverText(snap)
	}
	return fmt.Sprintf("in progress at t=%dms after %d ticks", snap.NowMs, snap.Tick)
}

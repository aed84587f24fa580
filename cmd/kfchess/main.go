package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kungfu-chess/asset"
	"github.com/lixenwraith/kungfu-chess/audio"
	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
	"github.com/lixenwraith/kungfu-chess/event"
	"github.com/lixenwraith/kungfu-chess/input"
	"github.com/lixenwraith/kungfu-chess/parameter"
	"github.com/lixenwraith/kungfu-chess/render"
	"github.com/lixenwraith/kungfu-chess/status"
)

var (
	piecesFlag     = flag.String("pieces", "", "piece set directory (default ./pieces if present, else built-in)")
	speedFlag      = flag.Float64("speed", parameter.DefaultTimeScale, "game time scale")
	headlessFlag   = flag.Bool("headless", false, "run without a terminal, replaying -script")
	scriptFlag     = flag.String("script", "", "command script for headless replay")
	iterationsFlag = flag.Int("iterations", 0, "headless tick limit (0 runs until the script settles)")
	debugFlag      = flag.Bool("debug", false, "write logs to logs/kfchess.log")
	muteFlag       = flag.Bool("mute", false, "disable sound")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	set, err := asset.LoadAuto(*piecesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load pieces: %v\n", err)
		os.Exit(1)
	}
	log.Printf("pieces loaded from %s", set.Source)

	if *headlessFlag {
		if err := headless(set); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := interactive(set); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func headless(set *asset.Set) error {
	var steps []scriptStep
	if *scriptFlag != "" {
		f, err := os.Open(*scriptFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		if steps, err = parseScript(f, set.Board); err != nil {
			return err
		}
	}
	_, err := runHeadless(set, steps, *iterationsFlag, *speedFlag, os.Stdout)
	return err
}

func interactive(set *asset.Set) error {
	stats := status.NewRegistry()

	player := audio.NewPlayer()
	if !*muteFlag {
		if err := player.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
		defer player.Cleanup()
	}

	game, err := set.NewGame(
		engine.WithTimeScale(*speedFlag),
		engine.WithTickInterval(parameter.TickInterval),
		engine.WithStats(stats),
		engine.WithHandler(player),
		engine.WithHandler(messageHandler(stats)),
		engine.WithViolationHandler(func(err error) error {
			log.Printf("violation: %v", err)
			stats.SetMessage("%v", err)
			return nil
		}),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)

	b := set.Board
	whiteCursor := input.NewCursor(b.Rows(), b.Cols(), core.Cell{Row: b.Rows() - 1, Col: b.Cols() / 2})
	blackCursor := input.NewCursor(b.Rows(), b.Cols(), core.Cell{Row: 0, Col: b.Cols() / 2})
	handler := input.NewHandler(input.DefaultKeyTable(), game,
		input.NewKeyboardProcessor(core.White, whiteCursor, game),
		input.NewKeyboardProcessor(core.Black, blackCursor, game),
	)
	renderer := render.NewTerminalRenderer(screen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	core.Go(func() {
		runDone <- game.Run(ctx, 0)
	})

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !handler.HandleEvent(ev) {
				game.Stop()
				return nil
			}
		case err := <-runDone:
			// Keep the final board on screen until the players quit
			runDone = nil
			if err != nil {
				log.Printf("game run ended: %v", err)
				stats.SetMessage("stopped: %v", err)
			}
		case <-frameTicker.C:
			renderer.RenderFrame(game.Snapshot(), cursorViews(handler), statusText(stats))
		}
	}
}

// messageHandler mirrors notable notices into the status message
func messageHandler(stats *status.Registry) event.Handler[*engine.Snapshot] {
	return event.HandlerFunc[*engine.Snapshot]{
		Types: []event.NoticeType{event.NoticeCapture, event.NoticeRejected, event.NoticeUnresolved},
		Fn: func(_ *engine.Snapshot, n event.Notice) {
			switch n.Type {
			case event.NoticeCapture:
				stats.SetMessage("%s took %s", n.PieceID, n.Other)
			case event.NoticeRejected:
				stats.SetMessage("rejected %s %s", n.Command.PieceID, n.Command.Kind)
			case event.NoticeUnresolved:
				stats.SetMessage("standoff on %s", n.Cell)
			}
		},
	}
}

func cursorViews(h *input.Handler) []render.CursorView {
	players := h.Players()
	views := make([]render.CursorView, len(players))
	for i, p := range players {
		views[i] = render.CursorView{Cell: p.Cursor().Cell(), Selected: p.Selected()}
	}
	return views
}

func statusText(stats *status.Registry) string {
	summary := stats.Summary()
	if msg := stats.Message(); msg != "" {
		return summary + "  " + msg
	}
	return summary
}

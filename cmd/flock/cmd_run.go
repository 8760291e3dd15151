package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/flock/audio"
	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/engine"
	"github.com/lixenwraith/flock/input"
	"github.com/lixenwraith/flock/render"
	"github.com/lixenwraith/flock/scene"
)

var errQuit = errors.New("quit")

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the swarm in the terminal",
		Long: `Animate the swarm in the terminal. Space, enter or the right arrow
advance one scene; left or backspace go back; m toggles audio; q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			auto, _ := cmd.Flags().GetDuration("auto")

			logger, logFile := setupLogging(debug)
			if logFile != nil {
				defer logFile.Close()
			}

			sim, err := newSimulation(cmd, logger)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("screen init: %w", err)
			}
			core.SetCrashCleanup(screen.Fini)

			player := audio.NewPlayer(audio.LoadConfig(), logger)
			if err := player.Start(); err != nil {
				logger.Warn("audio disabled", "error", err)
			}
			defer player.Close()

			var muted atomic.Bool
			sim.Observe(func(t scene.Transition) {
				if !muted.Load() {
					player.Observe(t)
				}
			})

			loop := engine.NewLoop(sim, render.NewTerminal(screen), logger)
			return runInteractive(cmd.Context(), sim, loop, screen, &muted, auto, logger)
		},
	}
	cmd.Flags().Duration("auto", 0, "Advance one scene every interval (0 = manual)")
	return cmd
}

func runInteractive(
	parent context.Context,
	sim *engine.Simulation,
	loop *engine.Loop,
	screen tcell.Screen,
	muted *atomic.Bool,
	auto time.Duration,
	logger *slog.Logger,
) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return handleInput(gctx, sim, screen, events, muted, logger)
	})
	if auto > 0 {
		g.Go(func() error {
			return autoAdvance(gctx, sim, auto)
		})
	}

	err := g.Wait()
	close(done)
	if stopErr := loop.Stop(); stopErr != nil {
		logger.Warn("adapter close failed", "error", stopErr)
	}
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func handleInput(ctx context.Context, sim *engine.Simulation, screen tcell.Screen, events <-chan tcell.Event, muted *atomic.Bool, logger *slog.Logger) error {
	keys := input.DefaultKeyTable()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}

			var err error
			switch intent := keys.Resolve(ev); intent {
			case input.IntentQuit:
				return errQuit
			case input.IntentAdvance:
				_, err = sim.Advance()
			case input.IntentBack:
				_, err = sim.Back()
			case input.IntentRestart:
				_, err = sim.Enter(0, sim.Scenes()[0].ID, "")
			case input.IntentToggleMute:
				muted.Store(!muted.Load())
			}
			if err != nil {
				logger.Debug("key ignored", "error", err)
			}
		}
	}
}

// autoAdvance steps through scenes on a timer, stopping at the last one
func autoAdvance(ctx context.Context, sim *engine.Simulation, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := sim.Advance(); errors.Is(err, scene.ErrIndexRange) {
				return nil
			}
		}
	}
}

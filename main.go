package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"memory-pairs/ai"
	"memory-pairs/config"
	"memory-pairs/console"
	"memory-pairs/eventloop"
	"memory-pairs/game"
	"memory-pairs/loghandler"
	"memory-pairs/render"
	"memory-pairs/render/window"
	"memory-pairs/session"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stderr, cfg.SlogLevel())))
	if envErr != nil {
		slog.Debug("no .env file found; using environment variables", "tag", "main")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	slog.Info("configuration", "tag", "main",
		"renderer", cfg.Renderer, "reveal_delay_ms", cfg.RevealDelayMS,
		"render_interval_ms", cfg.RenderIntervalMS, "autoplay", cfg.Autoplay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cfg.Renderer {
	case config.RendererWindow:
		err = runWindow(ctx, cfg)
	default:
		err = runText(ctx, cfg)
	}
	if err != nil {
		slog.Error("exiting", "tag", "main", "err", err)
		os.Exit(1)
	}
}

// runText plays in the terminal: frames go to stdout, commands come from stdin.
func runText(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := eventloop.New(64)
	sess := session.New(cfg, loop, render.NewText(os.Stdout, game.BackSprite))
	if err := sess.Start(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		err := console.New(os.Stdin, os.Stdout, sess).Run(gctx)
		// Leaving the console ends the program.
		cancel()
		if errors.Is(err, console.ErrQuit) {
			return nil
		}
		return err
	})
	if cfg.Autoplay {
		g.Go(func() error {
			return autoplay(gctx, cfg, sess)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, eventloop.ErrStopped) {
		return err
	}
	return nil
}

// runWindow opens a desktop window; ebiten must own the main goroutine.
func runWindow(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := eventloop.New(64)
	w := window.New(cfg.CardSizePX, game.BackSprite)
	sess := session.New(cfg, loop, w.Frames())
	w.OnActivate(sess.TryActivate)
	w.OnNewGame(sess.TryNewGame)
	if err := sess.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error { return loop.Run(ctx) })
	if cfg.Autoplay {
		g.Go(func() error {
			if err := autoplay(ctx, cfg, sess); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	runErr := w.Run(ctx)
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, eventloop.ErrStopped) {
		return err
	}
	return runErr
}

func autoplay(ctx context.Context, cfg *config.Config, sess *session.Session) error {
	slog.Info("autoplay enabled", "tag", "main", "ai", cfg.AI.Name)
	return ai.Run(ctx, sess, ai.NewPlayer(&cfg.AI, cfg.Seed))
}

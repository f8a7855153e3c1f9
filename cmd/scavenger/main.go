// Command scavenger plays the game in a terminal or a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/config"
	"github.com/plus3/scavenger/internal/frontend/gfx"
	"github.com/plus3/scavenger/internal/frontend/sound"
	"github.com/plus3/scavenger/internal/frontend/term"
	"github.com/plus3/scavenger/internal/game"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", os.Getenv("SCAVENGER_CONFIG"), "TOML config file; built-in defaults when empty")
	frontend := flag.String("frontend", "", "override ui.frontend (term or gfx)")
	layout := flag.String("layout", "", "override level.layout with a YAML level file")
	seed := flag.Uint64("seed", 0, "override board.seed")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *frontend != "" {
		cfg.UI.Frontend = *frontend
	}
	if *layout != "" {
		cfg.Level.Layout = *layout
	}
	if *seed != 0 {
		cfg.Board.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	policy, err := scripting.NewEngine(cfg.AI.Script, log.Named("lua"))
	if err != nil {
		return fmt.Errorf("load enemy policy: %w", err)
	}
	defer policy.Close()

	g, err := game.New(cfg, log, policy)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	q := input.NewQueue(cfg.Loop.QueueSize)

	var presenters []game.Presenter
	if cfg.UI.Sound {
		player := sound.New(log.Named("sound"))
		defer player.Close()
		presenters = append(presenters, player)
	}

	log.Info("starting",
		zap.String("frontend", cfg.UI.Frontend),
		zap.Duration("tick_rate", cfg.Loop.TickRate),
		zap.Int("width", cfg.Board.Width),
		zap.Int("height", cfg.Board.Height),
	)

	switch cfg.UI.Frontend {
	case "gfx":
		return runWindow(ctx, stop, g, q, cfg, log, presenters)
	default:
		return runTerminal(ctx, g, q, cfg, log, presenters)
	}
}

func runTerminal(ctx context.Context, g *game.Game, q *input.Queue, cfg *config.Config, log *zap.Logger, presenters []game.Presenter) error {
	screen, err := term.New(log.Named("term"))
	if err != nil {
		return err
	}
	defer screen.Close()
	go screen.Produce(q)

	return g.Run(ctx, q, cfg.Loop.TickRate, append(presenters, screen)...)
}

// runWindow keeps ebiten on the main goroutine and ticks the game on another.
func runWindow(ctx context.Context, stop context.CancelFunc, g *game.Game, q *input.Queue, cfg *config.Config, log *zap.Logger, presenters []game.Presenter) error {
	window := gfx.New(q, gfx.DefaultCellSize, log.Named("gfx"))

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- g.Run(ctx, q, cfg.Loop.TickRate, append(presenters, window)...)
		window.Stop()
	}()

	if err := window.Run("Scavenger"); err != nil {
		stop()
		<-loopErr
		return err
	}
	// the window may close before the loop saw Exit
	stop()
	return <-loopErr
}

// Command soak plays the game headless with random intents and prints a
// report of outcomes and tick timings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/config"
	"github.com/plus3/scavenger/internal/game"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/scripting"
	"github.com/plus3/scavenger/internal/world"
)

var playIntents = []input.Intent{
	input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight,
	input.MoveRight, input.MoveDown, input.Attack, input.None,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks; 0 runs for the full duration.")
	cfgPath := flag.String("config", "", "TOML config file; built-in defaults when empty.")
	seed := flag.Uint64("seed", 1, "Seed for the board and the intent stream.")
	verbose := flag.Bool("v", false, "Log level changes and screen transitions.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Board.Seed = *seed

	policy, err := scripting.NewEngine(cfg.AI.Script, log.Named("lua"))
	if err != nil {
		return fmt.Errorf("load enemy policy: %w", err)
	}
	defer policy.Close()

	g, err := game.New(cfg, log, policy)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Width:          cfg.Board.Width,
		Height:         cfg.Board.Height,
		QueueSize:      cfg.Loop.QueueSize,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	q := input.NewQueue(cfg.Loop.QueueSize)
	go produce(ctx, q, rand.New(rand.NewPCG(*seed, *seed+1)))

	fmt.Fprintf(os.Stderr, "Running soak for %s...\n", *duration)
	startTime := time.Now()

	if err := g.Handle(input.Attack); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	report.Runs = 1

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		if *maxTicks > 0 && report.TotalUpdates >= *maxTicks {
			break
		}

		intent := q.Poll()
		if g.Screen() == world.ScreenGameOver {
			report.record(g.Snapshot())
			intent = input.Restart
			report.Runs++
		}

		updateStart := time.Now()
		err := g.Handle(intent)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
		if errors.Is(err, game.ErrExit) {
			break
		}
		if err != nil {
			return err
		}
		report.MaxEntities = max(report.MaxEntities, g.World().Entities.Len())
	}

	report.TotalTime = time.Since(startTime)
	report.Dropped = q.Dropped()
	report.Systems = g.Stats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}

// produce pushes random intents faster than the loop consumes them, so the
// queue overflows and drops the oldest.
func produce(ctx context.Context, q *input.Queue, rng *rand.Rand) {
	defer q.Close()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		for range 1 + rng.IntN(4) {
			q.Push(playIntents[rng.IntN(len(playIntents))])
		}
		runtime.Gosched()
	}
}

// Package game drives the screen state machine and sequences ticks over the
// system pipeline.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/config"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/level"
	"github.com/plus3/scavenger/internal/systems"
	"github.com/plus3/scavenger/internal/world"
)

// ErrExit is returned by Handle once an Exit intent arrived. No further tick
// runs after it.
var ErrExit = errors.New("exit requested")

// Game owns the world and the tick pipeline. It is not safe for concurrent
// use; intents from other goroutines go through an input.Queue.
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	layout   *level.Layout
	pipeline *ecs.Scheduler[*world.World]
	world    *world.World
}

// New creates a game on the Start screen. A nil policy uses the built-in
// chase policy. When cfg names a layout file every run uses it; otherwise
// levels are generated.
func New(cfg *config.Config, log *zap.Logger, policy systems.Policy) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: log,
		pipeline: systems.NewPipeline(systems.Options{
			EnemyPolicy: policy,
			EnemyEvery:  cfg.Combat.EnemyEvery,
		}),
	}

	if cfg.Level.Layout != "" {
		l, err := level.LoadLayout(cfg.Level.Layout)
		if err != nil {
			return nil, err
		}
		l.Fill(cfg.Stats())
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("layout %s: %w", cfg.Level.Layout, err)
		}
		g.layout = l
	}

	seed := cfg.Board.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.world = world.New(world.NewState(cfg.Board.Width, cfg.Board.Height, seed))
	return g, nil
}

// World exposes the current world. Callers must not mutate it.
func (g *Game) World() *world.World {
	return g.world
}

// Screen returns the current screen.
func (g *Game) Screen() world.Screen {
	return g.world.State.Screen
}

// Snapshot returns a read-only view of the world after the last tick.
func (g *Game) Snapshot() world.Snapshot {
	return g.world.Snapshot()
}

// Stats returns per-system execution statistics.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.pipeline.Stats()
}

// Handle applies one intent. None is a plain timer tick. It returns ErrExit
// once Exit is requested, and an error when a level cannot be generated.
func (g *Game) Handle(intent input.Intent) error {
	state := g.world.State

	if intent == input.Exit || state.Screen == world.ScreenExit {
		if state.Screen != world.ScreenExit {
			g.transition(world.ScreenExit)
		}
		return ErrExit
	}

	switch state.Screen {
	case world.ScreenStart:
		if intent == input.None {
			return nil
		}
		return g.begin(state.Seed, 1)

	case world.ScreenGame:
		if intent == input.Restart {
			return g.begin(state.Rand.Uint64(), state.Level)
		}
		g.tick(intent)

	case world.ScreenGameOver:
		if intent == input.Restart {
			return g.begin(state.Rand.Uint64(), nextLevel(state))
		}
	}
	return nil
}

// nextLevel is the level a restart from GameOver plays: one deeper after an
// escape, back to the first after a death.
func nextLevel(state *world.State) int {
	if state.Outcome == world.OutcomeEscaped {
		return state.Level + 1
	}
	return 1
}

// begin builds a fresh world for the given level seeded with seed and enters
// the Game screen.
func (g *Game) begin(seed uint64, lvl int) error {
	state := world.NewState(g.cfg.Board.Width, g.cfg.Board.Height, seed)
	state.Level = lvl
	w := world.New(state)

	var err error
	if g.layout != nil {
		err = level.Apply(w, g.layout)
	} else {
		err = level.Populate(w, g.cfg.LevelParams())
	}
	if err != nil {
		return fmt.Errorf("generate level: %w", err)
	}

	prev := g.world.State.Screen
	g.world = w
	state.Screen = world.ScreenGame

	g.log.Info("level started",
		zap.Stringer("run_id", state.RunID),
		zap.Uint64("seed", state.Seed),
		zap.Int("level", state.Level),
		zap.Int("entities", w.Entities.Len()),
		zap.Stringer("from", prev),
	)
	return nil
}

func (g *Game) tick(intent input.Intent) {
	w := g.world
	w.BeginTick(intent)
	if intent.IsTurn() {
		w.State.Turn++
	}
	g.pipeline.Once(w)

	// an escape reached this tick stands even if the player was hurt before it
	if player, ok := w.Player(); ok && w.State.Outcome == world.OutcomeNone {
		if h, ok := w.Healths.Get(player); ok && h.Dead() {
			w.State.Outcome = world.OutcomeDied
			w.Record(world.Event{Kind: world.EventPlayerDied, Actor: player, Position: positionOf(w, player)})
		}
	}

	if ce := g.log.Check(zap.DebugLevel, "tick"); ce != nil {
		ce.Write(
			zap.Stringer("run_id", w.State.RunID),
			zap.Uint64("tick", w.State.Tick),
			zap.Stringer("intent", intent),
			zap.Int("food", w.State.FoodPoints),
			zap.Stringer("outcome", w.State.Outcome),
			zap.Int("events", len(w.Events())),
		)
		for _, ev := range w.Events() {
			g.log.Debug("event",
				zap.Uint64("tick", w.State.Tick),
				zap.Stringer("kind", ev.Kind),
				zap.Stringer("at", ev.Position),
				zap.Int("amount", ev.Amount),
			)
		}
	}

	if w.State.Outcome != world.OutcomeNone {
		g.transition(world.ScreenGameOver)
	}
}

func positionOf(w *world.World, e ecs.Entity) world.Position {
	if pos, ok := w.Positions.Get(e); ok {
		return *pos
	}
	return world.Position{}
}

func (g *Game) transition(to world.Screen) {
	state := g.world.State
	from := state.Screen
	state.Screen = to
	g.log.Info("screen changed",
		zap.Stringer("run_id", state.RunID),
		zap.Uint64("tick", state.Tick),
		zap.Stringer("from", from),
		zap.Stringer("screen", to),
		zap.Stringer("outcome", state.Outcome),
		zap.Int("food", state.FoodPoints),
	)
}

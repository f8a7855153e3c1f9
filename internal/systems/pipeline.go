package systems

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/world"
)

// Options configures the tick pipeline.
type Options struct {
	EnemyPolicy Policy
	// EnemyEvery is the enemy turn cadence in player turns.
	EnemyEvery uint64
}

// NewPipeline registers the systems in tick order:
// movement, combat, enemy turns, cleanup.
func NewPipeline(opts Options) *ecs.Scheduler[*world.World] {
	scheduler := ecs.NewScheduler[*world.World]()
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&CombatSystem{})
	scheduler.Register(&EnemySystem{Policy: opts.EnemyPolicy, Every: opts.EnemyEvery})
	scheduler.Register(&CleanupSystem{})
	return scheduler
}

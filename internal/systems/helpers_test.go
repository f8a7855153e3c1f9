package systems_test

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/systems"
	"github.com/plus3/scavenger/internal/world"
)

func newWorld(width, height int) *world.World {
	w := world.New(world.NewState(width, height, 7))
	w.State.Screen = world.ScreenGame
	return w
}

// tick runs one full pipeline pass the way the orchestrator does.
func tick(w *world.World, s *ecs.Scheduler[*world.World], intent input.Intent) {
	w.BeginTick(intent)
	if intent.IsTurn() {
		w.State.Turn++
	}
	s.Once(w)
}

// stillPolicy keeps enemies in place so tests can isolate player actions.
var stillPolicy = systems.PolicyFunc(func(*world.World, ecs.Entity, ecs.Entity) (input.Direction, bool) {
	return 0, false
})

func at(x, y int) world.Position {
	return world.Position{X: x, Y: y}
}

func positionOf(w *world.World, e ecs.Entity) world.Position {
	pos, ok := w.Positions.Get(e)
	if !ok {
		panic("entity has no position")
	}
	return *pos
}

func healthOf(w *world.World, e ecs.Entity) int {
	h, ok := w.Healths.Get(e)
	if !ok {
		panic("entity has no health")
	}
	return h.Current
}

func hasEvent(w *world.World, kind world.EventKind) bool {
	for _, ev := range w.Events() {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

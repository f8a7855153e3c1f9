package systems

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/world"
)

// CleanupSystem runs last in the tick. It sweeps dead enemies, then dead
// inner walls, then consumes food under the player. Destructions go through
// the frame's Commands and are applied right after this system, so nothing
// dead survives into the next tick.
type CleanupSystem struct{}

func (s *CleanupSystem) Execute(frame *ecs.Frame[*world.World]) {
	w := frame.World
	s.sweepDead(frame, w, world.KindEnemy, world.EventEnemyKilled)
	s.sweepDead(frame, w, world.KindInnerWall, world.EventWallDestroyed)
	s.consumeFood(frame, w)
}

func (s *CleanupSystem) sweepDead(frame *ecs.Frame[*world.World], w *world.World, kind world.Kind, event world.EventKind) {
	dead := ecs.Filter(w.Healths, func(e ecs.Entity, h *world.Health) bool {
		k, _ := w.KindOf(e)
		return k == kind && h.Dead()
	})

	for _, e := range dead {
		ev := world.Event{Kind: event, Target: e}
		if pos, ok := w.Positions.Get(e); ok {
			ev.Position = *pos
		}
		// no longer selectable by position queries even before the flush
		w.Positions.Remove(e)
		frame.Commands.Destroy(e)
		w.Record(ev)
	}
}

func (s *CleanupSystem) consumeFood(frame *ecs.Frame[*world.World], w *world.World) {
	player, ok := w.Player()
	if !ok {
		return
	}
	at, ok := w.Positions.Get(player)
	if !ok {
		return
	}
	cell := *at

	for _, e := range w.Of(world.KindFood) {
		pos, ok := w.Positions.Get(e)
		if !ok || *pos != cell {
			continue
		}
		n, ok := w.Nutritions.Get(e)
		if !ok {
			continue
		}

		w.State.AddFood(n.Value)
		w.Record(world.Event{Kind: world.EventFoodConsumed, Actor: player, Target: e, Position: cell, Amount: n.Value})

		// removing the nutrition makes a second match impossible
		w.Nutritions.Remove(e)
		w.Positions.Remove(e)
		frame.Commands.Destroy(e)
	}
}

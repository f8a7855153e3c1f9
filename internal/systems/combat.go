package systems

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

// Strike deals the attacker's fixed damage to the opposing combatant at cell.
// Health is not clamped; cleanup removes whatever drops to zero or below.
// It returns false, leaving the world untouched, when the attacker is dead or
// has no strength, or when cell holds nothing it may hit.
func Strike(w *world.World, attacker ecs.Entity, cell world.Position) bool {
	attackerKind, ok := w.KindOf(attacker)
	if !ok {
		return false
	}
	strength, ok := w.Strengths.Get(attacker)
	if !ok {
		return false
	}
	if h, ok := w.Healths.Get(attacker); ok && h.Dead() {
		return false
	}

	target, targetKind, ok := w.BlockerAt(cell)
	if !ok || !attackerKind.Opposes(targetKind) {
		return false
	}
	health, ok := w.Healths.Get(target)
	if !ok {
		return false
	}

	health.Current -= strength.Damage
	w.Record(world.Event{
		Kind:     world.EventStruck,
		Actor:    attacker,
		Target:   target,
		Position: cell,
		Amount:   strength.Damage,
	})
	return true
}

// FacingCell returns the cell e faces.
func FacingCell(w *world.World, e ecs.Entity) (world.Position, bool) {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return world.Position{}, false
	}
	dir := input.Right
	if facing, ok := w.Facings.Get(e); ok {
		dir = facing.Dir
	}
	return pos.Step(dir), true
}

// CombatSystem resolves the player's Attack intent against the faced cell,
// then every strike queued earlier in the tick.
type CombatSystem struct{}

func (s *CombatSystem) Execute(frame *ecs.Frame[*world.World]) {
	w := frame.World

	if w.State.Intent == input.Attack {
		if player, ok := w.Player(); ok {
			if cell, ok := FacingCell(w, player); ok {
				w.QueueStrike(player, cell)
			}
		}
	}

	for _, req := range w.TakeStrikes() {
		if !Strike(w, req.Attacker, req.Cell) {
			w.Record(world.Event{Kind: world.EventMissed, Actor: req.Attacker, Position: req.Cell})
		}
	}
}

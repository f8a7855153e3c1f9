// Package systems implements the per-tick rules: movement, combat, enemy
// turns and cleanup. Systems run in a fixed order on an ecs.Scheduler.
package systems

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

// StepOutcome is the result of a single movement attempt.
type StepOutcome uint8

const (
	// StepBlocked leaves the position unchanged: out of bounds, or a blocker
	// that the mover cannot attack.
	StepBlocked StepOutcome = iota
	// StepMoved moved the entity exactly one cell.
	StepMoved
	// StepBumped hit an opposing combatant; the caller turns it into an attack.
	StepBumped
	// StepExited moved the player onto the exit.
	StepExited
)

func (o StepOutcome) String() string {
	switch o {
	case StepBlocked:
		return "blocked"
	case StepMoved:
		return "moved"
	case StepBumped:
		return "bumped"
	case StepExited:
		return "exited"
	}
	return "unknown"
}

// StepResult describes a movement attempt.
type StepResult struct {
	Outcome StepOutcome
	From    world.Position
	To      world.Position
	// Target is the bumped combatant for StepBumped.
	Target ecs.Entity
}

// Step tries to move e one cell in dir. The entity faces dir whether or not
// the move succeeds.
func Step(w *world.World, e ecs.Entity, dir input.Direction) StepResult {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return StepResult{Outcome: StepBlocked}
	}
	kind, _ := w.KindOf(e)

	if facing, ok := w.Facings.Get(e); ok {
		facing.Dir = dir
	}

	from := *pos
	to := from.Step(dir)
	res := StepResult{Outcome: StepBlocked, From: from, To: to}

	if !w.State.InBounds(to) {
		return res
	}

	if blocker, blockerKind, ok := w.BlockerAt(to); ok {
		if kind.Opposes(blockerKind) {
			res.Outcome = StepBumped
			res.Target = blocker
		}
		return res
	}

	*pos = to
	res.Outcome = StepMoved

	if kind == world.KindPlayer && exitAt(w, to) {
		res.Outcome = StepExited
	}
	return res
}

func exitAt(w *world.World, p world.Position) bool {
	for _, e := range w.At(p) {
		if k, _ := w.KindOf(e); k == world.KindExit {
			return true
		}
	}
	return false
}

// MovementSystem applies the tick's Move intent to the player. Bumping an
// enemy or an inner wall queues an attack instead of moving.
type MovementSystem struct{}

func (s *MovementSystem) Execute(frame *ecs.Frame[*world.World]) {
	w := frame.World

	dir, ok := w.State.Intent.Direction()
	if !ok {
		return
	}
	player, ok := w.Player()
	if !ok {
		return
	}

	res := Step(w, player, dir)
	switch res.Outcome {
	case StepMoved:
		w.Record(world.Event{Kind: world.EventMoved, Actor: player, Position: res.To})
	case StepBlocked:
		w.Record(world.Event{Kind: world.EventBlocked, Actor: player, Position: res.To})
	case StepBumped:
		w.QueueStrike(player, res.To)
	case StepExited:
		w.State.Outcome = world.OutcomeEscaped
		w.Record(world.Event{Kind: world.EventMoved, Actor: player, Position: res.To})
		w.Record(world.Event{Kind: world.EventEscaped, Actor: player, Position: res.To})
	}
}

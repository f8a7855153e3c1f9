package systems

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

// Policy chooses where an enemy that is not adjacent to the player moves.
type Policy interface {
	Decide(w *world.World, enemy, player ecs.Entity) (input.Direction, bool)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(w *world.World, enemy, player ecs.Entity) (input.Direction, bool)

// Decide calls f.
func (f PolicyFunc) Decide(w *world.World, enemy, player ecs.Entity) (input.Direction, bool) {
	return f(w, enemy, player)
}

// ChasePolicy closes the distance to the player: vertically when already in
// the player's column, horizontally otherwise, falling back to the other axis
// when the preferred cell is not walkable.
type ChasePolicy struct{}

func (ChasePolicy) Decide(w *world.World, enemy, player ecs.Entity) (input.Direction, bool) {
	from, ok := w.Positions.Get(enemy)
	if !ok {
		return 0, false
	}
	to, ok := w.Positions.Get(player)
	if !ok {
		return 0, false
	}

	vertical, hasVertical := axisToward(from.Y, to.Y, input.Up, input.Down)
	horizontal, hasHorizontal := axisToward(from.X, to.X, input.Left, input.Right)

	preferred := []struct {
		dir input.Direction
		ok  bool
	}{{horizontal, hasHorizontal}, {vertical, hasVertical}}
	if from.X == to.X {
		preferred[0], preferred[1] = preferred[1], preferred[0]
	}

	for _, p := range preferred {
		if p.ok && w.Walkable(from.Step(p.dir)) {
			return p.dir, true
		}
	}
	if preferred[0].ok {
		return preferred[0].dir, true
	}
	return 0, false
}

func axisToward(from, to int, neg, pos input.Direction) (input.Direction, bool) {
	switch {
	case to < from:
		return neg, true
	case to > from:
		return pos, true
	}
	return 0, false
}

// EnemySystem gives every living enemy its turn after the player acted.
// Once the tick has an outcome (the player reached the exit) no enemy acts.
// Enemies act on every Every-th player turn (every turn when Every <= 1).
// An enemy next to the player strikes it; any other enemy moves per Policy.
type EnemySystem struct {
	Policy Policy
	Every  uint64
}

func (s *EnemySystem) Execute(frame *ecs.Frame[*world.World]) {
	w := frame.World

	if !w.State.Intent.IsTurn() || w.State.Outcome != world.OutcomeNone {
		return
	}
	if s.Every > 1 && w.State.Turn%s.Every != 0 {
		return
	}
	player, ok := w.Player()
	if !ok {
		return
	}

	policy := s.Policy
	if policy == nil {
		policy = ChasePolicy{}
	}

	for _, enemy := range w.Of(world.KindEnemy) {
		if h, ok := w.Healths.Get(enemy); ok && h.Dead() {
			continue
		}
		playerPos, ok := w.Positions.Get(player)
		if !ok {
			return
		}
		enemyPos, ok := w.Positions.Get(enemy)
		if !ok {
			continue
		}

		if enemyPos.Adjacent(*playerPos) {
			if facing, ok := w.Facings.Get(enemy); ok {
				facing.Dir = directionTo(*enemyPos, *playerPos)
			}
			Strike(w, enemy, *playerPos)
			continue
		}

		dir, ok := policy.Decide(w, enemy, player)
		if !ok {
			continue
		}
		res := Step(w, enemy, dir)
		switch res.Outcome {
		case StepMoved:
			w.Record(world.Event{Kind: world.EventMoved, Actor: enemy, Position: res.To})
		case StepBumped:
			Strike(w, enemy, res.To)
		}
	}
}

func directionTo(from, to world.Position) input.Direction {
	for _, d := range input.Directions {
		if from.Step(d) == to {
			return d
		}
	}
	return input.Right
}

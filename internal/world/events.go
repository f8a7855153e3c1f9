package world

import (
	"fmt"

	"github.com/plus3/scavenger/ecs"
)

// EventKind classifies what happened during a tick.
type EventKind uint8

const (
	EventMoved EventKind = iota + 1
	EventBlocked
	EventStruck
	EventMissed
	EventEnemyKilled
	EventWallDestroyed
	EventFoodConsumed
	EventPlayerDied
	EventEscaped
)

var eventNames = map[EventKind]string{
	EventMoved:         "moved",
	EventBlocked:       "blocked",
	EventStruck:        "struck",
	EventMissed:        "missed",
	EventEnemyKilled:   "enemy_killed",
	EventWallDestroyed: "wall_destroyed",
	EventFoodConsumed:  "food_consumed",
	EventPlayerDied:    "player_died",
	EventEscaped:       "escaped",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one observable effect of a tick, for logging and for collaborators
// such as sound cues or sprite swaps. Events never drive game rules.
type Event struct {
	Kind     EventKind
	Actor    ecs.Entity
	Target   ecs.Entity
	Position Position
	// Amount is damage dealt, nutrition gained, or remaining health, depending on Kind.
	Amount int
}

// Package world holds the simulation state: the entity allocator, one typed
// store per component kind, and the explicit singleton State.
package world

import (
	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/input"
)

// StrikeRequest is an attack queued for the combat pass of the current tick.
type StrikeRequest struct {
	Attacker ecs.Entity
	Cell     Position
}

// World owns every component store plus the singleton State.
type World struct {
	State *State

	Entities   *ecs.Entities
	Positions  *ecs.Store[Position]
	Healths    *ecs.Store[Health]
	Nutritions *ecs.Store[Nutrition]
	Strengths  *ecs.Store[Strength]
	Facings    *ecs.Store[Facing]
	Kinds      *ecs.Store[Kind]

	player  ecs.Entity
	strikes []StrikeRequest
	events  []Event
}

// New creates an empty world around state.
func New(state *State) *World {
	return &World{
		State:      state,
		Entities:   ecs.NewEntities(),
		Positions:  ecs.NewStore[Position](),
		Healths:    ecs.NewStore[Health](),
		Nutritions: ecs.NewStore[Nutrition](),
		Strengths:  ecs.NewStore[Strength](),
		Facings:    ecs.NewStore[Facing](),
		Kinds:      ecs.NewStore[Kind](),
	}
}

// Spawn creates an entity of kind k at p with no other components.
func (w *World) Spawn(k Kind, p Position) ecs.Entity {
	e := w.Entities.Create()
	w.Kinds.Insert(e, k)
	w.Positions.Insert(e, p)
	if k == KindPlayer {
		w.player = e
	}
	return e
}

// SpawnPlayer places the player.
func (w *World) SpawnPlayer(p Position, health, damage int) ecs.Entity {
	e := w.Spawn(KindPlayer, p)
	w.Healths.Insert(e, Health{Current: health, Max: health})
	w.Strengths.Insert(e, Strength{Damage: damage})
	w.Facings.Insert(e, Facing{Dir: input.Right})
	return e
}

// SpawnEnemy places an enemy.
func (w *World) SpawnEnemy(p Position, health, damage int) ecs.Entity {
	e := w.Spawn(KindEnemy, p)
	w.Healths.Insert(e, Health{Current: health, Max: health})
	w.Strengths.Insert(e, Strength{Damage: damage})
	w.Facings.Insert(e, Facing{Dir: input.Left})
	return e
}

// SpawnInnerWall places a destructible wall.
func (w *World) SpawnInnerWall(p Position, health int) ecs.Entity {
	e := w.Spawn(KindInnerWall, p)
	w.Healths.Insert(e, Health{Current: health, Max: health})
	return e
}

// SpawnFood places a food item worth value points.
func (w *World) SpawnFood(p Position, value int) ecs.Entity {
	e := w.Spawn(KindFood, p)
	w.Nutritions.Insert(e, Nutrition{Value: value})
	return e
}

// Destroy removes e from every store. It implements ecs.Destroyer.
func (w *World) Destroy(e ecs.Entity) bool {
	if !w.Entities.Destroy(e) {
		return false
	}
	w.Positions.Remove(e)
	w.Healths.Remove(e)
	w.Nutritions.Remove(e)
	w.Strengths.Remove(e)
	w.Facings.Remove(e)
	w.Kinds.Remove(e)
	if e == w.player {
		w.player = 0
	}
	return true
}

// Player returns the player entity. A missing player is a normal transient
// condition, not an error.
func (w *World) Player() (ecs.Entity, bool) {
	if w.player != 0 && w.Entities.Alive(w.player) {
		return w.player, true
	}
	return 0, false
}

// KindOf returns the tag of e.
func (w *World) KindOf(e ecs.Entity) (Kind, bool) {
	k, ok := w.Kinds.Get(e)
	if !ok {
		return 0, false
	}
	return *k, true
}

// BlockerAt returns the blocking entity occupying p, if any.
func (w *World) BlockerAt(p Position) (ecs.Entity, Kind, bool) {
	for e, row := range ecs.Join(w.Kinds, w.Positions) {
		if *row.B == p && row.A.Blocking() {
			return e, *row.A, true
		}
	}
	return 0, 0, false
}

// At returns every entity positioned at p.
func (w *World) At(p Position) []ecs.Entity {
	var out []ecs.Entity
	for e, pos := range w.Positions.All() {
		if *pos == p {
			out = append(out, e)
		}
	}
	return out
}

// Of returns every entity tagged k, in store order.
func (w *World) Of(k Kind) []ecs.Entity {
	return ecs.Filter(w.Kinds, func(_ ecs.Entity, tag *Kind) bool { return *tag == k })
}

// Walkable reports whether a blocking entity could move into p.
func (w *World) Walkable(p Position) bool {
	if !w.State.InBounds(p) {
		return false
	}
	_, _, blocked := w.BlockerAt(p)
	return !blocked
}

// QueueStrike asks the combat pass of this tick to resolve an attack on cell.
func (w *World) QueueStrike(attacker ecs.Entity, cell Position) {
	w.strikes = append(w.strikes, StrikeRequest{Attacker: attacker, Cell: cell})
}

// TakeStrikes returns and clears the queued strikes.
func (w *World) TakeStrikes() []StrikeRequest {
	out := w.strikes
	w.strikes = nil
	return out
}

// Record appends an event to the current tick's log.
func (w *World) Record(ev Event) {
	w.events = append(w.events, ev)
}

// Events returns the events recorded since the last BeginTick.
func (w *World) Events() []Event {
	return w.events
}

// BeginTick clears per-tick scratch state and installs the tick's intent.
func (w *World) BeginTick(intent input.Intent) {
	w.events = w.events[:0]
	w.strikes = w.strikes[:0]
	w.State.Intent = intent
	w.State.Tick++
}

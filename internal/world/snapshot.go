package world

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/plus3/scavenger/ecs"
)

// SnapshotEntity is one renderable entity as seen after a tick.
type SnapshotEntity struct {
	Entity   ecs.Entity
	Kind     Kind
	Position Position
	// Health is the zero value for kinds without health.
	Health Health
}

// Snapshot is a read-only copy of the world for renderers. Mutating it has no
// effect on the simulation.
type Snapshot struct {
	Screen       Screen
	Outcome      Outcome
	FoodPoints   int
	Level        int
	Width        int
	Height       int
	Tick         uint64
	Turn         uint64
	PlayerHealth Health
	Entities     []SnapshotEntity
	Events       []Event
}

// Snapshot copies every positioned, tagged entity, ordered by row, column and
// draw layer so renderers can paint in slice order.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:     w.State.Screen,
		Outcome:    w.State.Outcome,
		FoodPoints: w.State.FoodPoints,
		Level:      w.State.Level,
		Width:      w.State.Width,
		Height:     w.State.Height,
		Tick:       w.State.Tick,
		Turn:       w.State.Turn,
		Entities:   make([]SnapshotEntity, 0, w.Kinds.Len()),
		Events:     slices.Clone(w.events),
	}

	for e, pos := range w.Positions.All() {
		kind, ok := w.Kinds.Get(e)
		if !ok {
			panic(fmt.Sprintf("world: entity %d has a position but no kind", e))
		}
		se := SnapshotEntity{Entity: e, Kind: *kind, Position: *pos}
		if h, ok := w.Healths.Get(e); ok {
			se.Health = *h
		}
		snap.Entities = append(snap.Entities, se)
	}

	slices.SortFunc(snap.Entities, func(a, b SnapshotEntity) int {
		return cmp.Or(
			cmp.Compare(a.Position.Y, b.Position.Y),
			cmp.Compare(a.Position.X, b.Position.X),
			cmp.Compare(a.Kind.Layer(), b.Kind.Layer()),
		)
	})

	if player, ok := w.Player(); ok {
		if h, ok := w.Healths.Get(player); ok {
			snap.PlayerHealth = *h
		}
	}

	return snap
}

// Top returns the topmost entity drawn at p, if any.
func (s Snapshot) Top(p Position) (SnapshotEntity, bool) {
	var (
		top   SnapshotEntity
		found bool
	)
	for _, se := range s.Entities {
		if se.Position == p && (!found || se.Kind.Layer() >= top.Kind.Layer()) {
			top = se
			found = true
		}
	}
	return top, found
}

// Count returns how many entities of kind k the snapshot holds.
func (s Snapshot) Count(k Kind) int {
	n := 0
	for _, se := range s.Entities {
		if se.Kind == k {
			n++
		}
	}
	return n
}

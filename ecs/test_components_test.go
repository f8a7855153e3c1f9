package ecs_test

import "github.com/plus3/scavenger/ecs"

// Common test component types
type Position struct {
	X, Y int
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

// testWorld is the smallest world a scheduler can drive.
type testWorld struct {
	Entities  *ecs.Entities
	Positions *ecs.Store[Position]
	Healths   *ecs.Store[Health]
	Names     *ecs.Store[Name]
}

func newTestWorld() *testWorld {
	return &testWorld{
		Entities:  ecs.NewEntities(),
		Positions: ecs.NewStore[Position](),
		Healths:   ecs.NewStore[Health](),
		Names:     ecs.NewStore[Name](),
	}
}

func (w *testWorld) Destroy(e ecs.Entity) bool {
	if !w.Entities.Destroy(e) {
		return false
	}
	w.Positions.Remove(e)
	w.Healths.Remove(e)
	w.Names.Remove(e)
	return true
}

func (w *testWorld) spawn(pos Position, health *Health) ecs.Entity {
	e := w.Entities.Create()
	w.Positions.Insert(e, pos)
	if health != nil {
		w.Healths.Insert(e, *health)
	}
	return e
}

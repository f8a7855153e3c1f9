package ecs_test

import (
	"testing"

	"github.com/plus3/scavenger/ecs"
)

func BenchmarkCreate(b *testing.B) {
	es := ecs.NewEntities()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		es.Create()
	}
}

func BenchmarkStoreInsert(b *testing.B) {
	es := ecs.NewEntities()
	store := ecs.NewStore[Position]()

	ids := make([]ecs.Entity, b.N)
	for i := range ids {
		ids[i] = es.Create()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Insert(ids[i], Position{X: i, Y: i})
	}
}

func BenchmarkStoreGet(b *testing.B) {
	es := ecs.NewEntities()
	store := ecs.NewStore[Position]()

	e := es.Create()
	store.Insert(e, Position{X: 1, Y: 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Get(e)
	}
}

func BenchmarkStoreRemove(b *testing.B) {
	es := ecs.NewEntities()
	store := ecs.NewStore[Position]()

	ids := make([]ecs.Entity, b.N)
	for i := range ids {
		ids[i] = es.Create()
		store.Insert(ids[i], Position{X: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Remove(ids[i])
	}
}

func BenchmarkStoreIterate(b *testing.B) {
	es := ecs.NewEntities()
	store := ecs.NewStore[Position]()

	for i := 0; i < 1000; i++ {
		store.Insert(es.Create(), Position{X: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, pos := range store.All() {
			pos.X++
		}
	}
}

func BenchmarkJoin(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			world.spawn(Position{X: i}, &Health{Current: 10, Max: 10})
		} else {
			world.spawn(Position{X: i}, nil)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, row := range ecs.Join(world.Healths, world.Positions) {
			row.A.Current += row.B.X & 1
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 1000; i++ {
		world.spawn(Position{X: i}, &Health{Current: 10, Max: 10})
	}

	scheduler := ecs.NewScheduler[*testWorld]()
	scheduler.Register(&MovementSystem{DX: 1})
	scheduler.Register(&HealthSystem{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(world)
	}
}

package ecs_test

import (
	"testing"

	"github.com/plus3/scavenger/ecs"
	"github.com/stretchr/testify/assert"
)

type testDestroySystem struct {
	target ecs.Entity
}

func (s *testDestroySystem) Execute(frame *ecs.Frame[*testWorld]) {
	frame.Commands.Destroy(s.target)
}

// testObserverSystem records whether the target was still reachable when it ran.
type testObserverSystem struct {
	target  ecs.Entity
	sawLive bool
}

func (s *testObserverSystem) Execute(frame *ecs.Frame[*testWorld]) {
	s.sawLive = frame.World.Positions.Has(s.target)
}

func TestCommands(t *testing.T) {
	t.Run("destroy is deferred until the end of the tick", func(t *testing.T) {
		world := newTestWorld()
		e := world.spawn(Position{X: 1, Y: 1}, &Health{Current: 1, Max: 1})

		observer := &testObserverSystem{target: e}
		scheduler := ecs.NewScheduler[*testWorld]()
		scheduler.Register(&testDestroySystem{target: e})
		scheduler.Register(observer)

		scheduler.Once(world)

		assert.True(t, observer.sawLive)
		assert.False(t, world.Entities.Alive(e))
		assert.False(t, world.Positions.Has(e))
		assert.False(t, world.Healths.Has(e))
	})

	t.Run("duplicate destroys collapse", func(t *testing.T) {
		world := newTestWorld()
		e := world.spawn(Position{}, nil)
		replacement := ecs.Entity(0)

		commands := ecs.NewCommands()
		commands.Destroy(e)
		commands.Destroy(e)
		commands.Defer(func() {
			// the freed slot is handed out again exactly once
			replacement = world.spawn(Position{X: 5}, nil)
		})
		assert.Equal(t, 3, commands.Pending())

		commands.Flush(world)

		assert.Equal(t, 0, commands.Pending())
		assert.True(t, world.Entities.Alive(replacement))
		assert.Equal(t, 1, world.Entities.Len())
	})

	t.Run("defers run in queue order after destroys", func(t *testing.T) {
		world := newTestWorld()
		e := world.spawn(Position{}, nil)

		var log []string
		commands := ecs.NewCommands()
		commands.Defer(func() {
			log = append(log, "first")
			assert.False(t, world.Entities.Alive(e))
		})
		commands.Destroy(e)
		commands.Defer(func() { log = append(log, "second") })

		commands.Flush(world)
		assert.Equal(t, []string{"first", "second"}, log)
	})

	t.Run("buffer is reusable after flush", func(t *testing.T) {
		world := newTestWorld()
		commands := ecs.NewCommands()

		a := world.spawn(Position{}, nil)
		commands.Destroy(a)
		commands.Flush(world)

		b := world.spawn(Position{}, nil)
		commands.Destroy(b)
		commands.Flush(world)

		assert.Equal(t, 0, world.Entities.Len())
	})
}

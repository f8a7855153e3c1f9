package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/scripting"
	"github.com/plus3/scavenger/internal/systems"
	"github.com/plus3/scavenger/internal/world"
)

var _ systems.Policy = (*scripting.Engine)(nil)

func newEngine(t *testing.T, path string) *scripting.Engine {
	t.Helper()
	engine, err := scripting.NewEngine(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	return engine
}

func TestDefaultScriptMatchesChasePolicy(t *testing.T) {
	engine := newEngine(t, "")

	tests := []struct {
		name          string
		enemy, player world.Position
		walls         []world.Position
	}{
		{"same column", world.Position{X: 2, Y: 7}, world.Position{X: 2, Y: 1}, nil},
		{"up and left", world.Position{X: 7, Y: 7}, world.Position{X: 2, Y: 1}, nil},
		{"down and right", world.Position{X: 0, Y: 0}, world.Position{X: 3, Y: 3}, nil},
		{"blocked horizontally", world.Position{X: 7, Y: 7}, world.Position{X: 2, Y: 1}, []world.Position{{X: 6, Y: 7}}},
		{"boxed in", world.Position{X: 7, Y: 7}, world.Position{X: 2, Y: 1}, []world.Position{{X: 6, Y: 7}, {X: 7, Y: 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.New(world.NewState(10, 10, 1))
			player := w.SpawnPlayer(tt.player, 10, 1)
			enemy := w.SpawnEnemy(tt.enemy, 5, 1)
			for _, p := range tt.walls {
				w.SpawnInnerWall(p, 3)
			}

			wantDir, wantOK := systems.ChasePolicy{}.Decide(w, enemy, player)
			dir, ok := engine.Decide(w, enemy, player)
			assert.Equal(t, wantOK, ok)
			assert.Equal(t, wantDir, dir)
		})
	}
}

func TestScriptUsesWorldRandom(t *testing.T) {
	engine := newEngine(t, "testdata/wander.lua")

	decide := func(seed uint64) []input.Direction {
		w := world.New(world.NewState(10, 10, seed))
		player := w.SpawnPlayer(world.Position{X: 0, Y: 0}, 10, 1)
		enemy := w.SpawnEnemy(world.Position{X: 5, Y: 5}, 5, 1)

		var dirs []input.Direction
		for range 20 {
			dir, ok := engine.Decide(w, enemy, player)
			require.True(t, ok)
			dirs = append(dirs, dir)
		}
		return dirs
	}

	assert.Equal(t, decide(3), decide(3))
}

func TestScriptFailures(t *testing.T) {
	w := world.New(world.NewState(10, 10, 1))
	player := w.SpawnPlayer(world.Position{X: 0, Y: 0}, 10, 1)
	enemy := w.SpawnEnemy(world.Position{X: 5, Y: 5}, 5, 1)

	t.Run("runtime error leaves enemy in place", func(t *testing.T) {
		engine, err := scripting.NewEngine("testdata/broken.lua", zap.NewNop())
		require.NoError(t, err)
		defer engine.Close()

		_, ok := engine.Decide(w, enemy, player)
		assert.False(t, ok)
	})

	t.Run("unknown direction", func(t *testing.T) {
		engine, err := scripting.NewEngine("testdata/bogus.lua", zap.NewNop())
		require.NoError(t, err)
		defer engine.Close()

		_, ok := engine.Decide(w, enemy, player)
		assert.False(t, ok)
	})

	t.Run("missing decide function", func(t *testing.T) {
		_, err := scripting.NewEngine("testdata/nodecide.lua", zap.NewNop())
		assert.ErrorContains(t, err, "decide_enemy")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := scripting.NewEngine("testdata/nope.lua", zap.NewNop())
		assert.Error(t, err)
	})
}

func TestScriptDrivesEnemySystem(t *testing.T) {
	engine := newEngine(t, "")

	w := world.New(world.NewState(10, 10, 1))
	w.State.Screen = world.ScreenGame
	w.SpawnPlayer(world.Position{X: 0, Y: 0}, 10, 1)
	enemy := w.SpawnEnemy(world.Position{X: 5, Y: 0}, 5, 1)

	pipeline := systems.NewPipeline(systems.Options{EnemyPolicy: engine})
	w.BeginTick(input.Attack)
	w.State.Turn++
	pipeline.Once(w)

	pos, ok := w.Positions.Get(enemy)
	require.True(t, ok)
	assert.Equal(t, world.Position{X: 4, Y: 0}, *pos)
}

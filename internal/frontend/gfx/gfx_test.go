package gfx_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/frontend/gfx"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

func TestKeyIntent(t *testing.T) {
	tests := map[ebiten.Key]input.Intent{
		ebiten.KeyArrowUp:    input.MoveUp,
		ebiten.KeyS:          input.MoveDown,
		ebiten.KeyH:          input.MoveLeft,
		ebiten.KeyArrowRight: input.MoveRight,
		ebiten.KeySpace:      input.Attack,
		ebiten.KeyR:          input.Restart,
		ebiten.KeyEscape:     input.Exit,
		ebiten.KeyZ:          input.None,
	}
	for key, want := range tests {
		assert.Equal(t, want, gfx.KeyIntent(key), key.String())
	}
}

func TestLayoutFollowsSnapshot(t *testing.T) {
	w := gfx.New(input.NewQueue(1), 10, zap.NewNop())

	width, height := w.Layout(640, 480)
	assert.Equal(t, 100, width)
	assert.Equal(t, 120, height)

	w.Present(world.Snapshot{Screen: world.ScreenGame, Width: 4, Height: 3})
	width, height = w.Layout(640, 480)
	assert.Equal(t, 60, width)
	assert.Equal(t, 70, height)
}

func TestPalette(t *testing.T) {
	for _, k := range []world.Kind{
		world.KindPlayer, world.KindEnemy, world.KindInnerWall, world.KindOuterWall,
		world.KindFood, world.KindFloor, world.KindExit,
	} {
		assert.NotZero(t, gfx.Color(k).A, k.String())
	}
}

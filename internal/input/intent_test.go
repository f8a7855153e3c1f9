package input_test

import (
	"testing"

	"github.com/plus3/scavenger/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentDirection(t *testing.T) {
	tests := []struct {
		intent input.Intent
		dir    input.Direction
		ok     bool
	}{
		{input.MoveUp, input.Up, true},
		{input.MoveDown, input.Down, true},
		{input.MoveLeft, input.Left, true},
		{input.MoveRight, input.Right, true},
		{input.Attack, 0, false},
		{input.None, 0, false},
		{input.Restart, 0, false},
		{input.Exit, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			dir, ok := tt.intent.Direction()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.dir, dir)
			}
		})
	}
}

func TestDirectionDeltaIsUnitStep(t *testing.T) {
	for _, d := range input.Directions {
		dx, dy := d.Delta()
		assert.Equal(t, 1, abs(dx)+abs(dy), d.String())

		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
}

func TestParseIntent(t *testing.T) {
	for i := input.None; i <= input.Exit; i++ {
		parsed, err := input.ParseIntent(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, parsed)
	}

	_, err := input.ParseIntent("Jump")
	assert.Error(t, err)
	assert.Equal(t, "Intent(200)", input.Intent(200).String())
}

func TestParseDirection(t *testing.T) {
	d, ok := input.ParseDirection("left")
	assert.True(t, ok)
	assert.Equal(t, input.Left, d)

	_, ok = input.ParseDirection("north")
	assert.False(t, ok)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestIntentIsTurn(t *testing.T) {
	turns := []input.Intent{input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight, input.Attack}
	for _, i := range turns {
		assert.True(t, i.IsTurn(), i.String())
	}
	for _, i := range []input.Intent{input.None, input.Restart, input.Exit} {
		assert.False(t, i.IsTurn(), i.String())
	}
}

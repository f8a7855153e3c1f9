package term_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/scavenger/internal/frontend/term"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

func newScreen(t *testing.T) (*term.Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := term.NewWithScreen(sim, zaptest.NewLogger(t))
	require.NoError(t, err)
	sim.SetSize(40, 20)
	return s, sim
}

func row(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := range width {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want input.Intent
	}{
		{tcell.KeyUp, 0, input.MoveUp},
		{tcell.KeyDown, 0, input.MoveDown},
		{tcell.KeyLeft, 0, input.MoveLeft},
		{tcell.KeyRight, 0, input.MoveRight},
		{tcell.KeyRune, 'w', input.MoveUp},
		{tcell.KeyRune, 'j', input.MoveDown},
		{tcell.KeyRune, 'a', input.MoveLeft},
		{tcell.KeyRune, 'l', input.MoveRight},
		{tcell.KeyRune, ' ', input.Attack},
		{tcell.KeyEnter, 0, input.Attack},
		{tcell.KeyRune, 'r', input.Restart},
		{tcell.KeyRune, 'q', input.Exit},
		{tcell.KeyEscape, 0, input.Exit},
		{tcell.KeyCtrlC, 0, input.Exit},
		{tcell.KeyRune, 'z', input.None},
		{tcell.KeyTab, 0, input.None},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			assert.Equal(t, tt.want, term.KeyIntent(ev))
		})
	}
}

func TestProduce(t *testing.T) {
	s, sim := newScreen(t)
	q := input.NewQueue(10)

	done := make(chan struct{})
	go func() {
		s.Produce(q)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	require.Eventually(t, func() bool { return q.Len() == 2 }, time.Second, time.Millisecond)

	s.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Produce did not return after Close")
	}

	assert.True(t, q.Closed())
	assert.Equal(t, input.MoveUp, q.Poll())
	assert.Equal(t, input.MoveRight, q.Poll())
	assert.Equal(t, input.None, q.Poll())
}

func TestPresent(t *testing.T) {
	s, sim := newScreen(t)
	defer s.Close()

	snap := world.Snapshot{
		Screen:       world.ScreenGame,
		FoodPoints:   15,
		Level:        1,
		Width:        3,
		Height:       1,
		Turn:         4,
		PlayerHealth: world.Health{Current: 80, Max: 100},
		Entities: []world.SnapshotEntity{
			{Kind: world.KindFloor, Position: world.Position{X: 0, Y: 0}},
			{Kind: world.KindPlayer, Position: world.Position{X: 0, Y: 0}},
			{Kind: world.KindFloor, Position: world.Position{X: 1, Y: 0}},
			{Kind: world.KindEnemy, Position: world.Position{X: 1, Y: 0}},
			{Kind: world.KindFloor, Position: world.Position{X: 2, Y: 0}},
			{Kind: world.KindOuterWall, Position: world.Position{X: -1, Y: 0}},
		},
	}
	s.Present(snap)

	assert.True(t, strings.HasPrefix(row(sim, 0, 40), "Food: 15  HP: 80/100"))
	assert.Equal(t, "█@E.", row(sim, 2, 4))

	t.Run("game over", func(t *testing.T) {
		snap.Screen = world.ScreenGameOver
		snap.Outcome = world.OutcomeEscaped
		s.Present(snap)
		assert.Contains(t, row(sim, 5, 40), "You escaped after 4 turns")
	})

	t.Run("start", func(t *testing.T) {
		s.Present(world.Snapshot{Screen: world.ScreenStart})
		assert.True(t, strings.HasPrefix(row(sim, 0, 40), "Scavenger"))
	})
}

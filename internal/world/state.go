package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/plus3/scavenger/internal/input"
)

// Screen is the orchestrator's current state.
type Screen uint8

const (
	ScreenStart Screen = iota
	ScreenGame
	ScreenGameOver
	ScreenExit
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenGame:
		return "game"
	case ScreenGameOver:
		return "game_over"
	case ScreenExit:
		return "exit"
	}
	return fmt.Sprintf("Screen(%d)", uint8(s))
}

// Outcome records why a run ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeEscaped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDied:
		return "died"
	case OutcomeEscaped:
		return "escaped"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// State is the process-wide singleton state. It is passed explicitly to every
// system through the World rather than living in package variables.
type State struct {
	Screen     Screen
	Outcome    Outcome
	FoodPoints int
	Width      int
	Height     int
	Level      int
	Seed       uint64
	Rand       *rand.Rand
	RunID      uuid.UUID

	// Tick counts simulation passes since the level was generated.
	Tick uint64
	// Turn counts player actions (moves and attacks) since the level was generated.
	Turn uint64
	// Intent is the intent being applied by the current tick.
	Intent input.Intent
}

// NewState creates the state for a width x height board seeded with seed.
func NewState(width, height int, seed uint64) *State {
	return &State{
		Screen: ScreenStart,
		Width:  width,
		Height: height,
		Level:  1,
		Seed:   seed,
		Rand:   newRand(seed),
		RunID:  uuid.New(),
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Reseed replaces the random source. The same seed always yields the same
// sequence.
func (s *State) Reseed(seed uint64) {
	s.Seed = seed
	s.Rand = newRand(seed)
}

// AddFood credits n food points. Negative amounts are ignored so the counter
// never decreases.
func (s *State) AddFood(n int) {
	if n > 0 {
		s.FoodPoints += n
	}
}

// InBounds reports whether p lies on the board.
func (s *State) InBounds(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

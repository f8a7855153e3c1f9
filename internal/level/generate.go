package level

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/plus3/scavenger/internal/world"
)

// Params drive the random generator.
type Params struct {
	Width, Height int

	InnerWallsMin, InnerWallsMax int
	FoodMin, FoodMax             int
	// Enemies is the enemy count on level 1; deeper levels add log2(level).
	Enemies int

	// FoodNutrition and SodaNutrition are the two values a food item can carry.
	FoodNutrition int
	SodaNutrition int

	Stats Stats

	// MaxAttempts bounds how often Populate retries with a fresh seed.
	MaxAttempts int
}

// Generate draws a random layout for the given level. The player starts in
// the top-left corner and the exit sits in the bottom-right corner. Walls,
// food and enemies go on distinct interior cells, leaving a one-cell border
// free so a path along the edge always exists. ErrOccupied is returned when
// the drawn counts do not fit in the interior.
func Generate(rng *rand.Rand, p Params, level int) (*Layout, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", p.Width, p.Height, ErrOutOfBounds)
	}
	if p.Width*p.Height < 2 {
		return nil, fmt.Errorf("board %dx%d puts the exit on the player: %w", p.Width, p.Height, ErrOccupied)
	}

	l := &Layout{
		Width:  p.Width,
		Height: p.Height,
		Player: &Actor{Point: Point{X: 0, Y: 0}},
		Exit:   &Point{X: p.Width - 1, Y: p.Height - 1},
	}

	var free []Point
	for x := 1; x < p.Width-1; x++ {
		for y := 1; y < p.Height-1; y++ {
			free = append(free, Point{X: x, Y: y})
		}
	}
	take := func(n int) ([]Point, error) {
		if n > len(free) {
			return nil, fmt.Errorf("placing %d entities on %d free cells: %w", n, len(free), ErrOccupied)
		}
		picked := make([]Point, n)
		for i := range picked {
			j := rng.IntN(len(free))
			picked[i] = free[j]
			free[j] = free[len(free)-1]
			free = free[:len(free)-1]
		}
		return picked, nil
	}

	walls, err := take(between(rng, p.InnerWallsMin, p.InnerWallsMax))
	if err != nil {
		return nil, err
	}
	for _, pt := range walls {
		l.Walls = append(l.Walls, Wall{Point: pt})
	}

	food, err := take(between(rng, p.FoodMin, p.FoodMax))
	if err != nil {
		return nil, err
	}
	for _, pt := range food {
		nutrition := p.FoodNutrition
		if rng.IntN(2) == 1 {
			nutrition = p.SodaNutrition
		}
		l.Food = append(l.Food, Food{Point: pt, Nutrition: nutrition})
	}

	enemies, err := take(p.Enemies + depth(level))
	if err != nil {
		return nil, err
	}
	for _, pt := range enemies {
		l.Enemies = append(l.Enemies, Actor{Point: pt})
	}

	l.Fill(p.Stats)
	return l, nil
}

func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return max(lo, 0)
	}
	return lo + rng.IntN(hi-lo+1)
}

// depth is floor(log2(level)), 0 for level 1.
func depth(level int) int {
	if level < 1 {
		return 0
	}
	return bits.Len(uint(level)) - 1
}

// Populate generates a level into the empty world w using w.State's random
// source. A layout that cannot be placed is redrawn with a fresh seed, up to
// p.MaxAttempts times.
func Populate(w *world.World, p Params) error {
	attempts := max(p.MaxAttempts, 1)

	var err error
	for range attempts {
		var l *Layout
		l, err = Generate(w.State.Rand, p, w.State.Level)
		if err == nil {
			if err = Apply(w, l); err == nil {
				return nil
			}
		}
		if !errors.Is(err, ErrOccupied) {
			return err
		}
		w.State.Reseed(w.State.Rand.Uint64())
	}
	return fmt.Errorf("generate level after %d attempts: %w", attempts, err)
}

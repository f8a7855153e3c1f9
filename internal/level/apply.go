package level

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/plus3/scavenger/internal/world"
)

var (
	// ErrOccupied means two blocking entities were placed on the same cell.
	ErrOccupied = errors.New("cell already occupied")
	// ErrOutOfBounds means an entry lies outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrNoPlayer means the layout places no player.
	ErrNoPlayer = errors.New("layout has no player")
	// ErrInvalidStat means a health, damage or nutrition value cannot be played.
	ErrInvalidStat = errors.New("invalid stat")
)

// occupancy tracks the blocking kind placed on each cell of a board.
type occupancy struct {
	width, height int
	cells         *intmap.Map[int, world.Kind]
}

func newOccupancy(width, height int) *occupancy {
	return &occupancy{
		width:  width,
		height: height,
		cells:  intmap.New[int, world.Kind](width * height / 4),
	}
}

func (o *occupancy) inBounds(p Point) bool {
	return p.X >= 0 && p.X < o.width && p.Y >= 0 && p.Y < o.height
}

func (o *occupancy) claim(p Point, k world.Kind) error {
	if !o.inBounds(p) {
		return fmt.Errorf("%s at (%d,%d): %w", k, p.X, p.Y, ErrOutOfBounds)
	}
	key := p.Y*o.width + p.X
	if prev, ok := o.cells.Get(key); ok {
		return fmt.Errorf("%s at (%d,%d) over %s: %w", k, p.X, p.Y, prev, ErrOccupied)
	}
	o.cells.Put(key, k)
	return nil
}

// Validate checks that l can be applied: a player exists, every entry lies on
// the board, and no cell holds two blocking entities. The exit cell must hold
// nothing blocking, the player's start included. Combatants and walls need
// positive health; damage and nutrition must not be negative. Validate runs
// after Fill, so unset values have their defaults by then.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("board %dx%d: %w", l.Width, l.Height, ErrOutOfBounds)
	}
	if l.Player == nil {
		return ErrNoPlayer
	}

	occ := newOccupancy(l.Width, l.Height)
	if err := occ.claim(l.Player.Point, world.KindPlayer); err != nil {
		return err
	}
	for _, wall := range l.Walls {
		if err := occ.claim(wall.Point, world.KindInnerWall); err != nil {
			return err
		}
	}
	for _, enemy := range l.Enemies {
		if err := occ.claim(enemy.Point, world.KindEnemy); err != nil {
			return err
		}
	}
	for _, food := range l.Food {
		if !occ.inBounds(food.Point) {
			return fmt.Errorf("food at (%d,%d): %w", food.X, food.Y, ErrOutOfBounds)
		}
	}
	if l.Exit != nil {
		if !occ.inBounds(*l.Exit) {
			return fmt.Errorf("exit at (%d,%d): %w", l.Exit.X, l.Exit.Y, ErrOutOfBounds)
		}
		if k, ok := occ.cells.Get(l.Exit.Y*l.Width + l.Exit.X); ok {
			return fmt.Errorf("exit at (%d,%d) under %s: %w", l.Exit.X, l.Exit.Y, k, ErrOccupied)
		}
	}
	return l.validateStats()
}

func (l *Layout) validateStats() error {
	if err := checkActor(world.KindPlayer, *l.Player); err != nil {
		return err
	}
	for _, enemy := range l.Enemies {
		if err := checkActor(world.KindEnemy, enemy); err != nil {
			return err
		}
	}
	for _, wall := range l.Walls {
		if wall.Health <= 0 {
			return fmt.Errorf("%s at (%d,%d) health %d: %w", world.KindInnerWall, wall.X, wall.Y, wall.Health, ErrInvalidStat)
		}
	}
	for _, food := range l.Food {
		if food.Nutrition < 0 {
			return fmt.Errorf("food at (%d,%d) nutrition %d: %w", food.X, food.Y, food.Nutrition, ErrInvalidStat)
		}
	}
	return nil
}

func checkActor(k world.Kind, a Actor) error {
	if a.Health <= 0 {
		return fmt.Errorf("%s at (%d,%d) health %d: %w", k, a.X, a.Y, a.Health, ErrInvalidStat)
	}
	if a.Damage < 0 {
		return fmt.Errorf("%s at (%d,%d) damage %d: %w", k, a.X, a.Y, a.Damage, ErrInvalidStat)
	}
	return nil
}

// Apply validates l and spawns its contents into w, which must be empty. The
// board size of w's State is set from l. Nothing is spawned when validation
// fails.
func Apply(w *world.World, l *Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}

	w.State.Width = l.Width
	w.State.Height = l.Height

	for y := range l.Height {
		for x := range l.Width {
			w.Spawn(world.KindFloor, world.Position{X: x, Y: y})
		}
	}
	// the outer ring lies just outside the playable board
	for x := -1; x <= l.Width; x++ {
		w.Spawn(world.KindOuterWall, world.Position{X: x, Y: -1})
		w.Spawn(world.KindOuterWall, world.Position{X: x, Y: l.Height})
	}
	for y := range l.Height {
		w.Spawn(world.KindOuterWall, world.Position{X: -1, Y: y})
		w.Spawn(world.KindOuterWall, world.Position{X: l.Width, Y: y})
	}

	if l.Exit != nil {
		w.Spawn(world.KindExit, l.Exit.Position())
	}
	for _, wall := range l.Walls {
		w.SpawnInnerWall(wall.Position(), wall.Health)
	}
	for _, food := range l.Food {
		w.SpawnFood(food.Position(), food.Nutrition)
	}
	for _, enemy := range l.Enemies {
		w.SpawnEnemy(enemy.Position(), enemy.Health, enemy.Damage)
	}
	w.SpawnPlayer(l.Player.Position(), l.Player.Health, l.Player.Damage)
	return nil
}

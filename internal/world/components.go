package world

import (
	"fmt"

	"github.com/plus3/scavenger/internal/input"
)

// Position is an integer grid cell. Y grows downward.
type Position struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d input.Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Manhattan distance between p and o.
func (p Position) Distance(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Adjacent reports whether o is one of the four neighbours of p.
func (p Position) Adjacent(o Position) bool {
	return p.Distance(o) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Health is owned by the player, enemies and inner walls.
// Current is never clamped; Current <= 0 means dead.
type Health struct {
	Current int
	Max     int
}

// Dead reports whether the owner should be removed.
func (h Health) Dead() bool {
	return h.Current <= 0
}

// Nutrition is the food value transferred to the food-point counter on consumption.
type Nutrition struct {
	Value int
}

// Strength is the fixed damage an attacker deals per strike.
type Strength struct {
	Damage int
}

// Facing is the last direction an actor moved or tried to move.
type Facing struct {
	Dir input.Direction
}

// Kind is the spatial-kind tag. Every spatial entity carries exactly one.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindInnerWall
	KindOuterWall
	KindFood
	KindFloor
	KindExit
)

var kindNames = map[Kind]string{
	KindPlayer:    "player",
	KindEnemy:     "enemy",
	KindInnerWall: "inner_wall",
	KindOuterWall: "outer_wall",
	KindFood:      "food",
	KindFloor:     "floor",
	KindExit:      "exit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a name produced by String back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// Blocking reports whether at most one entity of this kind family may occupy a cell.
func (k Kind) Blocking() bool {
	switch k {
	case KindPlayer, KindEnemy, KindInnerWall, KindOuterWall:
		return true
	}
	return false
}

// Combatant reports whether entities of this kind can take damage.
func (k Kind) Combatant() bool {
	switch k {
	case KindPlayer, KindEnemy, KindInnerWall:
		return true
	}
	return false
}

// Opposes reports whether an attacker of kind k may strike a target of kind target.
// The player hits enemies and inner walls; enemies hit the player.
func (k Kind) Opposes(target Kind) bool {
	switch k {
	case KindPlayer:
		return target == KindEnemy || target == KindInnerWall
	case KindEnemy:
		return target == KindPlayer
	}
	return false
}

// Layer orders kinds for drawing: floor first, actors last.
func (k Kind) Layer() int {
	switch k {
	case KindFloor:
		return 0
	case KindExit:
		return 1
	case KindFood:
		return 2
	case KindOuterWall, KindInnerWall:
		return 3
	case KindEnemy:
		return 4
	case KindPlayer:
		return 5
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

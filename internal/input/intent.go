// Package input defines the abstract intents the simulation consumes and the
// bounded queue that decouples intent producers from the tick loop.
package input

import "fmt"

// Intent is a decoded player action. The set is closed.
type Intent uint8

const (
	None Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Attack
	Restart
	Exit
)

var intentNames = [...]string{
	None:      "None",
	MoveUp:    "MoveUp",
	MoveDown:  "MoveDown",
	MoveLeft:  "MoveLeft",
	MoveRight: "MoveRight",
	Attack:    "Attack",
	Restart:   "Restart",
	Exit:      "Exit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return fmt.Sprintf("Intent(%d)", uint8(i))
}

// Direction returns the movement direction of a Move intent.
func (i Intent) Direction() (Direction, bool) {
	switch i {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	}
	return 0, false
}

// IsTurn reports whether the intent spends a player turn: a move or an attack.
func (i Intent) IsTurn() bool {
	return (i >= MoveUp && i <= MoveRight) || i == Attack
}

// ParseIntent maps an intent name back to its value. Matching is exact.
func ParseIntent(s string) (Intent, error) {
	for i, name := range intentNames {
		if name == s {
			return Intent(i), nil
		}
	}
	return None, fmt.Errorf("unknown intent %q", s)
}

// Direction is one of the four grid directions. Diagonals do not exist.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit vector of d. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the lowercase names produced by String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Package level builds the initial contents of a world: hand-written YAML
// layouts or randomly generated ones, validated before anything is spawned.
package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/scavenger/internal/world"
)

// Point is a board cell.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Position converts p to a world position.
func (p Point) Position() world.Position {
	return world.Position{X: p.X, Y: p.Y}
}

// Actor places a combatant. Zero health or damage takes the Stats default.
type Actor struct {
	Point  `yaml:",inline"`
	Health int `yaml:"health,omitempty"`
	Damage int `yaml:"damage,omitempty"`
}

// Wall places a destructible inner wall.
type Wall struct {
	Point  `yaml:",inline"`
	Health int `yaml:"health,omitempty"`
}

// Food places a food item.
type Food struct {
	Point     `yaml:",inline"`
	Nutrition int `yaml:"nutrition,omitempty"`
}

// Layout describes the contents of one level. The outer wall ring and the
// floor are implied by Width and Height.
type Layout struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Player  *Actor  `yaml:"player"`
	Exit    *Point  `yaml:"exit,omitempty"`
	Walls   []Wall  `yaml:"walls,omitempty"`
	Enemies []Actor `yaml:"enemies,omitempty"`
	Food    []Food  `yaml:"food,omitempty"`
}

// Stats are the values used for entries that leave them unset.
type Stats struct {
	PlayerHealth  int
	PlayerDamage  int
	EnemyHealth   int
	EnemyDamage   int
	WallHealth    int
	FoodNutrition int
}

// Fill replaces unset health, damage and nutrition values with s.
func (l *Layout) Fill(s Stats) {
	if l.Player != nil {
		fillActor(l.Player, s.PlayerHealth, s.PlayerDamage)
	}
	for i := range l.Enemies {
		fillActor(&l.Enemies[i], s.EnemyHealth, s.EnemyDamage)
	}
	for i := range l.Walls {
		if l.Walls[i].Health == 0 {
			l.Walls[i].Health = s.WallHealth
		}
	}
	for i := range l.Food {
		if l.Food[i].Nutrition == 0 {
			l.Food[i].Nutrition = s.FoodNutrition
		}
	}
}

func fillActor(a *Actor, health, damage int) {
	if a.Health == 0 {
		a.Health = health
	}
	if a.Damage == 0 {
		a.Damage = damage
	}
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return &l, nil
}

// SaveLayout writes l as YAML.
func SaveLayout(path string, l *Layout) error {
	raw, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

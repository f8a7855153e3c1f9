package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/plus3/scavenger/internal/level"
)

type Config struct {
	Board   BoardConfig   `toml:"board"`
	Level   LevelConfig   `toml:"level"`
	Combat  CombatConfig  `toml:"combat"`
	AI      AIConfig      `toml:"ai"`
	Loop    LoopConfig    `toml:"loop"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type BoardConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Seed   uint64 `toml:"seed"` // 0 = time based
}

type LevelConfig struct {
	Layout        string `toml:"layout"` // YAML layout file; random generation when empty
	InnerWallsMin int    `toml:"inner_walls_min"`
	InnerWallsMax int    `toml:"inner_walls_max"`
	FoodMin       int    `toml:"food_min"`
	FoodMax       int    `toml:"food_max"`
	Enemies       int    `toml:"enemies"`
	FoodNutrition int    `toml:"food_nutrition"`
	SodaNutrition int    `toml:"soda_nutrition"`
	WallHealth    int    `toml:"wall_health"`
	MaxAttempts   int    `toml:"max_attempts"`
}

type CombatConfig struct {
	PlayerDamage int    `toml:"player_damage"`
	EnemyDamage  int    `toml:"enemy_damage"`
	PlayerHealth int    `toml:"player_health"`
	EnemyHealth  int    `toml:"enemy_health"`
	EnemyEvery   uint64 `toml:"enemy_every"` // enemies act every N player turns
}

type AIConfig struct {
	Script string `toml:"script"` // Lua policy; built-in chase script when empty
}

type LoopConfig struct {
	TickRate  time.Duration `toml:"tick_rate"`
	QueueSize int           `toml:"queue_size"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path, "stderr" or "stdout"
}

type UIConfig struct {
	Frontend string `toml:"frontend"` // "term" or "gfx"
	Sound    bool   `toml:"sound"`
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Level: LevelConfig{
			InnerWallsMin: 5,
			InnerWallsMax: 9,
			FoodMin:       1,
			FoodMax:       5,
			Enemies:       1,
			FoodNutrition: 10,
			SodaNutrition: 20,
			WallHealth:    3,
			MaxAttempts:   10,
		},
		Combat: CombatConfig{
			PlayerDamage: 1,
			EnemyDamage:  10,
			PlayerHealth: 100,
			EnemyHealth:  3,
			EnemyEvery:   2,
		},
		Loop: LoopConfig{
			TickRate:  100 * time.Millisecond,
			QueueSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			// the terminal front-end owns stdout and stderr
			Output: "scavenger.log",
		},
		UI: UIConfig{
			Frontend: "term",
			Sound:    false,
		},
	}
}

// Validate rejects non-positive sizes and inverted ranges.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	ordered := func(name string, lo, hi int) {
		if lo < 0 || lo > hi {
			errs = append(errs, fmt.Errorf("%s range %d..%d is invalid", name, lo, hi))
		}
	}

	positive("board.width", c.Board.Width)
	positive("board.height", c.Board.Height)
	if c.Board.Width > 0 && c.Board.Height > 0 && c.Board.Width*c.Board.Height < 2 {
		errs = append(errs, fmt.Errorf("board %dx%d leaves no room for the exit", c.Board.Width, c.Board.Height))
	}
	ordered("level.inner_walls", c.Level.InnerWallsMin, c.Level.InnerWallsMax)
	ordered("level.food", c.Level.FoodMin, c.Level.FoodMax)
	if c.Level.Enemies < 0 {
		errs = append(errs, fmt.Errorf("level.enemies must not be negative, got %d", c.Level.Enemies))
	}
	positive("level.wall_health", c.Level.WallHealth)
	positive("level.max_attempts", c.Level.MaxAttempts)
	positive("combat.player_damage", c.Combat.PlayerDamage)
	positive("combat.enemy_damage", c.Combat.EnemyDamage)
	positive("combat.player_health", c.Combat.PlayerHealth)
	positive("combat.enemy_health", c.Combat.EnemyHealth)
	positive("loop.queue_size", c.Loop.QueueSize)
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %s", c.Loop.TickRate))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not json or console", c.Logging.Format))
	}
	switch c.UI.Frontend {
	case "term", "gfx":
	default:
		errs = append(errs, fmt.Errorf("ui.frontend %q is not term or gfx", c.UI.Frontend))
	}
	return errors.Join(errs...)
}

// Stats returns the per-entity defaults for level layouts.
func (c *Config) Stats() level.Stats {
	return level.Stats{
		PlayerHealth:  c.Combat.PlayerHealth,
		PlayerDamage:  c.Combat.PlayerDamage,
		EnemyHealth:   c.Combat.EnemyHealth,
		EnemyDamage:   c.Combat.EnemyDamage,
		WallHealth:    c.Level.WallHealth,
		FoodNutrition: c.Level.FoodNutrition,
	}
}

// LevelParams returns the random generator settings.
func (c *Config) LevelParams() level.Params {
	return level.Params{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		InnerWallsMin: c.Level.InnerWallsMin,
		InnerWallsMax: c.Level.InnerWallsMax,
		FoodMin:       c.Level.FoodMin,
		FoodMax:       c.Level.FoodMax,
		Enemies:       c.Level.Enemies,
		FoodNutrition: c.Level.FoodNutrition,
		SodaNutrition: c.Level.SodaNutrition,
		Stats:         c.Stats(),
		MaxAttempts:   c.Level.MaxAttempts,
	}
}

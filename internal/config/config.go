// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    SnakeBoard    `yaml:"board"`
	Gameplay SnakeGameplay `yaml:"gameplay"`
}

// SnakeBoard defines the render surface and its grid.
type SnakeBoard struct {
	Width    int `yaml:"width"`     // Surface width in px
	Height   int `yaml:"height"`    // Surface height in px
	CellSize int `yaml:"cell_size"` // Grid cell edge in px
}

// Cols returns the number of grid columns.
func (b SnakeBoard) Cols() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Width / b.CellSize
}

// Rows returns the number of grid rows.
func (b SnakeBoard) Rows() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Height / b.CellSize
}

// SnakeGameplay defines rules and pacing for Snake.
type SnakeGameplay struct {
	TickRate      int `yaml:"tick_rate"`
	StartLength   int `yaml:"start_length"`
	FoodScore     int `yaml:"food_score"`
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_size must be positive, got %d", c.Board.CellSize))
	}
	if c.Gameplay.StartLength < 1 {
		errs = append(errs, fmt.Errorf("gameplay.start_length must be at least 1, got %d", c.Gameplay.StartLength))
	}
	if c.Board.CellSize > 0 {
		// The body extends left from the centre column.
		cols := c.Board.Cols()
		switch {
		case cols < 1:
			errs = append(errs, fmt.Errorf("board.width %d is smaller than one cell", c.Board.Width))
		case cols/2+1 < c.Gameplay.StartLength:
			errs = append(errs, fmt.Errorf("board of %d columns cannot hold a snake of length %d", cols, c.Gameplay.StartLength))
		}
		if c.Board.Rows() < 1 {
			errs = append(errs, fmt.Errorf("board.height %d is smaller than one cell", c.Board.Height))
		}
	}
	if c.Gameplay.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.tick_rate must be positive, got %d", c.Gameplay.TickRate))
	}
	if c.Gameplay.FoodScore < 0 {
		errs = append(errs, fmt.Errorf("gameplay.food_score must not be negative, got %d", c.Gameplay.FoodScore))
	}
	return errors.Join(errs...)
}

// FighterConfig contains all configuration for the Sci-Fi Fighter demo.
type FighterConfig struct {
	Roster        []CombatantConfig `yaml:"roster"`
	Enemy         CombatantConfig   `yaml:"enemy"`
	SpecialDamage int               `yaml:"special_damage"`
}

// CombatantConfig describes one fighter.
type CombatantConfig struct {
	Name    string `yaml:"name"`
	Health  int    `yaml:"health"`
	Attack  int    `yaml:"attack"`
	Special string `yaml:"special,omitempty"`
}

// Validate checks that every combatant starts alive.
func (c FighterConfig) Validate() error {
	var errs []error
	if len(c.Roster) == 0 {
		errs = append(errs, errors.New("roster must list at least one character"))
	}
	for i, cc := range c.Roster {
		if err := cc.validate(); err != nil {
			errs = append(errs, fmt.Errorf("roster[%d]: %w", i, err))
		}
	}
	if err := c.Enemy.validate(); err != nil {
		errs = append(errs, fmt.Errorf("enemy: %w", err))
	}
	if c.SpecialDamage <= 0 {
		errs = append(errs, fmt.Errorf("special_damage must be positive, got %d", c.SpecialDamage))
	}
	return errors.Join(errs...)
}

func (c CombatantConfig) validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Health <= 0 {
		return fmt.Errorf("%s: health must be positive, got %d", c.Name, c.Health)
	}
	if c.Attack < 0 {
		return fmt.Errorf("%s: attack must not be negative, got %d", c.Name, c.Attack)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySnakePreset scales the Snake tick rate for a difficulty preset.
// The rate stays constant for the whole game.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	base := cfg.Gameplay.TickRate
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TickRate = max(1, base*7/10)
	case DifficultyHard:
		cfg.Gameplay.TickRate = base * 3 / 2
	}
}

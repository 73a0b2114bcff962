package core

import "time"

// Size of a standard terminal, used when the real one cannot be read.
const (
	DefaultScreenW = 80
	DefaultScreenH = 24
)

// RuntimeConfig is what the platform hands a game on every Reset.
type RuntimeConfig struct {
	ScreenW int // Terminal columns available to the game
	ScreenH int // Terminal rows available to the game

	// TickRate forces a simulation rate in ticks per second. Zero lets the
	// game choose its own.
	TickRate int

	// Seed feeds the game's RNG. Equal seeds replay identically.
	Seed int64
}

// DefaultConfig returns a config for a standard terminal with no forced
// tick rate and no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: DefaultScreenW, ScreenH: DefaultScreenH}
}

// Seeded returns c with a clock-derived seed if none was set.
func (c RuntimeConfig) Seeded() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameArea returns c with reserved rows removed from the height, leaving at
// least one row for the game.
func (c RuntimeConfig) GameArea(reserved int) RuntimeConfig {
	c.ScreenH = max(1, c.ScreenH-reserved)
	return c
}

// GameState is the status a game reports after each step. The platform
// records Score once GameOver becomes true.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}

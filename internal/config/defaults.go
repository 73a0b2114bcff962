package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/fighter.yaml
var defaultFighterYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:    640,
			Height:   400,
			CellSize: 20,
		},
		Gameplay: SnakeGameplay{
			TickRate:      10,
			StartLength:   3,
			FoodScore:     10,
			SpawnAttempts: 64,
		},
	}
}

// DefaultFighterConfig returns the default Sci-Fi Fighter configuration.
func DefaultFighterConfig() FighterConfig {
	return FighterConfig{
		Roster: []CombatantConfig{
			{Name: "Warrior", Health: 100, Attack: 15, Special: "Double Strike"},
			{Name: "Mage", Health: 80, Attack: 20, Special: "Fireball"},
			{Name: "Rogue", Health: 90, Attack: 18, Special: "Sneak Attack"},
		},
		Enemy:         CombatantConfig{Name: "Alien", Health: 120, Attack: 12},
		SpecialDamage: 30,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "fighter":
		return defaultFighterYAML
	default:
		return nil
	}
}

// Package fighter implements the Sci-Fi Fighter turn-based combat demo:
// pick a hero from a roster and trade blows with an alien until one falls.
package fighter

import (
	"fmt"

	"github.com/vovakirdan/arcade-classics/internal/config"
)

// Combatant is a hero or an enemy. It is alive while Health > 0.
type Combatant struct {
	Name      string
	Health    int
	MaxHealth int
	Attack    int
	Special   string // Special ability label; empty for enemies
}

// NewCombatant builds a combatant at full health from config.
func NewCombatant(cfg config.CombatantConfig) Combatant {
	return Combatant{
		Name:      cfg.Name,
		Health:    cfg.Health,
		MaxHealth: cfg.Health,
		Attack:    cfg.Attack,
		Special:   cfg.Special,
	}
}

// IsAlive reports whether the combatant can still fight.
func (c *Combatant) IsAlive() bool {
	return c.Health > 0
}

// TakeDamage subtracts damage from health and returns the amount applied.
// Non-positive damage is ignored so health can never go up.
func (c *Combatant) TakeDamage(damage int) int {
	if damage <= 0 {
		return 0
	}
	c.Health -= damage
	return damage
}

// String describes a roster entry.
func (c Combatant) String() string {
	return fmt.Sprintf("%s - Health: %d, Attack: %d", c.Name, c.Health, c.Attack)
}

// Status is the short health readout shown between rounds.
func (c Combatant) Status() string {
	return fmt.Sprintf("%s - Health: %d", c.Name, c.Health)
}

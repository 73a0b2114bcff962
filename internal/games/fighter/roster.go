package fighter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/config"
)

// Roster is the ordered list of selectable heroes.
type Roster []Combatant

// Setup is everything needed to start encounters.
type Setup struct {
	Roster Roster
	Enemy  Combatant
	Rules  Rules
}

// NewSetup builds the roster, enemy and rules from config.
func NewSetup(cfg config.FighterConfig) Setup {
	roster := make(Roster, len(cfg.Roster))
	for i, c := range cfg.Roster {
		roster[i] = NewCombatant(c)
	}
	return Setup{
		Roster: roster,
		Enemy:  NewCombatant(cfg.Enemy),
		Rules:  Rules{SpecialDamage: cfg.SpecialDamage},
	}
}

// Encounter starts a fight for the given hero.
func (s Setup) Encounter(hero Combatant) *Encounter {
	return NewEncounter(hero, s.Enemy, s.Rules)
}

// Select parses a 1-based roster number.
func (r Roster) Select(input string) (Combatant, error) {
	text := strings.TrimSpace(input)
	n, err := strconv.Atoi(text)
	if err != nil {
		return Combatant{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, text)
	}
	if n < 1 || n > len(r) {
		return Combatant{}, fmt.Errorf("%w: choose a number from 1 to %d", ErrInvalidSelection, len(r))
	}
	return r[n-1], nil
}

// Lines returns the numbered roster listing.
func (r Roster) Lines() []string {
	lines := make([]string, len(r))
	for i, c := range r {
		lines[i] = fmt.Sprintf("%d: %s", i+1, c)
	}
	return lines
}

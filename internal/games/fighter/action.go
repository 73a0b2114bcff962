package fighter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection is returned for input that is not a valid menu choice.
var ErrInvalidSelection = errors.New("invalid selection")

// Action is what a combatant does on its turn. Values match the menu codes.
type Action int

const (
	ActionAttack  Action = 1
	ActionSpecial Action = 2
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionSpecial:
		return "special"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	return a == ActionAttack || a == ActionSpecial
}

// ParseAction reads a menu code: "1" attack, "2" special ability.
func ParseAction(s string) (Action, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return ActionAttack, nil
	case "2":
		return ActionSpecial, nil
	default:
		return 0, fmt.Errorf("%w: %q is not 1 or 2", ErrInvalidSelection, strings.TrimSpace(s))
	}
}

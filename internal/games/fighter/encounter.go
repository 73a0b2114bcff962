package fighter

import (
	"errors"
	"fmt"
)

// ErrEncounterOver is returned when a round is requested after the fight ended.
var ErrEncounterOver = errors.New("encounter is over")

// Outcome is the result of an encounter. There is no draw.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Round is one player action followed by the enemy's counter.
type Round struct {
	Number  int
	Player  Turn
	Enemy   *Turn // nil when the enemy fell to the player's action
	Outcome Outcome
}

// Narrative returns the lines describing the round, from the player's view.
func (r Round) Narrative() []string {
	lines := make([]string, 0, 2)

	switch r.Player.Action {
	case ActionSpecial:
		ability := r.Player.Ability
		if ability == "" {
			ability = "your special ability"
		}
		lines = append(lines, fmt.Sprintf("You used %s and dealt %d damage to the enemy!", ability, r.Player.Damage))
	default:
		lines = append(lines, fmt.Sprintf("You attacked the enemy for %d damage!", r.Player.Damage))
	}

	if r.Enemy != nil {
		lines = append(lines, fmt.Sprintf("The enemy attacks you for %d damage!", r.Enemy.Damage))
	}
	return lines
}

// Encounter is a single player-versus-enemy fight. It owns copies of both
// combatants; only PlayRound mutates them.
type Encounter struct {
	Player Combatant
	Enemy  Combatant
	Rules  Rules
	rounds int
}

// NewEncounter starts a fight between copies of player and enemy.
func NewEncounter(player, enemy Combatant, rules Rules) *Encounter {
	return &Encounter{
		Player: player,
		Enemy:  enemy,
		Rules:  rules,
	}
}

// Outcome reports how the fight stands.
func (e *Encounter) Outcome() Outcome {
	switch {
	case !e.Enemy.IsAlive():
		return OutcomeWin
	case !e.Player.IsAlive():
		return OutcomeLose
	default:
		return OutcomePending
	}
}

// Rounds returns the number of completed rounds.
func (e *Encounter) Rounds() int {
	return e.rounds
}

// PlayRound resolves the player's action, then the enemy counter-attacks
// with a basic attack if it survived.
func (e *Encounter) PlayRound(action Action) (Round, error) {
	if e.Outcome() != OutcomePending {
		return Round{}, ErrEncounterOver
	}
	if !action.Valid() {
		return Round{}, fmt.Errorf("%w: unknown %v", ErrInvalidSelection, action)
	}

	playerTurn, err := e.Rules.ResolveTurn(&e.Player, &e.Enemy, action)
	if err != nil {
		return Round{}, err
	}

	e.rounds++
	round := Round{Number: e.rounds, Player: playerTurn}

	if e.Enemy.IsAlive() {
		enemyTurn, err := e.Rules.ResolveTurn(&e.Enemy, &e.Player, ActionAttack)
		if err != nil {
			return Round{}, err
		}
		round.Enemy = &enemyTurn
	}

	round.Outcome = e.Outcome()
	return round, nil
}

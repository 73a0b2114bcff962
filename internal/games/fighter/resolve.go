package fighter

import "fmt"

// DefaultSpecialDamage is the fixed damage of every special ability.
const DefaultSpecialDamage = 30

// Rules hold the combat constants.
type Rules struct {
	SpecialDamage int
}

// DefaultRules returns the stock rules.
func DefaultRules() Rules {
	return Rules{SpecialDamage: DefaultSpecialDamage}
}

// Turn records one resolved action.
type Turn struct {
	Attacker       string
	Defender       string
	Action         Action
	Ability        string
	Damage         int
	DefenderHealth int
}

// ResolveTurn applies one action from attacker to defender using the
// default rules.
func ResolveTurn(attacker, defender *Combatant, action Action) (Turn, error) {
	return DefaultRules().ResolveTurn(attacker, defender, action)
}

// ResolveTurn applies one action from attacker to defender. A basic attack
// deals the attacker's attack value; a special ability deals the fixed
// special damage.
func (r Rules) ResolveTurn(attacker, defender *Combatant, action Action) (Turn, error) {
	var damage int
	switch action {
	case ActionAttack:
		damage = attacker.Attack
	case ActionSpecial:
		damage = r.SpecialDamage
	default:
		return Turn{}, fmt.Errorf("%w: unknown %v", ErrInvalidSelection, action)
	}

	applied := defender.TakeDamage(damage)

	t := Turn{
		Attacker:       attacker.Name,
		Defender:       defender.Name,
		Action:         action,
		Damage:         applied,
		DefenderHealth: defender.Health,
	}
	if action == ActionSpecial {
		t.Ability = attacker.Special
	}
	return t, nil
}

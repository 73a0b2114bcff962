package fighter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

const (
	hpBarWidth = 20
	logLines   = 6
)

type phase int

const (
	phaseSelect phase = iota
	phaseBattle
	phaseOver
)

var activeConfig = config.DefaultFighterConfig()

// Configure loads the config used by games created afterwards.
func Configure(path string) error {
	cfg, err := config.LoadFighter(path)
	if err != nil {
		return err
	}
	activeConfig = cfg
	return nil
}

// ActiveSetup returns the roster and rules from the active config.
func ActiveSetup() Setup {
	return NewSetup(activeConfig)
}

// Game is the full-screen front end for an encounter. Turns are driven by
// key presses: one action per tick at most.
type Game struct {
	setup     Setup
	phase     phase
	cursor    int
	encounter *Encounter
	log       []string
	dealt     int
}

// New creates a fighter game using the active config.
func New() *Game {
	return NewWithSetup(ActiveSetup())
}

// NewWithSetup creates a fighter game with an explicit setup.
func NewWithSetup(setup Setup) *Game {
	return &Game{setup: setup}
}

func init() {
	registry.Register("fighter", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "fighter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sci-Fi Fighter"
}

// Reset returns to character selection.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.phase = phaseSelect
	g.cursor = 0
	g.encounter = nil
	g.log = nil
	g.dealt = 0
}

// Resize keeps the fight going; the layout is computed at render time.
func (g *Game) Resize(_, _ int) {}

// Step consumes at most one selection or action.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.phase == phaseOver {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseSelect:
		g.stepSelect(in)
	case phaseBattle:
		g.stepBattle(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepSelect(in core.InputFrame) {
	n := len(g.setup.Roster)
	if n == 0 {
		return
	}

	switch {
	case in.Has(core.ActionPrimary):
		g.choose(0)
	case in.Has(core.ActionSecondary):
		g.choose(1)
	case in.Has(core.ActionTertiary):
		g.choose(2)
	case in.Has(core.ActionConfirm):
		g.choose(g.cursor)
	case in.Has(core.ActionUp):
		g.cursor = (g.cursor - 1 + n) % n
	case in.Has(core.ActionDown):
		g.cursor = (g.cursor + 1) % n
	}
}

// choose starts the encounter with roster entry i; out-of-range picks are ignored.
func (g *Game) choose(i int) {
	if i < 0 || i >= len(g.setup.Roster) {
		return
	}
	hero := g.setup.Roster[i]
	g.cursor = i
	g.encounter = g.setup.Encounter(hero)
	g.phase = phaseBattle
	g.log = []string{fmt.Sprintf("You chose %s", hero.Name)}
}

func (g *Game) stepBattle(in core.InputFrame) {
	var action Action
	switch {
	case in.Has(core.ActionPrimary):
		action = ActionAttack
	case in.Has(core.ActionSecondary):
		action = ActionSpecial
	default:
		return
	}

	round, err := g.encounter.PlayRound(action)
	if err != nil {
		return
	}
	g.dealt += round.Player.Damage
	g.appendLog(round.Narrative()...)

	if round.Outcome != OutcomePending {
		g.phase = phaseOver
		if round.Outcome == OutcomeWin {
			g.appendLog("You defeated the enemy!")
		} else {
			g.appendLog("You have been defeated!")
		}
	}
}

func (g *Game) appendLog(lines ...string) {
	g.log = append(g.log, lines...)
	if len(g.log) > logLines {
		g.log = g.log[len(g.log)-logLines:]
	}
}

// Outcome returns the encounter outcome, pending before a hero is chosen.
func (g *Game) Outcome() Outcome {
	if g.encounter == nil {
		return OutcomePending
	}
	return g.encounter.Outcome()
}

// State returns the current game state. Score is the damage dealt.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.dealt,
		GameOver: g.phase == phaseOver,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, " Sci-Fi Fighter", core.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	switch g.phase {
	case phaseSelect:
		g.renderSelect(dst)
	default:
		g.renderBattle(dst)
	}

	if g.phase == phaseOver {
		title, color := "You defeated the enemy!", core.ColorBrightGreen
		if g.Outcome() == OutcomeLose {
			title, color = "You have been defeated!", core.ColorBrightRed
		}
		dst.DrawOverlay(color, title, fmt.Sprintf("Damage dealt: %d", g.dealt),
			"Press R to play again or Q to quit")
	}
}

func (g *Game) renderSelect(dst *core.Screen) {
	dst.DrawText(2, 3, "Choose your character:")
	for i, c := range g.setup.Roster {
		prefix, color := "  ", core.ColorDefault
		if i == g.cursor {
			prefix, color = "> ", core.ColorBrightYellow
		}
		line := fmt.Sprintf("%s%d: %s  [%s]", prefix, i+1, c, c.Special)
		dst.DrawTextColored(2, 5+i, line, color)
	}
	dst.DrawTextColored(2, 6+len(g.setup.Roster), "Up/Down + Enter, or press the number", core.ColorGray)
}

func (g *Game) renderBattle(dst *core.Screen) {
	enc := g.encounter
	drawFighter(dst, 2, 3, enc.Player, core.ColorBrightGreen)
	drawFighter(dst, 2, 6, enc.Enemy, core.ColorBrightRed)

	dst.DrawHLine(2, 9, max(0, dst.Width()-4), '·', core.ColorGray)
	for i, line := range g.log {
		dst.DrawText(2, 10+i, line)
	}

	if g.phase == phaseBattle {
		special := enc.Player.Special
		if special == "" {
			special = "Special Ability"
		}
		help := fmt.Sprintf("Round %d  |  1: Attack (%d)  2: %s (%d)",
			enc.Rounds()+1, enc.Player.Attack, special, enc.Rules.SpecialDamage)
		dst.DrawTextColored(2, 11+logLines, help, core.ColorBrightWhite)
	}
}

func drawFighter(dst *core.Screen, x, y int, c Combatant, color core.Color) {
	dst.DrawTextColored(x, y, c.Status(), color)
	dst.DrawText(x, y+1, hpBar(c))
}

// hpBar renders remaining health as a fixed-width bar.
func hpBar(c Combatant) string {
	filled := 0
	if c.MaxHealth > 0 {
		filled = core.Clamp(c.Health*hpBarWidth/c.MaxHealth, 0, hpBarWidth)
	}
	if c.Health > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat(" ", hpBarWidth-filled) + "]"
}

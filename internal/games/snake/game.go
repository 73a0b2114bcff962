// Package snake implements the grid arcade game: a snake that grows by
// eating food and dies on walls or its own body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Visual characters; every grid cell is two terminal columns wide.
const (
	cellWidth = 2
	hudHeight = 1

	headGlyph  = "██"
	bodyGlyph  = "▓▓"
	foodGlyph  = "◆◆"
	emptyGlyph = " ·"
)

var activeConfig = config.DefaultSnakeConfig()

// Configure loads the config used by games created afterwards.
// An empty path uses the standard search order.
func Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)
	activeConfig = cfg
	return nil
}

// Game adapts the Engine to the arcade platform: it owns the current State,
// buffers the requested heading between ticks and handles pause/restart.
type Game struct {
	cfg     config.SnakeConfig
	engine  Engine
	rng     *rand.Rand
	seed    int64
	state   State
	pending Direction
	paused  bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Snake game using the active config.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a Snake game with an explicit config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// TickRate returns the configured moves per second.
func (g *Game) TickRate() int {
	return g.cfg.Gameplay.TickRate
}

// Reset initializes the game. The same seed always yields the same start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
}

func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.engine = Engine{
		Rules: Rules{
			FoodScore:   g.cfg.Gameplay.FoodScore,
			StartLength: g.cfg.Gameplay.StartLength,
		},
		Spawner: RandomSpawner{Rng: g.rng, Attempts: g.cfg.Gameplay.SpawnAttempts},
	}
	g.state = g.engine.Start(g.cfg.Board.Cols(), g.cfg.Board.Rows())
	g.pending = None
	g.paused = false
	g.tooSmall = !g.fits(g.screenW, g.screenH)
}

// Resize updates the screen size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = !g.fits(w, h)
}

// fits reports whether the board plus border and HUD fits on screen.
func (g *Game) fits(w, h int) bool {
	needW := g.cfg.Board.Cols()*cellWidth + 2
	needH := g.cfg.Board.Rows() + 2 + hudHeight
	return w >= needW && h >= needH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Over {
		g.paused = !g.paused
	}

	if d, ok := g.turnFrom(in); ok {
		g.pending = d
	}

	if g.state.Over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.state = g.engine.Tick(g.state, g.pending)
	g.pending = None

	return core.StepResult{State: g.State()}
}

// turnFrom picks the direction to buffer from a frame. The most recent key
// wins unless it would reverse the snake, in which case any other held
// direction is used. Reversals never replace a buffered turn.
func (g *Game) turnFrom(in core.InputFrame) (Direction, bool) {
	reverse := g.state.Dir.Opposite()
	if d, ok := DirectionFor(in.Last); ok && d != reverse {
		return d, true
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		if d, _ := DirectionFor(a); d != reverse {
			return d, true
		}
	}
	return None, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Over,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawOverlay(core.ColorYellow, "Window too small", fmt.Sprintf("Need %dx%d",
			g.cfg.Board.Cols()*cellWidth+2, g.cfg.Board.Rows()+2+hudHeight))
		return
	}

	g.renderHUD(dst)

	boardW := g.state.Cols*cellWidth + 2
	boardH := g.state.Rows + 2
	frame := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBox(frame, core.ColorGray)

	originX, originY := frame.X+1, frame.Y+1
	cell := func(p core.Point, glyph string, c core.Color) {
		dst.DrawTextColored(originX+p.X*cellWidth, originY+p.Y, glyph, c)
	}

	for y := range g.state.Rows {
		for x := range g.state.Cols {
			cell(core.Point{X: x, Y: y}, emptyGlyph, core.ColorGray)
		}
	}
	if g.state.HasFood {
		cell(g.state.Food, foodGlyph, core.ColorBrightRed)
	}
	for i := len(g.state.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.state.Body[i], headGlyph, core.ColorBrightGreen)
		} else {
			cell(g.state.Body[i], bodyGlyph, core.ColorGreen)
		}
	}

	switch {
	case g.state.Over:
		dst.DrawOverlay(core.ColorBrightRed, "GAME OVER!", fmt.Sprintf("Score: %d", g.state.Score),
			"Press R to restart or Q to quit")
	case g.paused:
		dst.DrawOverlay(core.ColorBrightWhite, "PAUSED", "Press SPACE to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", g.state.Score, g.state.Len())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

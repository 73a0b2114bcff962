package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// footerLines is the height reserved below the game for the help bar.
const footerLines = 1

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	tickRate   int
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// A forced cfg.TickRate overrides the game's own rate. Store and logger may
// be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Seeded()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = registry.TickRateFor(game, DefaultTickRate)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	gameCfg := cfg.GameArea(footerLines)
	m := Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		tickRate:   tickRate,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}

	game.Reset(gameCfg)
	m.gameState = game.State()

	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "tick_rate", tickRate)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameCfg := m.config.GameArea(footerLines)
	m.screen.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
		return m, nil
	}

	// Games that cannot adapt start over at the new size.
	if !m.gameState.GameOver {
		m.game.Reset(gameCfg)
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
		m.saveScore()
	case wasOver && !m.gameState.GameOver:
		m.logger.Info("game restarted", "game", m.game.ID())
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.tickRate)
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not record score", "game", m.game.ID(), "err", err)
		return
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game and returns when the
// player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

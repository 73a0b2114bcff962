package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy   - slower snake"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard   - faster snake"},
}

// DifficultyModel lets users choose a difficulty preset before a game.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector with the cursor on normal.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:     title,
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		line := fmt.Sprintf("  %s", opt.label)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + opt.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing {
		return "", false
	}
	return m.selection, true
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector shows the selector and returns the chosen preset.
// ok is false when the user backed out or quit.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}

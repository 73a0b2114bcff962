// Package registry maps game IDs to factories. Game packages register from
// init, and the CLI and menus look games up by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Game is a self-contained simulation driven by the terminal platform. It
// never touches Bubble Tea: the platform turns keys into InputFrames, calls
// Step once per tick and draws whatever Render leaves in the Screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the actions gathered since the previous tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// TickRater is implemented by games with their own simulation rate.
type TickRater interface {
	TickRate() int
}

// Resizer is implemented by games that keep their session across terminal
// resizes. Other games are Reset at the new size.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset game.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game under id. The title is read once from a throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), build: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// TickRateFor returns the game's own positive tick rate, else fallback.
func TickRateFor(g Game, fallback int) int {
	if tr, ok := g.(TickRater); ok && tr.TickRate() > 0 {
		return tr.TickRate()
	}
	return fallback
}

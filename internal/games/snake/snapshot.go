package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:     g.state.Ticks,
		Score:    g.state.Score,
		SnakeLen: g.state.Len(),
		Dir:      g.state.Dir,
		FoodX:    -1,
		FoodY:    -1,
		State:    state,
	}
	if len(g.state.Body) > 0 {
		head := g.state.Head()
		snap.HeadX, snap.HeadY = head.X, head.Y
	}
	if g.state.HasFood {
		snap.FoodX, snap.FoodY = g.state.Food.X, g.state.Food.Y
	}
	return snap
}

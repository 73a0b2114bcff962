package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// State is one immutable-by-convention snapshot of the board. Tick never
// modifies its input; it returns a new State.
type State struct {
	Cols, Rows int
	Body       []core.Point // Head at index 0, cells unique while alive
	Dir        Direction
	Food       core.Point
	HasFood    bool // False only when the body covers every cell
	Score      int
	Ticks      uint64
	Over       bool
}

// Head returns the head cell.
func (s State) Head() core.Point {
	return s.Body[0]
}

// Len returns the body length.
func (s State) Len() int {
	return len(s.Body)
}

// Bounds returns the playable grid.
func (s State) Bounds() core.Rect {
	return core.NewRect(0, 0, s.Cols, s.Rows)
}

// Occupies reports whether p is part of the body.
func (s State) Occupies(p core.Point) bool {
	return slices.Contains(s.Body, p)
}

// Spawner chooses the next food cell for a state. ok is false when no
// cell is free.
type Spawner interface {
	Spawn(s State) (p core.Point, ok bool)
}

// RandomSpawner samples uniformly among free cells. It probes random cells
// up to Attempts times and then falls back to scanning for free cells, so it
// terminates on a nearly full board.
type RandomSpawner struct {
	Rng      *rand.Rand
	Attempts int
}

// Spawn implements Spawner.
func (r RandomSpawner) Spawn(s State) (core.Point, bool) {
	if s.Cols <= 0 || s.Rows <= 0 {
		return core.Point{}, false
	}

	for range r.Attempts {
		p := core.Point{X: r.Rng.Intn(s.Cols), Y: r.Rng.Intn(s.Rows)}
		if !s.Occupies(p) {
			return p, true
		}
	}

	occupied := make(map[core.Point]struct{}, len(s.Body))
	for _, seg := range s.Body {
		occupied[seg] = struct{}{}
	}
	free := make([]core.Point, 0, s.Cols*s.Rows-len(occupied))
	for y := range s.Rows {
		for x := range s.Cols {
			p := core.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[r.Rng.Intn(len(free))], true
}

// Rules are the scoring constants of the engine.
type Rules struct {
	FoodScore   int
	StartLength int
}

// Engine advances snake states.
type Engine struct {
	Rules   Rules
	Spawner Spawner
}

// Start builds the starting configuration: head at the grid centre, body
// trailing to the left, heading right, food placed by the spawner.
func (e Engine) Start(cols, rows int) State {
	length := max(e.Rules.StartLength, 1)
	head := core.Point{X: cols / 2, Y: rows / 2}

	body := make([]core.Point, length)
	for i := range body {
		body[i] = head.Add(-i, 0)
	}

	s := State{
		Cols: cols,
		Rows: rows,
		Body: body,
		Dir:  Right,
	}
	s.Food, s.HasFood = e.Spawner.Spawn(s)
	return s
}

// Tick advances s by one step.
//
// The pending heading is adopted unless it is None or reverses the current
// one. Leaving the grid or running into any body cell (the tail included)
// ends the game and freezes the state. Eating grows the body by one and
// respawns the food; otherwise the tail is dropped.
func (e Engine) Tick(s State, pending Direction) State {
	if s.Over || len(s.Body) == 0 {
		return s
	}

	next := s
	next.Ticks++

	if !pending.IsNone() && pending != s.Dir.Opposite() {
		next.Dir = pending
	}

	head := next.Dir.Step(s.Head())
	if !s.Bounds().ContainsPoint(head) || s.Occupies(head) {
		next.Over = true
		return next
	}

	ate := s.HasFood && head == s.Food

	keep := len(s.Body)
	if !ate {
		keep--
	}
	body := make([]core.Point, 0, keep+1)
	body = append(body, head)
	body = append(body, s.Body[:keep]...)
	next.Body = body

	if ate {
		next.Score += e.Rules.FoodScore
		next.Food, next.HasFood = e.Spawner.Spawn(next)
	}

	return next
}

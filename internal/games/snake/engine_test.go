package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

type spawnFunc func(State) (core.Point, bool)

func (f spawnFunc) Spawn(s State) (core.Point, bool) { return f(s) }

func spawnAt(p core.Point) Spawner {
	return spawnFunc(func(State) (core.Point, bool) { return p, true })
}

func testEngine(sp Spawner) Engine {
	return Engine{Rules: Rules{FoodScore: 10, StartLength: 3}, Spawner: sp}
}

func TestStartConfiguration(t *testing.T) {
	s := testEngine(spawnAt(core.Point{X: 0, Y: 0})).Start(32, 20)

	want := []core.Point{{X: 16, Y: 10}, {X: 15, Y: 10}, {X: 14, Y: 10}}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %+v, expected %+v", i, s.Body[i], p)
		}
	}
	if s.Dir != Right {
		t.Errorf("Dir = %v, expected right", s.Dir)
	}
	if s.Score != 0 || s.Over || !s.HasFood {
		t.Errorf("unexpected start state %+v", s)
	}
}

func TestTickMovesWithoutGrowing(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 0, Y: 0}))
	s := e.Start(32, 20)
	head := s.Head()

	next := e.Tick(s, None)

	if next.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", next.Len())
	}
	if next.Head().X != head.X+1 || next.Head().Y != head.Y {
		t.Errorf("Head() = %+v, expected x+1 from %+v", next.Head(), head)
	}
	if next.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", next.Ticks)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 0, Y: 0}))
	s := e.Start(32, 20)
	before := append([]core.Point(nil), s.Body...)

	e.Tick(s, Up)

	for i := range before {
		if s.Body[i] != before[i] {
			t.Fatalf("Tick modified its input body: %v -> %v", before, s.Body)
		}
	}
}

func TestTickEatsFood(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 17, Y: 10}))
	s := e.Start(32, 20)
	e.Spawner = RandomSpawner{Rng: rand.New(rand.NewSource(1)), Attempts: 8}

	next := e.Tick(s, None)

	if next.Score != 10 {
		t.Errorf("Score = %d, expected 10", next.Score)
	}
	if next.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", next.Len())
	}
	if !next.HasFood {
		t.Fatal("food should respawn")
	}
	if next.Occupies(next.Food) {
		t.Errorf("food respawned inside the snake at %+v", next.Food)
	}
	// The tail stays where it was on the growing tick.
	if next.Body[3] != s.Body[2] {
		t.Errorf("tail = %+v, expected %+v", next.Body[3], s.Body[2])
	}
}

func TestReversalIgnored(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 0, Y: 0}))
	s := e.Start(32, 20)

	next := e.Tick(s, Left)

	if next.Dir != Right {
		t.Errorf("Dir = %v, reversal should be ignored", next.Dir)
	}
	if next.Over {
		t.Error("a reversal request must not kill the snake")
	}
	if next.Head() != s.Head().Add(1, 0) {
		t.Errorf("Head() = %+v, expected to keep moving right", next.Head())
	}
}

func TestTurn(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 0, Y: 0}))
	s := e.Start(32, 20)

	next := e.Tick(s, Up)

	if next.Dir != Up {
		t.Errorf("Dir = %v, expected up", next.Dir)
	}
	if next.Head() != (core.Point{X: 16, Y: 9}) {
		t.Errorf("Head() = %+v, expected {16 9}", next.Head())
	}
}

func TestWallCollisionFreezes(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 0, Y: 0}))
	s := e.Start(6, 3) // head (3,1)

	s = e.Tick(s, None) // (4,1)
	s = e.Tick(s, None) // (5,1)
	if s.Over {
		t.Fatal("should still be inside the grid")
	}
	s = e.Tick(s, None) // (6,1) is outside
	if !s.Over {
		t.Fatal("leaving the grid should end the game")
	}

	frozen := e.Tick(s, Up)
	if frozen.Ticks != s.Ticks || frozen.Head() != s.Head() || frozen.Dir != s.Dir {
		t.Errorf("terminal state should be frozen: %+v -> %+v", s, frozen)
	}
}

func TestWallCollisionAllSides(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  Direction
	}{
		{"top", core.Point{X: 2, Y: 0}, Up},
		{"bottom", core.Point{X: 2, Y: 4}, Down},
		{"left", core.Point{X: 0, Y: 2}, Left},
		{"right", core.Point{X: 4, Y: 2}, Right},
	}

	e := testEngine(spawnAt(core.Point{X: 2, Y: 2}))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := State{Cols: 5, Rows: 5, Body: []core.Point{tc.head}, Dir: tc.dir}
			if next := e.Tick(s, None); !next.Over {
				t.Errorf("moving %v from %+v should hit the wall", tc.dir, tc.head)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 9, Y: 9}))
	s := State{
		Cols: 10, Rows: 10,
		Body: []core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		Dir:  Left,
	}

	next := e.Tick(s, Down)
	if !next.Over {
		t.Error("moving into the body should end the game")
	}
	if next.Len() != s.Len() || next.Head() != s.Head() {
		t.Error("body should not move on the fatal tick")
	}
}

func TestTailCellCountsAsBody(t *testing.T) {
	e := testEngine(spawnAt(core.Point{X: 9, Y: 9}))
	s := State{
		Cols: 10, Rows: 10,
		Body: []core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		Dir:  Up,
	}

	if next := e.Tick(s, Left); !next.Over {
		t.Error("moving into the current tail cell should end the game")
	}
}

func TestRandomSpawnerNearlyFullBoard(t *testing.T) {
	var body []core.Point
	for y := range 3 {
		for x := range 3 {
			if x == 2 && y == 2 {
				continue
			}
			body = append(body, core.Point{X: x, Y: y})
		}
	}
	s := State{Cols: 3, Rows: 3, Body: body}

	for _, attempts := range []int{0, 1, 1000} {
		sp := RandomSpawner{Rng: rand.New(rand.NewSource(7)), Attempts: attempts}
		p, ok := sp.Spawn(s)
		if !ok || p != (core.Point{X: 2, Y: 2}) {
			t.Errorf("attempts=%d: Spawn() = %+v, %v; expected the only free cell", attempts, p, ok)
		}
	}

	s.Body = append(s.Body, core.Point{X: 2, Y: 2})
	if _, ok := (RandomSpawner{Rng: rand.New(rand.NewSource(7)), Attempts: 5}).Spawn(s); ok {
		t.Error("Spawn() on a full board should report no cell")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	e := Engine{
		Rules:   Rules{FoodScore: 10, StartLength: 3},
		Spawner: RandomSpawner{Rng: rand.New(rand.NewSource(99)), Attempts: 4},
	}
	dirs := []Direction{None, Up, Down, Left, Right}

	for game := range 20 {
		s := e.Start(12, 8)
		for range 500 {
			prev := s
			s = e.Tick(s, dirs[rng.Intn(len(dirs))])
			if s.Over {
				break
			}

			seen := make(map[core.Point]bool, s.Len())
			for _, p := range s.Body {
				if seen[p] {
					t.Fatalf("game %d: duplicate body cell %+v", game, p)
				}
				if !s.Bounds().ContainsPoint(p) {
					t.Fatalf("game %d: body cell %+v outside the grid", game, p)
				}
				seen[p] = true
			}
			if s.HasFood && seen[s.Food] {
				t.Fatalf("game %d: food %+v inside the snake", game, s.Food)
			}
			grew := s.Len() - prev.Len()
			if grew != 0 && grew != 1 {
				t.Fatalf("game %d: length changed by %d", game, grew)
			}
			if (grew == 1) != (s.Score == prev.Score+10) {
				t.Fatalf("game %d: growth and score out of step", game)
			}
		}
	}
}

func TestDirectionHelpers(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
	}

	if d, ok := DirectionFor(core.ActionLeft); !ok || d != Left {
		t.Errorf("DirectionFor(Left) = %v, %v", d, ok)
	}
	if _, ok := DirectionFor(core.ActionPause); ok {
		t.Error("DirectionFor(Pause) should not map to a heading")
	}
	if None.String() != "none" || Up.String() != "up" {
		t.Error("unexpected Direction.String()")
	}
}

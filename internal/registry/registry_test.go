package registry

import (
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

type stubGame struct {
	id   string
	rate int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type ratedGame struct{ stubGame }

func (g *ratedGame) TickRate() int { return g.rate }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists() should report a registered game")
	}
	if Exists("zz_missing") {
		t.Error("Exists() should be false for unknown games")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() should fail for unknown games")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_stub_b" && info.Title != "Stub zz_stub_b" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestTickRateFor(t *testing.T) {
	if got := TickRateFor(&stubGame{}, 60); got != 60 {
		t.Errorf("TickRateFor(plain) = %d, expected fallback 60", got)
	}
	if got := TickRateFor(&ratedGame{stubGame{rate: 10}}, 60); got != 10 {
		t.Errorf("TickRateFor(rated) = %d, expected 10", got)
	}
	if got := TickRateFor(&ratedGame{stubGame{rate: 0}}, 60); got != 60 {
		t.Errorf("TickRateFor(zero rate) = %d, expected fallback 60", got)
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("zz_fresh", func() Game { return &stubGame{id: "zz_fresh"} })

	a, err := Create("zz_fresh")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	b, err := Create("zz_fresh")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if a == b {
		t.Error("Create() should build a new game each call")
	}
}

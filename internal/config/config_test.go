package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var snake SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &snake); err != nil {
		t.Fatalf("embedded snake.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(snake, DefaultSnakeConfig()) {
		t.Errorf("embedded snake.yaml = %+v, hardcoded = %+v", snake, DefaultSnakeConfig())
	}

	var fighter FighterConfig
	if err := yaml.Unmarshal(defaultFighterYAML, &fighter); err != nil {
		t.Fatalf("embedded fighter.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(fighter, DefaultFighterConfig()) {
		t.Errorf("embedded fighter.yaml = %+v, hardcoded = %+v", fighter, DefaultFighterConfig())
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if snake.Board.Cols() != 32 || snake.Board.Rows() != 20 {
		t.Errorf("default grid = %dx%d, expected 32x20", snake.Board.Cols(), snake.Board.Rows())
	}

	fighter, err := LoadFighter("")
	if err != nil {
		t.Fatalf("LoadFighter() failed: %v", err)
	}
	if len(fighter.Roster) != 3 || fighter.Enemy.Name != "Alien" {
		t.Errorf("unexpected fighter defaults: %+v", fighter)
	}
}

func TestLoadUserConfigOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("gameplay:\n  tick_rate: 15\n")
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Gameplay.TickRate != 15 {
		t.Errorf("TickRate = %d, expected 15 from user config", cfg.Gameplay.TickRate)
	}
	// Unset fields keep their defaults.
	if cfg.Board.CellSize != 20 || cfg.Gameplay.FoodScore != 10 {
		t.Errorf("partial config should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fighter.yaml")
	data := []byte(`roster:
  - name: Pilot
    health: 50
    attack: 9
enemy:
  name: Drone
  health: 40
  attack: 5
special_damage: 25
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFighter(path)
	if err != nil {
		t.Fatalf("LoadFighter() failed: %v", err)
	}
	if len(cfg.Roster) != 1 || cfg.Roster[0].Name != "Pilot" {
		t.Errorf("roster should be replaced, got %+v", cfg.Roster)
	}
	if cfg.Enemy.Name != "Drone" || cfg.SpecialDamage != 25 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  cell_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if err == nil || !strings.Contains(err.Error(), "cell_size") {
		t.Errorf("invalid config error = %v, expected cell_size complaint", err)
	}
}

func TestSnakeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"defaults", func(*SnakeConfig) {}, ""},
		{"zero cell", func(c *SnakeConfig) { c.Board.CellSize = 0 }, "cell_size"},
		{"no length", func(c *SnakeConfig) { c.Gameplay.StartLength = 0 }, "start_length"},
		{"too narrow", func(c *SnakeConfig) { c.Board.Width = 60 }, "cannot hold"},
		{"too short", func(c *SnakeConfig) { c.Board.Height = 10 }, "board.height 10 is smaller than one cell"},
		{"narrower than a cell", func(c *SnakeConfig) {
			c.Board.Width = 10
			c.Gameplay.StartLength = 1
		}, "board.width 10 is smaller than one cell"},
		{"zero rate", func(c *SnakeConfig) { c.Gameplay.TickRate = 0 }, "tick_rate"},
		{"negative score", func(c *SnakeConfig) { c.Gameplay.FoodScore = -1 }, "food_score"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tc.wantErr == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tc.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tc.wantErr)):
				t.Errorf("error = %v, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestFighterValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FighterConfig)
		wantErr string
	}{
		{"defaults", func(*FighterConfig) {}, ""},
		{"empty roster", func(c *FighterConfig) { c.Roster = nil }, "at least one"},
		{"dead hero", func(c *FighterConfig) { c.Roster[1].Health = 0 }, "roster[1]"},
		{"nameless enemy", func(c *FighterConfig) { c.Enemy.Name = "" }, "enemy: name is required"},
		{"negative attack", func(c *FighterConfig) { c.Enemy.Attack = -3 }, "attack must not be negative"},
		{"no special", func(c *FighterConfig) { c.SpecialDamage = 0 }, "special_damage"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFighterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tc.wantErr == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tc.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tc.wantErr)):
				t.Errorf("error = %v, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}

	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 7},
		{DifficultyNormal, 10},
		{DifficultyHard, 15},
	}
	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tc.preset)
		if cfg.Gameplay.TickRate != tc.want {
			t.Errorf("%s: TickRate = %d, expected %d", tc.preset, cfg.Gameplay.TickRate, tc.want)
		}
	}
}

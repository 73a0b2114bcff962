package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/games/fighter"
	"github.com/vovakirdan/arcade-classics/internal/games/snake"
	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (Snake) or pick a hero (Fighter)
  1/2/3        - Fighter: pick hero, then 1 attack / 2 special
  P/Space      - Pause (Snake)
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options (Snake):
  easy   - 70% of the configured speed
  normal - configured speed
  hard   - 150% of the configured speed

Config files are searched in this order: --config, ~/.arcade/configs/<game>.yaml,
./configs/<game>.yaml, then the built-in defaults.

Examples:
  arcade play snake
  arcade play snake --difficulty hard --seed 42
  arcade play snake --config ./my-snake.yaml
  arcade play fighter`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if err := configureGame(gameID, flagConfig, preset); err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, storage.New(), runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// configureGame loads the config a game will be created with.
func configureGame(gameID, path string, preset config.DifficultyPreset) error {
	var err error
	switch gameID {
	case "snake":
		err = snake.Configure(path, preset)
	case "fighter":
		err = fighter.Configure(path)
	}
	if err != nil {
		return fmt.Errorf("loading %s config: %w", gameID, err)
	}
	return nil
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

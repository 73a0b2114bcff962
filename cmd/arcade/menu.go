package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Scores of this session are listed with Tab; they are not saved.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Session scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file arcade.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := storage.New()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		preset := config.DifficultyNormal
		if gameID == "snake" {
			chosen, ok, err := tui.RunDifficultySelector("S N A K E", cfg)
			if err != nil {
				return fmt.Errorf("difficulty: %w", err)
			}
			if !ok {
				continue
			}
			preset = chosen
		}

		if err := configureGame(gameID, "", preset); err != nil {
			logger.Error("cannot configure game", "game", gameID, "err", err)
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "err", err)
			continue
		}

		// Fresh seed for each game unless one was forced
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running %s: %w", gameID, err)
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/games/fighter"
)

var flagFightConfig string

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Play Sci-Fi Fighter at a text prompt",
	Long: `Play Sci-Fi Fighter as a line-based console game.

Pick a hero by number, then answer each turn with 1 (attack) or
2 (special ability). The alien strikes back after every action
until one side falls.

Examples:
  arcade fight
  arcade fight --config ./my-fighter.yaml
  printf '1\n1\n2\n' | arcade fight`,
	Args: cobra.NoArgs,
	RunE: runFight,
}

func init() {
	fightCmd.Flags().StringVar(&flagFightConfig, "config", "", "Path to custom fighter config YAML")
}

func runFight(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	if err := fighter.Configure(flagFightConfig); err != nil {
		return fmt.Errorf("loading fighter config: %w", err)
	}

	console := fighter.NewConsole(fighter.ActiveSetup(), cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	if _, err := console.Run(); err != nil {
		if fighter.IsInputExhausted(err) {
			return errors.New("input ended before the fight was over")
		}
		return err
	}
	return nil
}

// arcade is a terminal arcade with two classics: Snake and Sci-Fi Fighter.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game full-screen
//	arcade menu              - Start menu to pick games interactively
//	arcade fight             - Play Sci-Fi Fighter at a line-based prompt
//
// Global flags:
//
//	--fps <rate>          - Force a tick rate (default: the game's own rate)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write full-screen session logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-classics/internal/games/fighter"
	_ "github.com/vovakirdan/arcade-classics/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Classics - Snake and Sci-Fi Fighter in your terminal",
	Long: `Arcade Classics bundles two small games that share one tick-driven
game loop: a grid Snake and the turn-based Sci-Fi Fighter.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  fight    - Sci-Fi Fighter as a plain text prompt

Examples:
  arcade list
  arcade play snake --difficulty hard
  arcade play fighter
  arcade menu --log-file arcade.log
  arcade fight`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for full-screen sessions (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(fightCmd)
}

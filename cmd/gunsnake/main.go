// gunsnake is a terminal snake game with a gun.
//
// Usage:
//
//	gunsnake                  - Pick a mode from the menu
//	gunsnake play             - Play a mode directly
//	gunsnake modes            - List modes
//	gunsnake levels list      - List built-in and stored levels
//	gunsnake scores           - Show the leaderboard
//	gunsnake serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.gunsnake/config.yaml)
//	--db <path>         - Leaderboard database (default: ~/.gunsnake/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of discarding them
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gunsnake",
	Short: "GunSnake - snake on a torus, with a gun",
	Long: `GunSnake is a terminal snake game played on a wrapping field.

Modes:
  classic  - eat food, grow, avoid walls and yourself
  gun      - shoot walls away, slice your tail, eat food from afar
  speed    - the snake speeds up every five points

Examples:
  gunsnake
  gunsnake play --mode gun --level Walled
  gunsnake scores --mode speed
  gunsnake serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gunsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (logs are discarded while playing if unset)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

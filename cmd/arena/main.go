// arena is a terminal ball-dodging game: steer the blue ball and avoid
// the red ones bouncing around the playfield.
//
// Usage:
//
//	arena list                 - List available variants
//	arena play [variant]       - Play in the terminal (default: arena)
//	arena simulate [variant]   - Run a session headless and print a summary
//	arena config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible spawns
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
//	--mute                - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/ball-arena/internal/games/arena"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Ball Arena - dodge the bouncing balls in your terminal",
	Long: `Ball Arena is a small real-time game for the terminal. You steer a ball
around a walled playfield while enemy balls bounce off the edges. Touching
any of them ends the session.

Available commands:
  list      - Show available variants
  play      - Play a variant
  simulate  - Run a session without a terminal
  config    - Print the effective configuration

Examples:
  arena play
  arena play arena_classic --difficulty hard
  arena simulate --ticks 3600 --seed 42
  arena config --config ./my-arena.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

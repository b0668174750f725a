package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/platform/headless"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

var (
	flagTicks      int
	flagCols       int
	flagRows       int
	flagScript     string
	flagStopOnOver bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a session without a terminal",
	Long: `Run a session at a fixed frame length with scripted input and print a
summary. The playfield is sized as a terminal of --cols x --rows cells.
Logs go to stderr unless --log-file is given.

Input scripts:
  idle    - The player never moves
  wander  - The player picks a random heading every half second

Examples:
  arena simulate --seed 42
  arena simulate arena_classic --ticks 36000 --script idle --stop-on-over
  arena simulate --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of frames to run")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 80, "Terminal width in cells to size the playfield")
	simulateCmd.Flags().IntVar(&flagRows, "rows", 24, "Terminal height in cells to size the playfield")
	simulateCmd.Flags().StringVar(&flagScript, "script", headless.ScriptWander, "Input script: idle, wander")
	simulateCmd.Flags().BoolVar(&flagStopOnOver, "stop-on-over", false, "Stop when the player is eliminated")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	if _, err := loadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	seed, _ := resolveSeed()
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = flagCols, flagRows
	rc.Seed = seed
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sum, err := headless.Run(ctx, game, rc, headless.Options{
		Ticks:      flagTicks,
		DT:         rc.TickSeconds(),
		Script:     flagScript,
		InputSeed:  seed,
		StopOnOver: flagStopOnOver,
		Logger:     logger,
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	printSummary(gameID, seed, sum)
	if err != nil {
		return fmt.Errorf("simulation interrupted: %w", context.Cause(ctx))
	}
	return nil
}

func printSummary(gameID string, seed int64, sum headless.Summary) {
	fmt.Printf("Game:      %s\n", gameID)
	fmt.Printf("Session:   %s\n", sum.SessionID)
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Ticks:     %d\n", sum.Ticks)
	fmt.Printf("Bounces:   %d\n", sum.Bounces)
	if sum.Eliminated {
		fmt.Printf("Outcome:   eliminated at tick %d by enemy %d\n", sum.EliminatedAt, sum.EliminatedBy)
	} else {
		fmt.Println("Outcome:   survived")
	}
}

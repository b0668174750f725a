package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ball-arena/internal/audio"
	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
	"github.com/vovakirdan/ball-arena/internal/platform/tui"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal. The playfield fills the terminal window.

Controls:
  W/A/S/D or arrows  - Move
  P/Esc              - Pause
  R                  - New session (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Half the enemies, slower
  normal - Config values as loaded
  hard   - 50% more enemies, faster

Examples:
  arena play
  arena play arena_classic
  arena play --difficulty hard --mute
  arena play --log-file arena.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Bubble Tea owns stdout; logs only go to a file if one is given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// The playfield comes from the real terminal; there is no fallback size.
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("%w: terminal size: %v", sim.ErrPlayfieldUnavailable, err)
	}
	screenW, screenH := tui.GameArea(width, height)

	seed, fixed := resolveSeed()
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = screenW, screenH
	rc.Seed = seed
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if err := game.Reset(rc); err != nil {
		return err
	}

	sound := audio.New(cfg.Audio, seed)
	if err := sound.Start(); err != nil && !errors.Is(err, audio.ErrDisabled) {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Close()

	err = tui.Run(game, rc, tui.Options{
		Logger:     logger,
		Audio:      sound,
		MaxFrameDT: cfg.Timing.MaxFrameDT,
		HoldWindow: cfg.Timing.HoldWindowDuration(),
		FixedSeed:  fixed,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

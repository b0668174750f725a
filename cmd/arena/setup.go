package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-arena/internal/config"
	"github.com/vovakirdan/ball-arena/internal/games/arena"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

// loadConfig loads the arena config, applies the global flags, and hands it
// to the arena package for games created afterwards.
func loadConfig() (config.ArenaConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ArenaConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagMute {
		cfg.Audio.Enabled = false
	}

	arena.SetConfig(cfg)
	return cfg, nil
}

// newLogger creates a logger writing to the --log-file path, or to fallback
// when no file is given. The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
		Level:           level,
	})
	return logger, closeFn, nil
}

// resolveSeed returns the seed to spawn with and whether the user fixed it.
func resolveSeed() (int64, bool) {
	if flagSeed != 0 {
		return flagSeed, true
	}
	return time.Now().UnixNano(), false
}

// variantArg returns the requested variant, defaulting to "arena".
func variantArg(args []string) (string, error) {
	id := "arena"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q; run 'arena list' to see available variants", id)
	}
	return id, nil
}

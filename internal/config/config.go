// Package config provides YAML-based configuration loading and difficulty
// presets for the arena.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a session.
var ErrInvalidConfig = errors.New("invalid arena config")

// ArenaConfig contains all tuning values of an arena session.
// It is read once at launch and stays fixed for the session.
type ArenaConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PlayerConfig defines the player's body and start position in world units.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// EnemyConfig defines the enemy population.
type EnemyConfig struct {
	Count          int     `yaml:"count"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	DirectionRange float64 `yaml:"direction_range"` // Direction components drawn from [-r, r)
}

// DisplayConfig maps terminal cells to world units.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// TimingConfig controls frame timing and held-key emulation.
type TimingConfig struct {
	MaxFrameDT float64 `yaml:"max_frame_dt"` // Seconds
	HoldWindow float64 `yaml:"hold_window"`  // Seconds a key press counts as held
}

// HoldWindowDuration returns the hold window as a time.Duration.
func (t TimingConfig) HoldWindowDuration() time.Duration {
	return time.Duration(t.HoldWindow * float64(time.Second))
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
	MaxVoices  int     `yaml:"max_voices"` // Sounds started per frame
}

// Validate checks that every value can drive a session.
func (c ArenaConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(positive(c.Player.Radius), "player.radius must be positive, got %g", c.Player.Radius)
	check(nonNegative(c.Player.Speed), "player.speed must not be negative, got %g", c.Player.Speed)
	check(finite(c.Player.StartX) && finite(c.Player.StartY), "player start must be finite")
	check(c.Enemies.Count >= 0, "enemies.count must not be negative, got %d", c.Enemies.Count)
	check(positive(c.Enemies.Radius), "enemies.radius must be positive, got %g", c.Enemies.Radius)
	check(nonNegative(c.Enemies.Speed), "enemies.speed must not be negative, got %g", c.Enemies.Speed)
	check(positive(c.Enemies.DirectionRange), "enemies.direction_range must be positive, got %g", c.Enemies.DirectionRange)
	check(positive(c.Display.CellWidth), "display.cell_width must be positive, got %g", c.Display.CellWidth)
	check(positive(c.Display.CellHeight), "display.cell_height must be positive, got %g", c.Display.CellHeight)
	check(positive(c.Timing.MaxFrameDT), "timing.max_frame_dt must be positive, got %g", c.Timing.MaxFrameDT)
	check(nonNegative(c.Timing.HoldWindow), "timing.hold_window must not be negative, got %g", c.Timing.HoldWindow)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.MaxVoices >= 0, "audio.max_voices must not be negative, got %d", c.Audio.MaxVoices)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset maps a flag value to a preset. An empty string keeps the config as loaded.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave it unchanged.
func ApplyPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if cfg.Enemies.Count > 1 {
			cfg.Enemies.Count /= 2
		}
		cfg.Enemies.Speed *= 0.75
	case DifficultyHard:
		cfg.Enemies.Count += cfg.Enemies.Count / 2
		cfg.Enemies.Speed *= 1.3
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Player: PlayerConfig{
			Radius: 32,
			Speed:  500,
		},
		Enemies: EnemyConfig{
			Count:          20,
			Radius:         32,
			Speed:          200,
			DirectionRange: 1,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Timing: TimingConfig{
			MaxFrameDT: 0.1,
			HoldWindow: 0.15,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
			MaxVoices:  4,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}

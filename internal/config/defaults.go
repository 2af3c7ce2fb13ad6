package config

import (
	_ "embed"
)

//go:embed defaults/gunsnake.yaml
var defaultYAML []byte

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Player:      "player",
		Mode:        ModeClassic,
		TickSpeedMS: DefaultTickMS,
		FieldSize:   FieldSmall,
		CellSize:    20,
		Level:       "Empty",
		LevelsDir:   "~/.gunsnake/levels",
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

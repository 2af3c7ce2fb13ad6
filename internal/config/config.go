// Package config provides YAML-based settings loading and the speed rules
// shared by the game modes.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gunsnake/internal/engine"
)

// Mode selects the game rules.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeGun     Mode = "gun"
	ModeSpeed   Mode = "speed"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeClassic, ModeGun, ModeSpeed}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeGun:
		return "Gun"
	case ModeSpeed:
		return "Speed"
	default:
		return "Classic"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeClassic, ModeGun, ModeSpeed:
		return m, nil
	case "default", "":
		return ModeClassic, nil
	}
	return "", fmt.Errorf("config: unknown mode %q", s)
}

// FieldSize names one of the supported grid dimensions.
type FieldSize string

const (
	FieldSmall  FieldSize = "small"
	FieldMedium FieldSize = "medium"
	FieldLarge  FieldSize = "large"
	FieldHuge   FieldSize = "huge"
)

// Dimensions returns the grid width and height for the size.
// Every size keeps a 16:9 aspect ratio.
func (f FieldSize) Dimensions() (w, h int, ok bool) {
	switch f {
	case FieldSmall:
		return 32, 18, true
	case FieldMedium:
		return 64, 36, true
	case FieldLarge:
		return 96, 54, true
	case FieldHuge:
		return 128, 72, true
	}
	return 0, 0, false
}

// Config contains all user settings.
type Config struct {
	Player              string      `yaml:"player"`
	Mode                Mode        `yaml:"mode"`
	TickSpeedMS         int         `yaml:"tick_speed_ms"`
	FieldSize           FieldSize   `yaml:"field_size"`
	CellSize            int         `yaml:"cell_size"`
	StagnationThreshold int         `yaml:"stagnation_threshold"` // 0 = width+height
	Level               string      `yaml:"level"`
	LevelsDir           string      `yaml:"levels_dir"`
	Audio               AudioConfig `yaml:"audio"`
}

// AudioConfig controls the sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 silent .. 1.0 full
}

// Dimensions returns the grid size selected by FieldSize.
func (c Config) Dimensions() (w, h int) {
	w, h, ok := c.FieldSize.Dimensions()
	if !ok {
		w, h, _ = FieldSmall.Dimensions()
	}
	return w, h
}

// SpeedLevel returns the 1..10 slider value for the configured tick.
func (c Config) SpeedLevel() int {
	return SpeedLevelForTick(c.TickSpeedMS)
}

// Validate checks that the settings can start a game.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if _, _, ok := c.FieldSize.Dimensions(); !ok {
		return fmt.Errorf("config: unknown field size %q", c.FieldSize)
	}
	if c.TickSpeedMS < MinTickMS || c.TickSpeedMS > MaxTickMS {
		return fmt.Errorf("config: tick_speed_ms %d outside [%d,%d]", c.TickSpeedMS, MinTickMS, MaxTickMS)
	}
	// A projectile must not cross more than one cell per tick.
	if c.CellSize < engine.ProjectileStep {
		return fmt.Errorf("config: cell_size must be at least %d, got %d", engine.ProjectileStep, c.CellSize)
	}
	if c.StagnationThreshold < 0 {
		return fmt.Errorf("config: stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume %.2f outside [0,1]", c.Audio.Volume)
	}
	return nil
}

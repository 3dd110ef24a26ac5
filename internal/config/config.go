// Package config provides game configuration loading and difficulty
// management for tetris.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the game.
type Config struct {
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Rules      RulesConfig      `yaml:"rules" toml:"rules"`
	Render     RenderConfig     `yaml:"render" toml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// TimingConfig defines gravity and frame timing.
type TimingConfig struct {
	TickMS    int `yaml:"tick_ms" toml:"tick_ms"`         // gravity period at level 0
	MinTickMS int `yaml:"min_tick_ms" toml:"min_tick_ms"` // floor for difficulty scaling
	FPS       int `yaml:"fps" toml:"fps"`
}

// RulesConfig defines game rules.
type RulesConfig struct {
	AutoRestart bool `yaml:"auto_restart" toml:"auto_restart"` // skip the game-over screen
	DotOnly     bool `yaml:"dot_only" toml:"dot_only"`         // spawn single-cell pieces only
}

// RenderConfig defines how the board is drawn.
type RenderConfig struct {
	Ghost     bool `yaml:"ghost" toml:"ghost"`
	CellWidth int  `yaml:"cell_width" toml:"cell_width"` // terminal columns per board cell
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // lines/turns at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // gravity speed-up at max difficulty
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that timing values are usable.
func (c Config) Validate() error {
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: timing.tick_ms must be positive, got %d", ErrInvalid, c.Timing.TickMS)
	}
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("%w: timing.fps must be positive, got %d", ErrInvalid, c.Timing.FPS)
	}
	if c.Timing.MinTickMS < 0 || c.Timing.MinTickMS > c.Timing.TickMS {
		return fmt.Errorf("%w: timing.min_tick_ms must be in [0, %d], got %d", ErrInvalid, c.Timing.TickMS, c.Timing.MinTickMS)
	}
	if c.Render.CellWidth < 1 {
		return fmt.Errorf("%w: render.cell_width must be at least 1, got %d", ErrInvalid, c.Render.CellWidth)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// TickInterval returns the base gravity period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// MinTickInterval returns the fastest gravity period difficulty may reach.
func (c Config) MinTickInterval() time.Duration {
	return time.Duration(c.Timing.MinTickMS) * time.Millisecond
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Timing: TimingConfig{
			TickMS:    650,
			MinTickMS: 100,
			FPS:       60,
		},
		Render: RenderConfig{
			Ghost:     true,
			CellWidth: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// presetOrder is the cycle order used by NextPreset.
var presetOrder = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// NextPreset returns the preset after p, wrapping around. Unknown
// presets go to easy.
func NextPreset(p DifficultyPreset) DifficultyPreset {
	for i, q := range presetOrder {
		if q == p {
			return presetOrder[(i+1)%len(presetOrder)]
		}
	}
	return DifficultyEasy
}

// PresetOf returns the preset that d corresponds to, or normal when the
// level was hand-tuned.
func PresetOf(d DifficultyConfig) DifficultyPreset {
	if !d.Enabled {
		return DifficultyFixed
	}
	for _, p := range presetOrder[:3] {
		if d.InitialLevel == InitialLevelForPreset(p) {
			return p
		}
	}
	return DifficultyNormal
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

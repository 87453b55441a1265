// Package config provides YAML/TOML game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config contains all configuration for the invaders game and its frontends.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Colors     ColorsConfig     `yaml:"colors" toml:"colors"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Frontend   FrontendConfig   `yaml:"frontend" toml:"frontend"`
}

// SimulationConfig defines the fixed-step scheduler.
type SimulationConfig struct {
	TickMs         uint64 `yaml:"tick_ms" toml:"tick_ms"`                 // Game tick period in ms
	EnemyEvery     int    `yaml:"enemy_every" toml:"enemy_every"`         // Enemy sub-tick threshold
	ExplosionEvery int    `yaml:"explosion_every" toml:"explosion_every"` // Explosion sub-tick threshold
	SpawnEvery     int    `yaml:"spawn_every" toml:"spawn_every"`         // Spawn sub-tick threshold
}

// PlayerConfig defines the player's rate limits.
type PlayerConfig struct {
	MovePeriodMs  uint64 `yaml:"move_period_ms" toml:"move_period_ms"`
	ShootPeriodMs uint64 `yaml:"shoot_period_ms" toml:"shoot_period_ms"`
}

// ScoringConfig defines score deltas and the display label.
type ScoringConfig struct {
	Label  string `yaml:"label" toml:"label"`
	Miss   int    `yaml:"miss" toml:"miss"`     // Projectile leaves the top of the grid
	Breach int    `yaml:"breach" toml:"breach"` // Enemy reaches the bottom of the grid
	Kill   int    `yaml:"kill" toml:"kill"`     // Projectile hits an enemy
}

// ColorsConfig defines the fill colour of every drawable.
type ColorsConfig struct {
	Player     core.Color `yaml:"player" toml:"player"`
	Enemy      core.Color `yaml:"enemy" toml:"enemy"`
	Projectile core.Color `yaml:"projectile" toml:"projectile"`
	Explosion  core.Color `yaml:"explosion" toml:"explosion"`
	Score      core.Color `yaml:"score" toml:"score"`
	ScoreBad   core.Color `yaml:"score_bad" toml:"score_bad"`
	Fps        core.Color `yaml:"fps" toml:"fps"`
	Background core.Color `yaml:"background" toml:"background"`
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
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/steps at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction int `yaml:"spawn_reduction" toml:"spawn_reduction"` // Spawn threshold reduction at max difficulty
}

// FrontendConfig groups per-frontend settings.
type FrontendConfig struct {
	TUI      TUIConfig      `yaml:"tui" toml:"tui"`
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Headless HeadlessConfig `yaml:"headless" toml:"headless"`
}

// TUIConfig configures the terminal frontend.
type TUIConfig struct {
	KeyHoldMs int `yaml:"key_hold_ms" toml:"key_hold_ms"` // Synthesised key release delay
	FPS       int `yaml:"fps" toml:"fps"`
}

// WindowConfig configures the desktop window frontend.
type WindowConfig struct {
	Scale float64 `yaml:"scale" toml:"scale"`
	Title string  `yaml:"title" toml:"title"`
}

// HeadlessConfig configures the batch frontend.
type HeadlessConfig struct {
	FrameMs uint64 `yaml:"frame_ms" toml:"frame_ms"`
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	var errs []error
	if c.Simulation.TickMs == 0 {
		errs = append(errs, errors.New("simulation.tick_ms must be positive"))
	}
	if c.Simulation.EnemyEvery < 0 || c.Simulation.ExplosionEvery < 0 || c.Simulation.SpawnEvery < 0 {
		errs = append(errs, errors.New("simulation sub-tick thresholds must not be negative"))
	}
	if c.Player.MovePeriodMs == 0 || c.Player.ShootPeriodMs == 0 {
		errs = append(errs, errors.New("player periods must be positive"))
	}
	if c.Frontend.TUI.FPS <= 0 {
		errs = append(errs, errors.New("frontend.tui.fps must be positive"))
	}
	if c.Frontend.Window.Scale <= 0 {
		errs = append(errs, errors.New("frontend.window.scale must be positive"))
	}
	if c.Frontend.Headless.FrameMs == 0 {
		errs = append(errs, errors.New("frontend.headless.frame_ms must be positive"))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for a preset name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// Presets lists the available difficulty presets.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyClassic, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
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
	return preset == DifficultyFixed || preset == DifficultyClassic
}

// ParsePreset resolves a preset name, case-insensitively.
func ParsePreset(name string) (DifficultyPreset, error) {
	preset := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Presets(), preset) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return preset, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// The classic preset restores the arcade's exact constants.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if !slices.Contains(Presets(), preset) {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	if preset == DifficultyClassic {
		def := DefaultConfig()
		cfg.Simulation = def.Simulation
		cfg.Player = def.Player
	}
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if preset != DifficultyFixed {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.ShootPeriodMs = 60
	case DifficultyHard:
		cfg.Player.MovePeriodMs = 100
	}
	return nil
}

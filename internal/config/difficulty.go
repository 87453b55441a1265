package config

import "math"

// MinSpawnEvery is the lowest spawn threshold difficulty scaling can reach.
const MinSpawnEvery = 40

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/steps.
func (d *DifficultyManager) Level(score int, steps int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(steps) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]; a negative score counts as no progress.
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnEvery returns the enemy spawn threshold for the current level.
// The threshold shrinks as difficulty rises, never below MinSpawnEvery.
// A disabled manager at level 0 always returns base.
func (d *DifficultyManager) SpawnEvery(base int, score int, steps int) int {
	level := d.Level(score, steps)
	if level == 0 {
		return base
	}
	reduction := int(level * float64(d.cfg.Scaling.SpawnReduction))
	result := base - reduction
	if result < MinSpawnEvery {
		result = min(base, MinSpawnEvery)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultConfig returns the default invaders configuration.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			TickMs:         10,
			EnemyEvery:     10,
			ExplosionEvery: 5,
			SpawnEvery:     200,
		},
		Player: PlayerConfig{
			MovePeriodMs:  80,
			ShootPeriodMs: 80,
		},
		Scoring: ScoringConfig{
			Label:  "Score",
			Miss:   -1,
			Breach: -10,
			Kill:   5,
		},
		Colors: ColorsConfig{
			Player:     core.ColorBlack,
			Enemy:      core.ColorBlack,
			Projectile: core.ColorRed,
			Explosion:  core.ColorGray,
			Score:      core.ColorBlue,
			ScoreBad:   core.ColorRust,
			Fps:        core.ColorBlack,
			Background: core.ColorWhite,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpawnReduction: 120,
			},
		},
		Frontend: FrontendConfig{
			TUI: TUIConfig{
				KeyHoldMs: 250,
				FPS:       60,
			},
			Window: WindowConfig{
				Scale: 1,
				Title: "Invaders",
			},
			Headless: HeadlessConfig{
				FrameMs: 16,
			},
		},
	}
}

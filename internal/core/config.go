package core

import "time"

// RuntimeConfig contains configuration passed to frontends at start-up.
type RuntimeConfig struct {
	ScreenW  int           // Terminal width in characters
	ScreenH  int           // Terminal height in characters
	Seed     int64         // RNG seed for deterministic gameplay
	Duration time.Duration // Run length for batch frontends; 0 means until quit
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 32,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Package headless runs the invaders game without a display. A simulated
// clock drives the game and an autopilot plays it, which makes runs
// reproducible for a given seed.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// DefaultDuration is the simulated run length when none is configured.
const DefaultDuration = 10 * time.Second

// Summary describes a finished run.
type Summary struct {
	Elapsed  time.Duration // simulated time
	Frames   int
	Steps    uint64
	Score    int
	Kills    int
	Misses   int
	Breaches int
	Spawns   int
}

// Simulate plays a full run and returns its summary together with the
// final frame.
func Simulate(ctx context.Context, opts registry.Options) (Summary, *core.Screen) {
	cfg := opts.Config
	duration := opts.Runtime.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	frame := cfg.Frontend.Headless.FrameMs
	if frame == 0 {
		frame = 16
	}

	raster := core.NewRaster(cfg.Colors.Background)
	gameOpts := []invaders.Option{invaders.WithConfig(cfg), invaders.WithSeed(opts.Runtime.Seed)}
	if opts.Logger != nil {
		gameOpts = append(gameOpts, invaders.WithLogger(opts.Logger))
	}
	game := invaders.New(raster, gameOpts...)

	var (
		sum Summary
		end = uint64(duration.Milliseconds())
	)
	for ts := frame; ts <= end; ts += frame {
		if ctx.Err() != nil {
			break
		}
		left, right, shoot := pilot(game.Snapshot())
		game.SetGamepadState(left, right, shoot)
		game.Update(ts)

		sum.Frames++
		sum.Elapsed = time.Duration(ts) * time.Millisecond
	}

	snap := game.Snapshot()
	sum.Steps = snap.Steps
	sum.Score = snap.Score
	sum.Kills = snap.Kills
	sum.Misses = snap.Misses
	sum.Breaches = snap.Breaches
	sum.Spawns = snap.Spawns

	game.Render()
	screen := core.NewScreen(core.RasterW, core.RasterH, cfg.Colors.Background)
	raster.Flush(screen)
	return sum, screen
}

// pilot steers the gun under the lowest enemy and keeps firing.
func pilot(s invaders.Snapshot) (left, right, shoot bool) {
	target, lowest := -1, -1
	for i := 0; i+2 < len(s.EnemyData); i += 3 {
		x, y, kind := s.EnemyData[i], s.EnemyData[i+1], s.EnemyData[i+2]
		if y <= lowest {
			continue
		}
		w, _ := invaders.EnemyKind(kind).Box()
		target, lowest = x+w/2, y
	}
	if target < 0 {
		return false, false, true
	}
	gun := s.PlayerX + 1
	return gun > target, gun < target, true
}

// Frontend runs the game against a simulated clock and prints the final
// frame.
type Frontend struct{}

func init() {
	registry.Register("headless", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "headless" }

// Title returns the display name.
func (Frontend) Title() string { return "Headless (autopilot)" }

// Run simulates a run and writes the final frame to opts.Out.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sum, screen := Simulate(ctx, opts)
	if _, err := fmt.Fprintln(out, screen.String()); err != nil {
		return fmt.Errorf("headless: write frame: %w", err)
	}

	logger.Info("run finished",
		"elapsed", sum.Elapsed,
		"frames", sum.Frames,
		"steps", sum.Steps,
		"score", sum.Score,
		"kills", sum.Kills,
		"misses", sum.Misses,
		"breaches", sum.Breaches,
		"spawns", sum.Spawns,
	)
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	flagFrontend   string
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDuration   time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game on the chosen frontend.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space      - Shoot
  ?          - Toggle help (terminal)
  Q/Ctrl+C   - Quit (Esc in the window)

Difficulty options:
  classic - The arcade constants, no progression (default)
  easy    - Start at lowest difficulty, faster shooting
  normal  - Start at 30% difficulty, progresses to max
  hard    - Start at 70% difficulty, slower movement
  fixed   - No progression, stays at config's initial level

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --frontend window
  invaders play --frontend headless --seed 7 --duration 1m
  invaders play --config ./my-invaders.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend: tui, window, headless")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config file (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+presetNames())
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Simulated run length for the headless frontend")
}

func runPlay(cmd *cobra.Command, args []string) {
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available frontends.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal frontend owns stdout/stderr while it runs
	var fallback io.Writer = os.Stderr
	if frontend.ID() == "tui" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	rt := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	rt.Duration = flagDuration

	if frontend.ID() == "tui" && (rt.ScreenW < core.RasterW || rt.ScreenH < core.RasterH+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d\n",
			rt.ScreenW, rt.ScreenH, core.RasterW, core.RasterH+1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", "frontend", frontend.ID(), "seed", rt.Seed)
	runErr := frontend.Run(ctx, registry.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
		Out:     os.Stdout,
	})

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

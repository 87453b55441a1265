// invaders is a small arcade shooter that runs in a terminal, a desktop
// window or headless.
//
// Usage:
//
//	invaders play              - Play in the terminal
//	invaders play -f window    - Play in a desktop window
//	invaders play -f headless  - Run the autopilot and print the last frame
//	invaders list              - List available frontends
//	invaders config            - Print the effective configuration
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-invaders/internal/platform/headless"
	_ "github.com/vovakirdan/tui-invaders/internal/platform/tui"
	_ "github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var (
	// Global flags
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot the falling enemies",
	Long: `Invaders is a small arcade shooter. Move along the bottom of the
screen, shoot the enemies before they reach you and keep your score up.

Available commands:
  play     - Start a game
  list     - Show all available frontends
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play --frontend window --difficulty hard
  invaders play --frontend headless --seed 42 --duration 30s
  invaders config --format toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. The returned closer releases the
// log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, closer, nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it.
The output is a complete config file that can be edited and passed back
with --config.

Examples:
  invaders config > ~/.invaders/config.yaml
  invaders config --difficulty hard
  invaders config --format toml > invaders.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config file (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+presetNames())
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Encode(cfg, config.Format(flagFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, fmt.Errorf("%w (choose one of: %s)", err, presetNames())
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// presetNames lists the difficulty presets for flag help and errors.
func presetNames() string {
	presets := config.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the invaders configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a file only needs to name
// the settings it changes. Files ending in .toml are decoded as TOML,
// everything else as YAML.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and decodes a single configuration file.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, formatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Decode unmarshals data in the given format onto cfg.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Encode marshals cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func TestNewLogger(t *testing.T) {
	flagLogFile = ""
	t.Cleanup(func() { flagLogLevel = "info" })

	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tc := range tests {
		flagLogLevel = tc.level
		var buf bytes.Buffer
		logger, closer, err := newLogger(&buf)
		if tc.wantErr {
			if err == nil {
				t.Errorf("newLogger(%q) should fail", tc.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("newLogger(%q) error = %v", tc.level, err)
		}
		if logger.GetLevel() != tc.want {
			t.Errorf("newLogger(%q) level = %v, expected %v", tc.level, logger.GetLevel(), tc.want)
		}
		if err := closer(); err != nil {
			t.Errorf("closer() error = %v", err)
		}
	}
}

func TestNewLoggerFile(t *testing.T) {
	flagLogLevel = "info"
	flagLogFile = filepath.Join(t.TempDir(), "invaders.log")
	t.Cleanup(func() { flagLogFile = "" })

	var fallback bytes.Buffer
	logger, closer, err := newLogger(&fallback)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hello", "n", 1)
	if err := closer(); err != nil {
		t.Fatalf("closer() error = %v", err)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "invaders") || !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected prefix and message", data)
	}
	if fallback.Len() != 0 {
		t.Errorf("fallback writer should be unused, got %q", fallback.String())
	}
}

func TestLoadConfigPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  kill: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	flagDifficulty = "hard"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Scoring.Kill != 7 {
		t.Errorf("Scoring.Kill = %d, expected 7", cfg.Scoring.Kill)
	}
	if !cfg.Difficulty.Enabled || cfg.Player.MovePeriodMs != 100 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	flagDifficulty = "Easy"
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig(Easy) error = %v", err)
	}
	if cfg.Player.ShootPeriodMs != 60 {
		t.Errorf("Player.ShootPeriodMs = %d, expected 60", cfg.Player.ShootPeriodMs)
	}

	flagDifficulty = "brutal"
	_, err = loadConfig()
	if !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("loadConfig() error = %v, expected ErrUnknownPreset", err)
	}
	if err != nil && !strings.Contains(err.Error(), presetNames()) {
		t.Errorf("loadConfig() error = %q, expected the list of presets", err)
	}
}

func TestPresetNames(t *testing.T) {
	got := presetNames()
	if got != "classic, easy, normal, hard, fixed" {
		t.Errorf("presetNames() = %q, expected %q", got, "classic, easy, normal, hard, fixed")
	}
}

func TestFrontendsRegistered(t *testing.T) {
	for _, id := range []string{"tui", "window", "headless"} {
		if !registry.Exists(id) {
			t.Errorf("frontend %q should be registered", id)
		}
	}
}

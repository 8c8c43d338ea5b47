package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Engine.TickRate != 60 {
		t.Errorf("Expected tick rate 60, got %d", cfg.Engine.TickRate)
	}
	if cfg.Settings.ThemeIndex != -1 || !cfg.Settings.Regular {
		t.Errorf("Unexpected default settings %+v", cfg.Settings)
	}
	if cfg.Settings.Snow || cfg.Settings.Stardust || cfg.Settings.Reverse || cfg.Settings.Butterfly {
		t.Errorf("Expected optional features off, got %+v", cfg.Settings)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thunderbolt.toml")
	data := `
[engine]
max_particles = 100
seed = 42

[settings]
theme_index = 15
snow = true

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.MaxParticles != 100 || cfg.Engine.Seed != 42 {
		t.Errorf("Engine not overlaid: %+v", cfg.Engine)
	}
	if cfg.Engine.MaxChainParticles != 30 {
		t.Errorf("Expected untouched default 30, got %d", cfg.Engine.MaxChainParticles)
	}
	if cfg.Settings.ThemeIndex != 15 || !cfg.Settings.Snow || !cfg.Settings.Regular {
		t.Errorf("Settings not overlaid: %+v", cfg.Settings)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging not overlaid: %+v", cfg.Logging)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.MaxParticles != 2500 {
		t.Errorf("Expected defaults, got %+v", cfg.Engine)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("[engine\nmax_particles = "), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	os.WriteFile(invalid, []byte("[engine]\nmax_particles = 0\n"), 0o644)
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tick rate", func(c *Config) { c.Engine.TickRate = 0 }},
		{"max delta", func(c *Config) { c.Engine.MaxDelta = -1 }},
		{"batch size", func(c *Config) { c.Engine.BatchSize = 0 }},
		{"pool size", func(c *Config) { c.Engine.MaxPoolSize = -1 }},
		{"viewport", func(c *Config) { c.Viewport.Width = 0 }},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"sample rate", func(c *Config) { c.Audio.Enabled = true; c.Audio.SampleRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestTickInterval(t *testing.T) {
	e := EngineConfig{TickRate: 50}
	if got := e.TickInterval(); got != 20*time.Millisecond {
		t.Errorf("Expected 20ms, got %v", got)
	}
	e.TickRate = 0
	if got := e.TickInterval(); got <= 0 {
		t.Errorf("Expected fallback interval, got %v", got)
	}
}

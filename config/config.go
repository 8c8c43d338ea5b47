// Package config loads engine configuration from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/thunderbolt/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Engine   EngineConfig   `toml:"engine"`
	Settings Settings       `toml:"settings"`
	Viewport ViewportConfig `toml:"viewport"`
	Logging  LoggingConfig  `toml:"logging"`
	Audio    AudioConfig    `toml:"audio"`
	Theme    ThemeConfig    `toml:"theme"`
}

type EngineConfig struct {
	TickRate          int     `toml:"tick_rate"` // frames per second
	MaxDelta          float64 `toml:"max_delta"` // seconds
	MaxParticles      int     `toml:"max_particles"`
	MaxChainParticles int     `toml:"max_chain_particles"`
	MaxPoolSize       int     `toml:"max_pool_size"`
	BatchSize         int     `toml:"batch_size"`
	Seed              uint64  `toml:"seed"` // 0 = seed from clock
}

// Settings is the user-facing feature snapshot read at spawn decisions
type Settings struct {
	ThemeIndex int  `toml:"theme_index"` // -1 = none
	Snow       bool `toml:"snow"`
	Regular    bool `toml:"regular"`
	Stardust   bool `toml:"stardust"`
	Reverse    bool `toml:"reverse"`
	Butterfly  bool `toml:"butterfly"`
}

type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

type ThemeConfig struct {
	File string `toml:"file"` // optional YAML with extra themes
}

// Load overlays the TOML file at path on the defaults
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			TickRate:          int(time.Second / parameter.TickInterval),
			MaxDelta:          parameter.MaxDelta,
			MaxParticles:      parameter.MaxParticles,
			MaxChainParticles: parameter.MaxChainParticles,
			MaxPoolSize:       parameter.MaxPoolSize,
			BatchSize:         parameter.BatchSize,
		},
		Settings: DefaultSettings(),
		Viewport: ViewportConfig{
			Width:  parameter.DefaultViewportWidth,
			Height: parameter.DefaultViewportHeight,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultSettings has regular particles on, every other feature off and no theme
func DefaultSettings() Settings {
	return Settings{
		ThemeIndex: -1,
		Regular:    true,
	}
}

// Validate rejects non-positive caps and rates
func (c *Config) Validate() error {
	e := c.Engine
	switch {
	case e.TickRate <= 0:
		return fmt.Errorf("%w: engine.tick_rate must be positive, got %d", ErrInvalid, e.TickRate)
	case e.MaxDelta <= 0:
		return fmt.Errorf("%w: engine.max_delta must be positive, got %g", ErrInvalid, e.MaxDelta)
	case e.MaxParticles <= 0:
		return fmt.Errorf("%w: engine.max_particles must be positive, got %d", ErrInvalid, e.MaxParticles)
	case e.MaxChainParticles < 0:
		return fmt.Errorf("%w: engine.max_chain_particles must not be negative, got %d", ErrInvalid, e.MaxChainParticles)
	case e.MaxPoolSize < 0:
		return fmt.Errorf("%w: engine.max_pool_size must not be negative, got %d", ErrInvalid, e.MaxPoolSize)
	case e.BatchSize <= 0:
		return fmt.Errorf("%w: engine.batch_size must be positive, got %d", ErrInvalid, e.BatchSize)
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive, got %gx%g", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// TickInterval converts the tick rate into a frame duration
func (e EngineConfig) TickInterval() time.Duration {
	if e.TickRate <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(e.TickRate)
}

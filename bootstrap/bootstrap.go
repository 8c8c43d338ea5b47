// Package bootstrap assembles config, logging, themes, audio and the engine for the host binaries
package bootstrap

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/audio"
	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/core"
	"github.com/lixenwraith/thunderbolt/engine"
	"github.com/lixenwraith/thunderbolt/logging"
	"github.com/lixenwraith/thunderbolt/palette"
)

// Flags are the command-line options shared by every host
type Flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Seed       uint64
	Audio      bool
}

// Register binds the shared flags on fs
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	fs.StringVar(&f.LogLevel, "log-level", "", "override logging.level")
	fs.StringVar(&f.LogFile, "log-file", "", "override logging.file")
	fs.Uint64Var(&f.Seed, "seed", 0, "override engine.seed (0 keeps the config value)")
	fs.BoolVar(&f.Audio, "audio", false, "enable audio cues")
}

// Runtime is a fully wired engine with its ambient services
type Runtime struct {
	Config *config.Config
	Log    *zap.Logger
	Themes *palette.Table
	Player *audio.Player
	Engine *engine.Engine
}

// Build loads the config, applies flag overrides and wires the engine
// Audio failures degrade to silence; every other failure is returned
func Build(f Flags) (*Runtime, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Logging.File = f.LogFile
	}
	if f.Seed != 0 {
		cfg.Engine.Seed = f.Seed
	}
	if f.Audio {
		cfg.Audio.Enabled = true
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	core.SetCrashHandler(func(r any, stack []byte) {
		log.Error("goroutine panic recovered", zap.Any("panic", r), zap.ByteString("stack", stack))
	})

	themes := palette.Default()
	if cfg.Theme.File != "" {
		if themes, err = palette.LoadFile(cfg.Theme.File); err != nil {
			return nil, err
		}
	}

	player := audio.NewPlayer(cfg.Audio, log.Named("audio"))
	if err := player.Init(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}

	eng, err := engine.New(cfg,
		engine.WithLogger(log.Named("engine")),
		engine.WithThemes(themes),
		engine.WithListener(player),
	)
	if err != nil {
		player.Close()
		return nil, err
	}

	log.Info("engine configured",
		zap.Int("tick_rate", cfg.Engine.TickRate),
		zap.Int("max_particles", cfg.Engine.MaxParticles),
		zap.Int("themes", themes.Len()),
		zap.Bool("audio", cfg.Audio.Enabled))

	return &Runtime{
		Config: cfg,
		Log:    log,
		Themes: themes,
		Player: player,
		Engine: eng,
	}, nil
}

// Close stops the engine and releases audio and the logger
func (r *Runtime) Close() {
	r.Engine.Stop()
	r.Player.Close()
	core.SetCrashHandler(nil)
	_ = r.Log.Sync()
}

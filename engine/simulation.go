package engine

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/field"
	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/physics"
	"github.com/lixenwraith/thunderbolt/pool"
	"github.com/lixenwraith/thunderbolt/scene"
	"github.com/lixenwraith/thunderbolt/spawn"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// SimulationConfig wires a Simulation; nil fields take defaults
type SimulationConfig struct {
	Seed     uint64
	MaxDelta float64

	Live     *LiveSet
	Pool     *pool.Pool
	Spawner  *spawn.Spawner
	Settings spawn.SettingsSource
	Themes   *palette.Table
	Typing   *field.Typing
	Snow     *field.Snowfall

	Viewport vmath.Vec2
	Logger   *zap.Logger
	Registry *status.Registry
}

// Simulation advances the world one tick at a time
// Step is deterministic for a given seed, event sequence and delta sequence
// Step, Capture and Reset must run on a single goroutine
type Simulation struct {
	maxDelta float64

	live     *LiveSet
	pool     *pool.Pool
	spawner  *spawn.Spawner
	settings spawn.SettingsSource
	themes   *palette.Table
	typing   *field.Typing
	snow     *field.Snowfall

	seed uint64
	rng  *vmath.FastRand
	wind *field.Wind
	grid *entity.Grid
	ctx  entity.Context

	viewport atomic.Pointer[vmath.Vec2]
	capturer *scene.Capturer

	time float64
	tick uint64

	log        *zap.Logger
	statSnow   *atomic.Int64
	statDT     *status.AtomicFloat
	statDTPeak *status.AtomicFloat
}

// NewSimulation creates a simulation with an empty live set
func NewSimulation(cfg SimulationConfig) *Simulation {
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = parameter.MaxDelta
	}
	if cfg.Live == nil {
		cfg.Live = NewLiveSet(parameter.MaxParticles, cfg.Registry)
	}
	if cfg.Pool == nil {
		cfg.Pool = pool.New(parameter.MaxPoolSize, cfg.Registry)
	}
	if cfg.Settings == nil {
		cfg.Settings = NewSettingsStore(config.DefaultSettings())
	}
	if cfg.Themes == nil {
		cfg.Themes = palette.Default()
	}
	if cfg.Typing == nil {
		cfg.Typing = &field.Typing{}
	}
	if cfg.Snow == nil {
		cfg.Snow = &field.Snowfall{}
	}
	if cfg.Spawner == nil {
		live := cfg.Live
		cfg.Spawner = spawn.New(spawn.Options{
			Seed:       cfg.Seed + 1,
			Pool:       cfg.Pool,
			Settings:   cfg.Settings,
			Themes:     cfg.Themes,
			Typing:     cfg.Typing,
			Snow:       cfg.Snow,
			ChainCount: func() int { return live.Count(entity.KindChain) },
			Logger:     cfg.Logger,
			Registry:   cfg.Registry,
		})
	}
	if cfg.Viewport.X <= 0 || cfg.Viewport.Y <= 0 {
		cfg.Viewport = vmath.Vec2{X: parameter.DefaultViewportWidth, Y: parameter.DefaultViewportHeight}
	}

	s := &Simulation{
		maxDelta:   cfg.MaxDelta,
		live:       cfg.Live,
		pool:       cfg.Pool,
		spawner:    cfg.Spawner,
		settings:   cfg.Settings,
		themes:     cfg.Themes,
		typing:     cfg.Typing,
		snow:       cfg.Snow,
		seed:       cfg.Seed,
		grid:       entity.NewGrid(parameter.SparkRepelRadius),
		capturer:   scene.NewCapturer(cfg.Registry, cfg.Logger),
		log:        cfg.Logger,
		statSnow:   cfg.Registry.Ints.Get("snow.active"),
		statDT:     cfg.Registry.Floats.Get("loop.dt"),
		statDTPeak: cfg.Registry.Floats.Get("loop.dt.peak"),
	}
	s.SetViewport(cfg.Viewport.X, cfg.Viewport.Y)
	s.Reset()
	return s
}

// Reset empties the live set and restores ambient state to the seed
func (s *Simulation) Reset() {
	s.live.Clear()
	s.rng = vmath.NewFastRand(s.seed)
	s.wind = field.NewWind(s.rng)
	s.typing.Reset()
	s.snow.Stop()
	s.spawner.Forget()
	s.time = 0
	s.tick = 0
}

// SetViewport updates the surface size used for snow placement and bounds
// Safe to call from any goroutine
func (s *Simulation) SetViewport(width, height float64) {
	if !(width > 0) || !(height > 0) {
		return
	}
	s.viewport.Store(&vmath.Vec2{X: width, Y: height})
}

// Viewport returns the current surface size
func (s *Simulation) Viewport() vmath.Vec2 {
	return *s.viewport.Load()
}

// Step clamps dt and runs one tick: wind, typing decay, snowfall, entity updates, culling
// Returns the delta actually used
func (s *Simulation) Step(dt float64) float64 {
	dt = physics.ClampDelta(dt, s.maxDelta)
	s.statDT.Set(dt)
	s.statDTPeak.Max(dt)

	settings := s.settings.Settings()

	s.wind.Update(dt, s.rng)
	s.typing.Update(dt)

	s.ctx = entity.Context{
		DT:           dt,
		Time:         s.time,
		Rand:         s.rng,
		Wind:         s.wind.Force(),
		WindStrength: s.wind.Strength(),
		Typing:       s.typing.Intensity(),
		Theme:        s.themes.Lookup(settings.ThemeIndex),
		SnowEnabled:  settings.Snow,
		Viewport:     s.Viewport(),
		Grid:         s.grid,
	}

	if settings.Snow {
		idle, _ := s.typing.Idle()
		batches := s.snow.Tick(dt, idle)
		for i := 0; i < batches; i++ {
			s.live.Add(s.spawner.SnowBatch(&s.ctx, s.live.Count(entity.KindSnowflake))...)
		}
	} else {
		s.snow.Stop()
	}
	s.ctx.Snowing = s.snow.Active()

	live := s.live.Snapshot()
	s.grid.Rebuild(live)
	for _, e := range live {
		e.Update(&s.ctx, live)
	}

	for _, e := range s.live.RemoveDead() {
		s.pool.Release(e)
	}

	s.time += dt
	s.tick++
	s.statSnow.Store(int64(s.live.Count(entity.KindSnowflake)))
	return dt
}

// Capture renders the live set into an immutable frame
func (s *Simulation) Capture() *scene.Frame {
	return s.capturer.Capture(s.tick, s.live.Snapshot())
}

// Live returns the live set
func (s *Simulation) Live() *LiveSet {
	return s.live
}

// Spawner returns the spawner feeding this simulation
func (s *Simulation) Spawner() *spawn.Spawner {
	return s.spawner
}

// Pool returns the spark pool
func (s *Simulation) Pool() *pool.Pool {
	return s.pool
}

// Wind returns the current wind force; simulation goroutine only
func (s *Simulation) Wind() vmath.Vec2 {
	return s.wind.Force()
}

// Ticks returns completed ticks since the last Reset
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Time returns simulated seconds since the last Reset
func (s *Simulation) Time() float64 {
	return s.time
}

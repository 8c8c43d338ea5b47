// Package engine runs the particle simulation and publishes frames to consumers
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/field"
	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/pool"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/scene"
	"github.com/lixenwraith/thunderbolt/spawn"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// ErrRunning is returned by Start while the loop is active
var ErrRunning = errors.New("engine already running")

// State is the loop state
type State uint8

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Option customizes an Engine
type Option func(*options)

type options struct {
	log      *zap.Logger
	reg      *status.Registry
	settings spawn.SettingsSource
	themes   *palette.Table
	listener spawn.Listener
	clock    Clock
}

// WithLogger sets the logger; default is a no-op logger
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithRegistry shares a telemetry registry
func WithRegistry(reg *status.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// WithSettings replaces the built-in settings store with an external source
func WithSettings(src spawn.SettingsSource) Option {
	return func(o *options) { o.settings = src }
}

// WithThemes sets the theme table; default is the embedded table
func WithThemes(t *palette.Table) Option {
	return func(o *options) { o.themes = t }
}

// WithListener observes chain, echo and snowfall spawns
func WithListener(l spawn.Listener) Option {
	return func(o *options) { o.listener = l }
}

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// Engine owns the simulation loop and is the host-facing entry point
// Input methods may be called from any goroutine; frames are read lock-free
type Engine struct {
	cfg   config.EngineConfig
	opts  options
	store *SettingsStore

	sim *Simulation

	// input serializes spawn and insertion so chain counts stay exact
	input sync.Mutex

	lifecycle sync.Mutex
	loop      *Loop

	frame atomic.Pointer[scene.Frame]

	subMu  sync.Mutex
	subs   map[int]chan struct{}
	nextID int

	statState *status.AtomicString
}

// New creates a stopped engine
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.reg == nil {
		o.reg = status.NewRegistry()
	}
	if o.themes == nil {
		o.themes = palette.Default()
	}
	if o.clock == nil {
		o.clock = SystemClock{}
	}

	e := &Engine{
		cfg:       cfg.Engine,
		opts:      o,
		subs:      make(map[int]chan struct{}),
		statState: o.reg.Strings.Get("loop.state"),
	}
	e.store = NewSettingsStore(cfg.Settings)
	settings := o.settings
	if settings == nil {
		settings = e.store
	}

	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	live := NewLiveSet(cfg.Engine.MaxParticles, o.reg)
	pl := pool.New(cfg.Engine.MaxPoolSize, o.reg)
	typing := &field.Typing{}
	snow := &field.Snowfall{}
	listener := o.listener
	if listener == nil {
		listener = spawn.Listeners{}
	}

	spawner := spawn.New(spawn.Options{
		Seed:              seed + 1,
		BatchSize:         cfg.Engine.BatchSize,
		MaxChainParticles: cfg.Engine.MaxChainParticles,
		Pool:              pl,
		Settings:          settings,
		Themes:            o.themes,
		Typing:            typing,
		Snow:              snow,
		ChainCount:        func() int { return live.Count(entity.KindChain) },
		Listener:          listener,
		Logger:            o.log.Named("spawn"),
		Registry:          o.reg,
	})

	e.sim = NewSimulation(SimulationConfig{
		Seed:     seed,
		MaxDelta: cfg.Engine.MaxDelta,
		Live:     live,
		Pool:     pl,
		Spawner:  spawner,
		Settings: settings,
		Themes:   o.themes,
		Typing:   typing,
		Snow:     snow,
		Viewport: vmath.Vec2{X: cfg.Viewport.Width, Y: cfg.Viewport.Height},
		Logger:   o.log,
		Registry: o.reg,
	})
	e.statState.Store(StateStopped.String())
	return e, nil
}

// Start launches the simulation loop from an empty live set
func (e *Engine) Start(ctx context.Context) error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if e.loop != nil && e.loop.Running() {
		return ErrRunning
	}

	e.input.Lock()
	e.sim.Reset()
	e.input.Unlock()
	e.frame.Store(nil)

	e.loop = NewLoop(e.cfg.TickInterval(), e.cfg.MaxDelta, e.opts.clock, e.tick, e.opts.reg, e.opts.log)
	e.loop.Start(ctx)
	e.statState.Store(StateRunning.String())
	return nil
}

// Stop halts the loop and waits for it to exit; safe to call when stopped
func (e *Engine) Stop() {
	e.lifecycle.Lock()
	loop := e.loop
	e.lifecycle.Unlock()

	if loop != nil {
		loop.Stop()
	}
	e.statState.Store(StateStopped.String())
}

// State reports the loop state
func (e *Engine) State() State {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()
	if e.loop != nil && e.loop.Running() {
		return StateRunning
	}
	return StateStopped
}

// tick runs on the loop goroutine
func (e *Engine) tick(dt float64) {
	e.sim.Step(dt)
	e.frame.Store(e.sim.Capture())
	e.notify()

	if t := e.sim.Ticks(); t%parameter.StatusLogEvery == 0 && e.opts.log.Core().Enabled(zap.DebugLevel) {
		e.opts.log.Debug("live entities", append([]zap.Field{zap.Uint64("tick", t)}, e.opts.reg.Fields()...)...)
	}
}

// PointerMoved spawns at a caret or pointer position; ignored while stopped
func (e *Engine) PointerMoved(ev spawn.PointerEvent) {
	if e.State() != StateRunning {
		return
	}
	e.input.Lock()
	defer e.input.Unlock()
	e.sim.Live().Add(e.sim.Spawner().PointerMoved(ev)...)
}

// TextTyped records a keystroke
func (e *Engine) TextTyped() {
	if e.State() != StateRunning {
		return
	}
	e.sim.Spawner().Typed()
}

// TextDeleted spawns a reverse echo when the feature is enabled
func (e *Engine) TextDeleted(ev spawn.PointerEvent) {
	if e.State() != StateRunning {
		return
	}
	echo := e.sim.Spawner().Deleted(ev)
	e.input.Lock()
	defer e.input.Unlock()
	e.sim.Live().Add(echo...)
}

// Frame returns the most recently published frame, nil before the first tick
func (e *Engine) Frame() *scene.Frame {
	return e.frame.Load()
}

// Scene projects the latest frame for the given scroll offset
func (e *Engine) Scene(scroll vmath.Vec2) render.Scene {
	return e.Frame().Project(scroll)
}

// Subscribe returns a channel that receives a signal after every published frame
// Signals coalesce when the consumer is slow; cancel releases the subscription
func (e *Engine) Subscribe() (<-chan struct{}, func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextID
	e.nextID++
	ch := make(chan struct{}, 1)
	e.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.subMu.Lock()
			defer e.subMu.Unlock()
			delete(e.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (e *Engine) notify() {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SetViewport reports the surface size in pixels
func (e *Engine) SetViewport(width, height float64) {
	e.sim.SetViewport(width, height)
}

// Settings returns the built-in settings store
// When an external source was supplied with WithSettings, writes here have no effect on spawning
func (e *Engine) Settings() *SettingsStore {
	return e.store
}

// Registry returns the telemetry registry
func (e *Engine) Registry() *status.Registry {
	return e.opts.reg
}

// Themes returns the theme table
func (e *Engine) Themes() *palette.Table {
	return e.opts.themes
}

// Live returns the number of live entities
func (e *Engine) Live() int {
	return e.sim.Live().Len()
}

// Status renders a one-line summary of settings and live counts for host status bars
func (e *Engine) Status() string {
	s := e.store.Settings()
	if src := e.opts.settings; src != nil {
		s = src.Settings()
	}
	on := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf(" theme:%s  regular:%s snow:%s stardust:%s butterfly:%s reverse:%s  live:%d",
		e.opts.themes.Lookup(s.ThemeIndex).Name,
		on(s.Regular), on(s.Snow), on(s.Stardust), on(s.Butterfly), on(s.Reverse),
		e.Live())
}

package spawn

import (
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/field"
	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/pool"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Options configures a Spawner; zero fields take defaults
type Options struct {
	Seed              uint64
	BatchSize         int
	MaxChainParticles int

	Pool     *pool.Pool
	Settings SettingsSource
	Themes   *palette.Table
	Typing   *field.Typing
	Snow     *field.Snowfall

	// ChainCount reports live ChainLinks; nil counts as zero
	ChainCount func() int

	Listener Listener
	Logger   *zap.Logger
	Registry *status.Registry
}

type staticSettings config.Settings

func (s staticSettings) Settings() config.Settings { return config.Settings(s) }

// Spawner creates entities from input events
// Safe for concurrent use; entities it returns are not yet shared with any other goroutine
type Spawner struct {
	mu     sync.Mutex
	rng    *vmath.FastRand
	last   map[string]vmath.Vec2
	origin vmath.Vec2

	batch     int
	maxChains int

	pool       *pool.Pool
	settings   SettingsSource
	themes     *palette.Table
	typing     *field.Typing
	snow       *field.Snowfall
	chainCount func() int
	listener   Listener
	log        *zap.Logger

	statSpawned      *atomic.Int64
	statChainDropped *atomic.Int64
	statDropped      *atomic.Int64
}

// New creates a spawner
func New(opts Options) *Spawner {
	if opts.BatchSize <= 0 {
		opts.BatchSize = parameter.BatchSize
	}
	if opts.MaxChainParticles == 0 {
		opts.MaxChainParticles = parameter.MaxChainParticles
	}
	if opts.Pool == nil {
		opts.Pool = pool.New(parameter.MaxPoolSize, opts.Registry)
	}
	if opts.Settings == nil {
		opts.Settings = staticSettings(config.DefaultSettings())
	}
	if opts.Themes == nil {
		opts.Themes = palette.Default()
	}
	if opts.Typing == nil {
		opts.Typing = &field.Typing{}
	}
	if opts.Snow == nil {
		opts.Snow = &field.Snowfall{}
	}
	if opts.ChainCount == nil {
		opts.ChainCount = func() int { return 0 }
	}
	if opts.Listener == nil {
		opts.Listener = nopListener{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = status.NewRegistry()
	}

	return &Spawner{
		rng:              vmath.NewFastRand(opts.Seed),
		last:             make(map[string]vmath.Vec2),
		batch:            opts.BatchSize,
		maxChains:        opts.MaxChainParticles,
		pool:             opts.Pool,
		settings:         opts.Settings,
		themes:           opts.Themes,
		typing:           opts.Typing,
		snow:             opts.Snow,
		chainCount:       opts.ChainCount,
		listener:         opts.Listener,
		log:              opts.Logger,
		statSpawned:      opts.Registry.Ints.Get("entity.spawned"),
		statChainDropped: opts.Registry.Ints.Get("chain.dropped"),
		statDropped:      opts.Registry.Ints.Get("events.dropped"),
	}
}

// PointerMoved emits a kind-weighted batch at the event point once the source has moved
// past the epsilon, plus a chain from the previous position when it moved past the chain threshold
// The first event of a source always spawns a batch
func (s *Spawner) PointerMoved(ev PointerEvent) []entity.Entity {
	if !ev.Valid() {
		s.drop("pointer", ev)
		return nil
	}
	settings := s.settings.Settings()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.origin = ev.Origin
	world := ev.Point.Add(ev.Origin)
	prev, seen := s.last[ev.Source]
	s.last[ev.Source] = world

	dist := math.Inf(1)
	if seen {
		dist = prev.Dist(world)
	}
	if dist <= parameter.MoveEpsilon {
		return nil
	}

	out := make([]entity.Entity, 0, s.batch+parameter.ChainSegments+1)
	for i := 0; i < s.batch; i++ {
		if e := s.unit(settings, ev); e != nil {
			out = append(out, e)
		}
	}

	if seen && dist > parameter.ChainThreshold {
		out = s.chain(out, ev, prev.Sub(ev.Origin))
	}

	s.statSpawned.Add(int64(len(out)))
	return out
}

// unit rolls one entity kind through the bands of enabled features
// A disabled feature claims no band, so its share falls through to the next
func (s *Spawner) unit(settings config.Settings, ev PointerEvent) entity.Entity {
	roll := s.rng.Float64()
	bands := [...]struct {
		enabled bool
		chance  float64
		kind    entity.Kind
	}{
		{settings.Snow, parameter.SnowChance, entity.KindSnowflake},
		{settings.Stardust, parameter.StardustChance, entity.KindStardust},
		{settings.Butterfly, parameter.ButterflyChance, entity.KindButterfly},
	}

	kind, ok := entity.KindSpark, settings.Regular
	upper := 0.0
	for _, b := range bands {
		if !b.enabled {
			continue
		}
		upper += b.chance
		if roll < upper {
			kind, ok = b.kind, true
			break
		}
	}
	if !ok {
		return nil
	}

	var e entity.Entity
	switch kind {
	case entity.KindSnowflake:
		e = entity.NewSnowflake(s.rng, s.rng.Intn(parameter.SnowLayers))
	case entity.KindStardust:
		e = entity.NewStardust(s.rng)
	case entity.KindButterfly:
		e = entity.NewButterfly(s.rng)
	default:
		e = s.spark()
	}
	entity.Place(e, ev.Origin, ev.Point)
	return e
}

// spark reuses a pooled spark when one is available
func (s *Spawner) spark() *entity.Spark {
	if e, ok := s.pool.Acquire(entity.KindSpark); ok {
		if sp, ok := e.(*entity.Spark); ok {
			sp.Reset(s.rng)
			return sp
		}
	}
	return entity.NewSpark(s.rng)
}

// chain appends links along the segment from the previous local position to the event point
// Requests beyond the live ChainLink cap are truncated, a full cap drops the request
func (s *Spawner) chain(out []entity.Entity, ev PointerEvent, from vmath.Vec2) []entity.Entity {
	links := parameter.ChainSegments + 1
	room := s.maxChains - s.chainCount()
	if room <= 0 {
		s.statChainDropped.Add(1)
		s.log.Debug("chain dropped", zap.String("source", ev.Source), zap.Int("cap", s.maxChains))
		return out
	}
	if links > room {
		links = room
	}

	delta := ev.Point.Sub(from)
	reach := delta.Len() / parameter.ChainDistanceDivisor
	for i := 0; i < links; i++ {
		t := float64(i) / float64(parameter.ChainSegments)
		p := from.Add(delta.Scale(t)).Add(vmath.Vec2{
			X: s.rng.Range(-parameter.ChainJitter, parameter.ChainJitter),
			Y: s.rng.Range(-parameter.ChainJitter, parameter.ChainJitter),
		})

		l := entity.NewChainLink(s.rng)
		l.Force = delta.Scale(parameter.ChainInitialForceScale)
		l.MaxChainDistance = reach
		entity.Place(l, ev.Origin, p)
		out = append(out, l)
	}

	s.listener.ChainSpawned(links)
	return out
}

// Typed records a keystroke and starts snowfall when the feature is enabled
// Nothing is spawned here; the simulation accumulator drives snow batches
func (s *Spawner) Typed() {
	s.typing.Keystroke()
	if !s.settings.Settings().Snow {
		return
	}
	if s.snow.Start() {
		s.log.Debug("snowfall started")
		s.listener.SnowStarted()
	}
}

// Deleted pre-simulates a Spark cluster at the event point and returns one ReverseEcho replaying it
// Returns nothing when reverse particles are disabled
func (s *Spawner) Deleted(ev PointerEvent) []entity.Entity {
	if !ev.Valid() {
		s.drop("delete", ev)
		return nil
	}
	settings := s.settings.Settings()
	if !settings.Reverse {
		return nil
	}

	s.mu.Lock()
	s.origin = ev.Origin
	rng := s.rng.Fork()
	s.mu.Unlock()

	cluster := make([]*entity.Spark, parameter.EchoClusterSize)
	for i := range cluster {
		cluster[i] = entity.NewSpark(rng)
		entity.Place(cluster[i], ev.Origin, ev.Point)
	}

	ctx := &entity.Context{
		DT:    parameter.FixedDelta,
		Rand:  rng,
		Theme: s.themes.Lookup(settings.ThemeIndex),
	}
	echo := entity.NewReverseEcho(entity.Record(cluster, ctx, parameter.EchoHorizon))
	entity.Place(echo, ev.Origin, ev.Point)

	s.statSpawned.Add(1)
	s.listener.EchoSpawned()
	return []entity.Entity{echo}
}

// SnowBatch creates flakes above the viewport for one accumulator interval
// The count scales with typing intensity and never lifts live flakes above the snow cap
// Runs on the simulation goroutine and draws from ctx.Rand
func (s *Spawner) SnowBatch(ctx *entity.Context, liveSnow int) []entity.Entity {
	spread := parameter.SnowBatchMax - parameter.SnowBatchMin
	count := parameter.SnowBatchMin + int(math.Round(float64(spread)*vmath.Clamp01(ctx.Typing)))
	count = min(count, parameter.MaxSnowflakes-liveSnow)
	if count <= 0 {
		return nil
	}

	s.mu.Lock()
	origin := s.origin
	s.mu.Unlock()

	out := make([]entity.Entity, 0, count)
	for i := 0; i < count; i++ {
		f := entity.NewSnowflake(ctx.Rand, ctx.Rand.Intn(parameter.SnowLayers))
		entity.Place(f, origin, vmath.Vec2{
			X: ctx.Rand.Range(0, ctx.Viewport.X),
			Y: -parameter.SnowSpawnMargin,
		})
		out = append(out, f)
	}
	s.statSpawned.Add(int64(len(out)))
	return out
}

// Forget clears tracked positions, so the next event of every source spawns unconditionally
func (s *Spawner) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.last)
}

func (s *Spawner) drop(op string, ev PointerEvent) {
	s.statDropped.Add(1)
	s.log.Debug("malformed event dropped",
		zap.String("op", op),
		zap.String("source", ev.Source),
		zap.Float64("x", ev.Point.X),
		zap.Float64("y", ev.Point.Y))
}

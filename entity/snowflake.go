package entity

import (
	"math"

	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/physics"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// SizeBucket classifies flakes for speed and shape
type SizeBucket uint8

const (
	SnowSmall SizeBucket = iota
	SnowMedium
	SnowLarge
)

// snowTint is the faint blue-white of every flake
var snowTint = render.RGB{R: 235, G: 242, B: 255}

// Snowflake falls through depth layers and wraps to the top while snow is on
// Unlike other kinds it does not die on leaving the view while the feature is enabled
type Snowflake struct {
	Body

	Size   float64
	Bucket SizeBucket
	// Layer is the depth, 0 is front
	Layer int

	Force     vmath.Vec2
	FallSpeed float64

	SwayPhase float64
	SwayFreq  float64
	SwayAmp   float64

	Rotation float64
	Spin     float64

	SparklePhase float64
	SparkleFreq  float64

	// Recycled counts wraps to the top of the view
	Recycled int

	windFade float64
}

// NewSnowflake allocates a randomized flake on the given layer
func NewSnowflake(rng *vmath.FastRand, layer int) *Snowflake {
	f := &Snowflake{}
	f.Reset(rng)
	f.Layer = max(0, min(layer, parameter.SnowLayers-1))
	return f
}

func (f *Snowflake) Kind() Kind { return KindSnowflake }

// Reset re-randomizes appearance and lifetime; layer and position are kept
func (f *Snowflake) Reset(rng *vmath.FastRand) {
	f.revive(rng.Range(parameter.SnowLifetimeMin, parameter.SnowLifetimeMax))
	f.randomize(rng)
	f.Recycled = 0
	f.windFade = 0
}

func (f *Snowflake) randomize(rng *vmath.FastRand) {
	roll := rng.Float64()
	switch {
	case roll < parameter.SnowSmallWeight:
		f.Bucket = SnowSmall
		f.Size = rng.Range(parameter.SnowSmallMin, parameter.SnowSmallMax)
	case roll < parameter.SnowSmallWeight+parameter.SnowMediumWeight:
		f.Bucket = SnowMedium
		f.Size = rng.Range(parameter.SnowMediumMin, parameter.SnowMediumMax)
	default:
		f.Bucket = SnowLarge
		f.Size = rng.Range(parameter.SnowLargeMin, parameter.SnowLargeMax)
	}

	f.FallSpeed = parameter.SnowFallBase + f.Size*parameter.SnowFallPerSize*rng.Range(0.8, 1.2)
	f.Force = vmath.Vec2{}
	f.SwayFreq = rng.Range(0.5, 1.5)
	f.SwayAmp = rng.Range(5, 15)
	f.SwayPhase = rng.Angle()
	f.Rotation = rng.Angle()
	f.Spin = rng.Range(-1, 1)
	f.SparkleFreq = rng.Range(2, 5)
	f.SparklePhase = rng.Angle()
}

// depth returns the speed and force scale of the flake's layer
func (f *Snowflake) depth() float64 {
	return 1 - float64(f.Layer)*parameter.SnowLayerFalloff
}

func (f *Snowflake) Update(ctx *Context, live []Entity) {
	if f.Dead {
		return
	}
	dt := ctx.DT
	depth := f.depth()

	f.SwayPhase += f.SwayFreq * dt
	f.Force.X += math.Sin(f.SwayPhase) * f.SwayAmp * dt
	f.Force = f.Force.Add(ctx.Wind.Scale(parameter.SnowWindInfluence * depth * dt))

	ctx.Near(f, live, f.Size*parameter.SnowRepelRange, func(other Entity, rel vmath.Vec2) {
		o, ok := other.(*Snowflake)
		if !ok || o.Layer != f.Layer {
			return
		}
		f.Force = f.Force.Add(physics.LinearRepulsion(f.Pos, rel,
			f.Size*parameter.SnowRepelRange, parameter.SnowRepelStrength, dt))
	})

	f.Pos.X += f.Force.X * dt
	f.Pos.Y += (f.FallSpeed*depth + f.Force.Y) * dt
	physics.ApplyFriction(&f.Force, parameter.SnowFriction)

	f.Rotation += f.Spin * dt
	f.SparklePhase += f.SparkleFreq * dt
	f.windFade = parameter.SnowWindFade * ctx.WindStrength

	f.Lifetime -= dt

	if f.outOfBounds(ctx.Viewport) {
		if !ctx.SnowEnabled {
			f.Dead = true
			return
		}
		f.wrap(ctx)
	}

	if f.Lifetime <= 0 {
		f.Dead = true
	}
}

func (f *Snowflake) outOfBounds(view vmath.Vec2) bool {
	m := parameter.SnowBoundsMargin
	return f.Pos.X < -m || f.Pos.X > view.X+m || f.Pos.Y > view.Y+m
}

// wrap moves the flake back above the view with fresh parameters
// Lifetime is only restored while snowfall is active, so a stopped snowfall drains
func (f *Snowflake) wrap(ctx *Context) {
	f.randomize(ctx.Rand)
	f.Pos = vmath.Vec2{
		X: ctx.Rand.Range(0, ctx.Viewport.X),
		Y: -parameter.SnowSpawnMargin,
	}
	if ctx.Snowing {
		f.revive(ctx.Rand.Range(parameter.SnowLifetimeMin, parameter.SnowLifetimeMax))
	}
	f.Recycled++
}

func (f *Snowflake) Render(c *render.Canvas, _ []Entity) {
	if f.Dead {
		return
	}
	sparkle := 0.75 + 0.25*math.Sin(f.SparklePhase)
	fadeOut := vmath.Clamp01(f.Lifetime)
	alpha := 0.8 * sparkle * (1 - f.windFade) * fadeOut * (1 - float64(f.Layer)*0.2)
	if alpha <= 0 {
		return
	}
	col := snowTint.WithAlpha(alpha)
	width := max(0.5, f.Size/6)

	for k := 0; k < 6; k++ {
		angle := f.Rotation + float64(k)*math.Pi/3
		tip := f.Pos.Add(vmath.Polar(f.Size, angle))
		c.StrokeLine(f.Pos, tip, width, col)

		if f.Bucket == SnowSmall {
			continue
		}
		fork := f.Pos.Add(vmath.Polar(f.Size*0.6, angle))
		branch := f.Size * 0.35
		c.StrokeLine(fork, fork.Add(vmath.Polar(branch, angle+math.Pi/4)), width, col)
		c.StrokeLine(fork, fork.Add(vmath.Polar(branch, angle-math.Pi/4)), width, col)
	}
}

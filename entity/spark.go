package entity

import (
	"math"

	"github.com/lixenwraith/thunderbolt/field"
	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/physics"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Spark is the generic glowing particle
// All state is held by value: copying a Spark yields an independent snapshot
type Spark struct {
	Body

	Size     float64
	Force    vmath.Vec2
	Friction float64

	// Color is StartColor→EndColor interpolated by remaining lifetime
	Color      render.RGB
	StartColor render.RGB
	EndColor   render.RGB
	GlowRadius float64

	WobblePhase float64
	WobbleFreq  float64
	WobbleAmp   float64
	PulsePhase  float64
	PulseFreq   float64

	// DarkGlow is set while a dark theme tints the spark near-black
	DarkGlow bool

	themed bool

	trail     [parameter.SparkTrailCapacity]vmath.Vec2
	trailHead int
	trailLen  int
}

// NewSpark allocates a randomized spark at the local origin
func NewSpark(rng *vmath.FastRand) *Spark {
	s := &Spark{}
	s.Reset(rng)
	return s
}

func (s *Spark) Kind() Kind { return KindSpark }

// Reset clears all state including position and trail, then re-randomizes
func (s *Spark) Reset(rng *vmath.FastRand) {
	*s = Spark{}
	s.revive(parameter.SparkLifetime)

	s.Size = float64(rng.IntRange(parameter.SparkSizeMin, parameter.SparkSizeMax))
	s.Force = vmath.Polar(rng.Range(parameter.SparkSpeedMin, parameter.SparkSpeedMax), rng.Angle())
	s.Friction = parameter.SparkFriction

	s.StartColor = palette.HSV(rng.Float64(), parameter.SparkSaturation, 1)
	s.EndColor = jitterColor(s.StartColor, rng)
	s.Color = s.StartColor
	s.GlowRadius = s.Size * parameter.SparkGlowScale

	s.WobbleFreq = rng.Range(parameter.SparkWobbleFreqMin, parameter.SparkWobbleFreqMax)
	s.WobbleAmp = rng.Range(parameter.SparkWobbleAmpMin, parameter.SparkWobbleAmpMax)
	s.WobblePhase = rng.Angle()
	s.PulseFreq = rng.Range(parameter.SparkPulseFreqMin, parameter.SparkPulseFreqMax)
	s.PulsePhase = rng.Angle()
}

func jitterColor(c render.RGB, rng *vmath.FastRand) render.RGB {
	j := parameter.SparkEndColorJitter
	return c.Jitter(rng.IntRange(-j, j), rng.IntRange(-j, j), rng.IntRange(-j, j))
}

func (s *Spark) Update(ctx *Context, live []Entity) {
	if s.Dead {
		return
	}
	dt := ctx.DT
	rng := ctx.Rand

	s.pushTrail(s.Pos)

	s.WobblePhase += s.WobbleFreq * dt
	s.Force.X += math.Sin(s.WobblePhase) * s.WobbleAmp * dt

	if rng.Chance(parameter.SparkGustChance) {
		physics.ApplyImpulse(&s.Force,
			rng.Range(-parameter.SparkGustForce, parameter.SparkGustForce),
			rng.Range(-parameter.SparkGustForce, parameter.SparkGustForce))
	}

	s.Force = s.Force.Add(field.Force(s.Pos, ctx.Time).Scale(dt))

	ctx.Near(s, live, parameter.SparkRepelRadius, func(_ Entity, rel vmath.Vec2) {
		s.Force = s.Force.Add(physics.InverseRepulsion(s.Pos, rel,
			parameter.SparkRepelRadius, parameter.SparkRepelStrength, dt))
	})

	physics.ApplyGravity(&s.Force, parameter.SparkGravity, dt)
	physics.Integrate(&s.Pos, s.Force, dt)
	physics.ApplyFriction(&s.Force, physics.JitteredFriction(s.Friction, parameter.SparkFrictionJitter, rng))

	s.PulsePhase += s.PulseFreq * dt

	// Theme tint applies once, shortly after spawn
	if !s.themed && s.Lifetime > parameter.SparkThemeBandLow && s.Lifetime < parameter.SparkThemeBandHigh {
		s.themed = true
		if c, ok := ctx.Theme.Random(rng); ok {
			s.StartColor = c
			s.EndColor = jitterColor(c, rng)
		}
	}

	s.age(dt)

	s.Color = render.Lerp(s.EndColor, s.StartColor, s.LifeFraction())
	s.DarkGlow = ctx.Theme.Dark && s.Color.Below(parameter.SparkDarkThreshold)
}

func (s *Spark) pushTrail(p vmath.Vec2) {
	s.trail[s.trailHead] = p
	s.trailHead = (s.trailHead + 1) % len(s.trail)
	if s.trailLen < len(s.trail) {
		s.trailLen++
	}
}

// Trail returns recorded positions, oldest first
func (s *Spark) Trail() []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, s.trailLen)
	start := (s.trailHead - s.trailLen + len(s.trail)) % len(s.trail)
	for i := 0; i < s.trailLen; i++ {
		out = append(out, s.trail[(start+i)%len(s.trail)])
	}
	return out
}

func (s *Spark) Render(c *render.Canvas, _ []Entity) {
	life := s.LifeFraction()
	if life <= 0 {
		return
	}

	if s.trailLen > 1 {
		pts := append(s.Trail(), s.Pos)
		c.StrokePolyline(pts, s.Size/4, s.Color.WithAlpha(parameter.SparkTrailAlpha*life))
	}

	pulse := 1 + parameter.SparkPulseAmount*math.Sin(s.PulsePhase)
	glow := s.GlowRadius * pulse

	layers, base := parameter.SparkGlowLayers, parameter.SparkGlowAlpha
	if s.DarkGlow {
		layers, base = parameter.SparkDarkGlowLayers, parameter.SparkDarkGlowAlpha
	}
	for i := layers; i >= 1; i-- {
		k := float64(i) / float64(layers)
		alpha := vmath.Clamp01(base * k * life)
		if s.DarkGlow {
			alpha = vmath.Clamp01(alpha * parameter.SparkDarkGlowBoost)
		}
		c.FillCircle(s.Pos, glow*k/2, s.Color.WithAlpha(alpha))
	}

	c.FillCircle(s.Pos, s.Size*pulse/2, s.Color.WithAlpha(life))
}

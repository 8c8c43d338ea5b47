package entity

import (
	"math"

	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// wingShape is the right forewing and hindwing outline in units of Size, body at the origin
var wingShape = []vmath.Vec2{
	{X: 0, Y: -0.1},
	{X: 0.45, Y: -0.75},
	{X: 1.0, Y: -0.85},
	{X: 1.1, Y: -0.35},
	{X: 0.55, Y: 0.05},
	{X: 0.85, Y: 0.45},
	{X: 0.6, Y: 0.85},
	{X: 0.2, Y: 0.6},
	{X: 0, Y: 0.15},
}

// Butterfly follows a rising Lissajous path with flapping wings
type Butterfly struct {
	Body

	Size float64

	// Anchor is the path center, rising slowly and nudged by jitter
	Anchor vmath.Vec2
	AmpX   float64
	AmpY   float64
	FreqX  float64
	FreqY  float64
	PhaseX float64
	PhaseY float64

	FlapPhase float64
	FlapFreq  float64
	// Tilt is the body roll following horizontal velocity
	Tilt float64

	WingColor   render.RGB
	AccentColor render.RGB
}

// NewButterfly allocates a randomized butterfly
func NewButterfly(rng *vmath.FastRand) *Butterfly {
	b := &Butterfly{}
	b.Reset(rng)
	return b
}

func (b *Butterfly) Kind() Kind { return KindButterfly }

func (b *Butterfly) Reset(rng *vmath.FastRand) {
	*b = Butterfly{}
	b.revive(rng.Range(parameter.ButterflyLifetimeMin, parameter.ButterflyLifetimeMax))

	b.Size = rng.Range(parameter.ButterflySizeMin, parameter.ButterflySizeMax)
	b.AmpX = rng.Range(parameter.ButterflyAmpXMin, parameter.ButterflyAmpXMax)
	b.AmpY = rng.Range(parameter.ButterflyAmpYMin, parameter.ButterflyAmpYMax)
	b.FreqX = rng.Range(parameter.ButterflyFreqMin, parameter.ButterflyFreqMax)
	b.FreqY = rng.Range(parameter.ButterflyFreqMin, parameter.ButterflyFreqMax)
	b.PhaseX = rng.Angle()
	b.PhaseY = rng.Angle()
	b.FlapFreq = rng.Range(parameter.ButterflyFlapMin, parameter.ButterflyFlapMax)
	b.FlapPhase = rng.Angle()

	hue := rng.Float64()
	b.WingColor = palette.HSV(hue, 0.75, 1)
	b.AccentColor = palette.HSV(hue+0.1, 0.9, 0.6)
}

func (b *Butterfly) offset() vmath.Vec2 {
	return vmath.Vec2{X: b.AmpX * math.Sin(b.PhaseX), Y: b.AmpY * math.Sin(b.PhaseY)}
}

// Settle places the path anchor so the current position lies on the path
func (b *Butterfly) Settle() {
	b.Anchor = b.Pos.Sub(b.offset())
}

func (b *Butterfly) Update(ctx *Context, _ []Entity) {
	if b.Dead {
		return
	}
	dt := ctx.DT

	b.PhaseX += b.FreqX * dt
	b.PhaseY += b.FreqY * dt
	b.Anchor.Y -= parameter.ButterflyRise * dt

	if ctx.Rand.Chance(parameter.ButterflyJitterChance) {
		b.Anchor.X += ctx.Rand.Range(-parameter.ButterflyJitter, parameter.ButterflyJitter)
		b.Anchor.Y += ctx.Rand.Range(-parameter.ButterflyJitter, parameter.ButterflyJitter)
	}

	prev := b.Pos
	b.Pos = b.Anchor.Add(b.offset())
	if dt > 0 {
		vx := (b.Pos.X - prev.X) / dt
		b.Tilt = vmath.Clamp(vx*0.01, -0.4, 0.4)
	}

	b.FlapPhase += b.FlapFreq * dt
	b.age(dt)
}

func (b *Butterfly) Render(c *render.Canvas, _ []Entity) {
	if b.Dead {
		return
	}
	alpha := vmath.Clamp01(b.Lifetime) * vmath.Clamp01((b.MaxLifetime-b.Lifetime)/0.3+0.2)
	if alpha <= 0 {
		return
	}

	// Wings fold toward the body as the flap closes
	open := 0.25 + 0.75*math.Abs(math.Sin(b.FlapPhase))

	grad := render.RadialGradient{
		Center: b.Pos,
		Radius: b.Size * 1.2,
		Stops: []render.GradientStop{
			{Offset: 0, Color: b.AccentColor.WithAlpha(alpha)},
			{Offset: 0.55, Color: b.WingColor.WithAlpha(alpha)},
			{Offset: 1, Color: b.WingColor.WithAlpha(0.5 * alpha)},
		},
	}

	for _, side := range [2]float64{1, -1} {
		pts := make([]render.Point, len(wingShape))
		for i, p := range wingShape {
			local := vmath.Vec2{X: side * p.X * open * b.Size, Y: p.Y * b.Size}
			pts[i] = b.Pos.Add(local.Rotate(b.Tilt + side*0.1*open))
		}
		c.FillPolygonGradient(pts, grad)
	}

	body := render.RGB{R: 40, G: 30, B: 30}.WithAlpha(alpha)
	c.FillEllipse(b.Pos, b.Size*0.12, b.Size*0.45, body)

	head := b.Pos.Add(vmath.Vec2{X: 0, Y: -0.45 * b.Size}.Rotate(b.Tilt))
	for _, side := range [2]float64{1, -1} {
		tip := b.Pos.Add(vmath.Vec2{X: side * 0.3 * b.Size, Y: -0.85 * b.Size}.Rotate(b.Tilt))
		c.StrokeLine(head, tip, 0.5, body)
	}
}

package entity

import (
	"math"

	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/physics"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Stardust spirals around a slowly drifting center, trailing sparkles
type Stardust struct {
	Body

	Size      float64
	Color     render.RGB
	GlowColor render.RGB

	Center vmath.Vec2
	Drift  vmath.Vec2

	RotationAngle float64
	RotationSpeed float64
	SpiralRadius  float64
	SpiralGrowth  float64

	TwinklePhase float64
	TwinkleFreq  float64

	Sparkles [parameter.StardustSparkles]vmath.Vec2

	trail     [parameter.StardustTrailMax]vmath.Vec2
	trailCap  int
	trailHead int
	trailLen  int
}

// NewStardust allocates a randomized star
func NewStardust(rng *vmath.FastRand) *Stardust {
	d := &Stardust{}
	d.Reset(rng)
	return d
}

func (d *Stardust) Kind() Kind { return KindStardust }

func (d *Stardust) Reset(rng *vmath.FastRand) {
	*d = Stardust{}
	d.revive(rng.Range(parameter.StardustLifetimeMin, parameter.StardustLifetimeMax))

	d.Size = rng.Range(parameter.StardustSizeMin, parameter.StardustSizeMax)
	hue := rng.Float64()
	d.Color = palette.HSV(hue, 0.35, 1)
	d.GlowColor = palette.HSV(hue, 0.7, 1)

	d.Drift = vmath.Vec2{
		X: rng.Range(-parameter.StardustDriftMax, parameter.StardustDriftMax),
		Y: rng.Range(-parameter.StardustDriftMax, parameter.StardustDriftMax),
	}
	d.RotationAngle = rng.Angle()
	d.RotationSpeed = rng.Range(parameter.StardustRotationMin, parameter.StardustRotationMax)
	if rng.Chance(0.5) {
		d.RotationSpeed = -d.RotationSpeed
	}
	d.SpiralRadius = rng.Range(parameter.StardustSpiralMin, parameter.StardustSpiralMax)
	d.SpiralGrowth = rng.Range(-parameter.StardustSpiralGrowth, parameter.StardustSpiralGrowth)
	d.TwinkleFreq = rng.Range(3, 7)
	d.TwinklePhase = rng.Angle()
	d.trailCap = rng.IntRange(parameter.StardustTrailMin, parameter.StardustTrailMax)
}

// Settle centers the spiral so the current position lies on it
func (d *Stardust) Settle() {
	d.Center = d.Pos.Sub(vmath.Polar(d.SpiralRadius, d.RotationAngle))
	d.updateSparkles()
}

func (d *Stardust) Update(ctx *Context, live []Entity) {
	if d.Dead {
		return
	}
	dt := ctx.DT

	d.pushTrail(d.Pos)

	radius := d.Size * parameter.StardustRepelRange
	ctx.Near(d, live, radius, func(other Entity, rel vmath.Vec2) {
		if other.Kind() != KindStardust {
			return
		}
		d.Drift = d.Drift.Add(physics.LinearRepulsion(d.Pos, rel, radius, parameter.StardustRepelStrength, dt))
	})

	d.Center = d.Center.Add(d.Drift.Scale(dt))
	physics.ApplyFriction(&d.Drift, parameter.StardustFriction)

	d.RotationAngle += d.RotationSpeed * dt
	d.SpiralRadius = max(0, d.SpiralRadius+d.SpiralGrowth*dt)
	d.Pos = d.Center.Add(vmath.Polar(d.SpiralRadius, d.RotationAngle))

	d.TwinklePhase += d.TwinkleFreq * dt
	d.updateSparkles()

	d.age(dt)
}

func (d *Stardust) updateSparkles() {
	orbit := d.Size * parameter.StardustSparkleOrbit
	for i := range d.Sparkles {
		angle := d.TwinklePhase + float64(i)*2*math.Pi/float64(len(d.Sparkles))
		d.Sparkles[i] = d.Pos.Add(vmath.Polar(orbit, angle))
	}
}

func (d *Stardust) pushTrail(p vmath.Vec2) {
	if d.trailCap == 0 {
		return
	}
	d.trail[d.trailHead] = p
	d.trailHead = (d.trailHead + 1) % d.trailCap
	if d.trailLen < d.trailCap {
		d.trailLen++
	}
}

// Trail returns recorded positions, oldest first
func (d *Stardust) Trail() []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, d.trailLen)
	if d.trailCap == 0 {
		return out
	}
	start := (d.trailHead - d.trailLen + d.trailCap) % d.trailCap
	for i := 0; i < d.trailLen; i++ {
		out = append(out, d.trail[(start+i)%d.trailCap])
	}
	return out
}

func (d *Stardust) Render(c *render.Canvas, _ []Entity) {
	life := d.LifeFraction()
	if life <= 0 {
		return
	}
	twinkle := 0.7 + 0.3*math.Sin(d.TwinklePhase)

	if d.trailLen > 1 {
		c.StrokePolyline(append(d.Trail(), d.Pos), d.Size/3, d.GlowColor.WithAlpha(0.3*life))
	}

	layers := parameter.StardustGlowLayers
	for i := layers; i >= 1; i-- {
		k := float64(i) / float64(layers)
		c.FillCircle(d.Pos, d.Size*(1+3*k), d.GlowColor.WithAlpha(0.12*(1-k+0.2)*life*twinkle))
	}

	outer, inner := d.Size*1.5, d.Size*0.6
	points := make([]render.Point, 0, parameter.StardustPoints*2)
	for i := 0; i < parameter.StardustPoints*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := d.RotationAngle + float64(i)*math.Pi/float64(parameter.StardustPoints) - math.Pi/2
		points = append(points, d.Pos.Add(vmath.Polar(r, angle)))
	}
	c.FillPolygonGradient(points, render.RadialGradient{
		Center: d.Pos,
		Radius: outer,
		Stops: []render.GradientStop{
			{Offset: 0, Color: render.RGBWhite.WithAlpha(life)},
			{Offset: 0.5, Color: d.Color.WithAlpha(life)},
			{Offset: 1, Color: d.GlowColor.WithAlpha(0.6 * life)},
		},
	})

	for i, p := range d.Sparkles {
		phase := math.Sin(d.TwinklePhase*2 + float64(i))
		alpha := (0.5 + 0.5*phase) * life
		c.FillCircle(p, d.Size*0.8, d.GlowColor.WithAlpha(0.25*alpha))
		c.FillCircle(p, d.Size*0.3, render.RGBWhite.WithAlpha(alpha))
	}
}

package entity

import (
	"math"

	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/physics"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// ChainLink is a short-lived node drawn with arcs to nearby chaining entities
type ChainLink struct {
	Body

	Size     float64
	Color    render.RGB
	Force    vmath.Vec2
	Friction float64

	// Anchor is the spawn point the link springs back to while StayInPlace
	Anchor      vmath.Vec2
	StayInPlace bool

	// MaxChainDistance is the interaction and drawing radius
	MaxChainDistance float64

	VibePhase float64
	VibeFreq  float64
	VibeAmp   float64
}

// NewChainLink allocates a randomized link; the spawner sets anchor, force and reach
func NewChainLink(rng *vmath.FastRand) *ChainLink {
	l := &ChainLink{}
	l.Reset(rng)
	return l
}

func (l *ChainLink) Kind() Kind { return KindChain }

func (l *ChainLink) Reset(rng *vmath.FastRand) {
	*l = ChainLink{StayInPlace: true}
	l.revive(parameter.ChainLifetime)
	l.ChainStrength = parameter.ChainStrength
	l.Friction = parameter.ChainFriction

	l.Size = rng.Range(parameter.ChainSizeMin, parameter.ChainSizeMax)
	l.Color = palette.HSV(parameter.ChainHueMin+rng.Float64()*parameter.ChainHueSpan, 0.8, 1)
	l.VibeFreq = rng.Range(parameter.ChainVibeFreqMin, parameter.ChainVibeFreqMax)
	l.VibeAmp = rng.Range(parameter.ChainVibeAmpMin, parameter.ChainVibeAmpMax)
	l.VibePhase = rng.Angle()
}

// Settle anchors the elastic return at the current position
func (l *ChainLink) Settle() {
	l.Anchor = l.Pos
}

func (l *ChainLink) Update(ctx *Context, live []Entity) {
	if l.Dead {
		return
	}
	dt := ctx.DT

	l.VibePhase += l.VibeFreq * dt
	vibe := vmath.Vec2{
		X: math.Sin(l.VibePhase) * l.VibeAmp,
		Y: math.Cos(l.VibePhase) * l.VibeAmp,
	}

	if l.StayInPlace {
		l.Force = l.Force.Add(physics.ElasticReturn(l.Pos, l.Anchor, parameter.ChainReturnStrength, dt))
		physics.ApplyGravity(&l.Force, parameter.ChainAnchoredGravity, dt)
	} else {
		physics.ApplyGravity(&l.Force, parameter.ChainFreeGravity, dt)
	}

	ctx.Near(l, live, l.MaxChainDistance, func(other Entity, rel vmath.Vec2) {
		if other.Common().ChainStrength <= 0 {
			return
		}
		l.Force = l.Force.Add(physics.ChainAttraction(l.Pos, rel, l.MaxChainDistance, l.ChainStrength, dt))
	})

	physics.Integrate(&l.Pos, l.Force, dt)
	// Vibration velocity integrates to a displacement of VibeAmp
	l.Pos = l.Pos.Add(vibe.Scale(l.VibeFreq * dt))
	physics.ApplyFriction(&l.Force, l.Friction)

	l.age(dt)
}

func (l *ChainLink) Render(c *render.Canvas, live []Entity) {
	life := l.LifeFraction()
	if life <= 0 {
		return
	}

	arc := l.Color.WithAlpha(life * l.ChainStrength)
	for _, other := range live {
		if other == Entity(l) {
			continue
		}
		ob := other.Common()
		if ob.Dead || ob.ChainStrength <= 0 {
			continue
		}
		rel := l.local(ob)
		if rel.Dist(l.Pos) >= l.MaxChainDistance {
			continue
		}
		mid := l.Pos.Add(rel).Scale(0.5)
		ctrl := mid.Add(rel.Sub(l.Pos).Perpendicular().Scale(0.25))
		c.StrokeQuad(l.Pos, ctrl, rel, l.Size/3, arc)
	}

	c.FillCircle(l.Pos, l.Size/2, l.Color.WithAlpha(life))
}

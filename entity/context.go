package entity

import (
	"github.com/lixenwraith/thunderbolt/palette"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Context is the per-tick ambient state handed to every Update
// It replaces process-wide globals so that a simulation can be replayed under a fixed seed
type Context struct {
	DT   float64
	Time float64
	Rand *vmath.FastRand

	// Wind is the ambient wind force, WindStrength its normalized magnitude
	Wind         vmath.Vec2
	WindStrength float64

	// Typing is the normalized typing intensity in [0, 1]
	Typing float64

	Theme palette.Theme

	// SnowEnabled mirrors the feature toggle, Snowing the active snowfall flag
	SnowEnabled bool
	Snowing     bool

	// Viewport is the surface size in pixels
	Viewport vmath.Vec2

	// Grid, when set, answers neighbor queries in place of a linear scan of the live view
	Grid *Grid
}

// Near calls fn for every other live, non-dead entity whose world position lies within radius of self
// rel is the neighbor position in self's local coordinates
func (ctx *Context) Near(self Entity, live []Entity, radius float64, fn func(other Entity, rel vmath.Vec2)) {
	b := self.Common()
	visit := func(other Entity) {
		if other == self {
			return
		}
		ob := other.Common()
		if ob.Dead {
			return
		}
		rel := b.local(ob)
		if rel.Dist(b.Pos) < radius {
			fn(other, rel)
		}
	}

	if ctx.Grid != nil && ctx.Grid.Covers(radius) {
		ctx.Grid.Near(b.World(), radius+gridSlack, visit)
		return
	}
	for _, other := range live {
		visit(other)
	}
}

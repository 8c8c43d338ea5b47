package physics

import (
	"github.com/lixenwraith/thunderbolt/vmath"
)

// InverseRepulsion returns the impulse pushing self away from other when closer than radius
// Impulse is -(other-self) * strength/(dist+1) * dt; zero outside radius
func InverseRepulsion(self, other vmath.Vec2, radius, strength, dt float64) vmath.Vec2 {
	delta := other.Sub(self)
	dist := delta.Len()
	if dist >= radius {
		return vmath.Vec2{}
	}
	return delta.Scale(-strength / (dist + 1) * dt)
}

// LinearRepulsion returns a unit-direction push away from other, fading linearly to zero at radius
// Coincident points produce no impulse
func LinearRepulsion(self, other vmath.Vec2, radius, strength, dt float64) vmath.Vec2 {
	delta := self.Sub(other)
	dist := delta.Len()
	if dist >= radius || dist == 0 {
		return vmath.Vec2{}
	}
	falloff := 1 - dist/radius
	return delta.Scale(strength * falloff * dt / dist)
}

// ChainAttraction returns the pull toward other scaled by (1 - dist/maxDist) * strength
// Zero when other is at or beyond maxDist
func ChainAttraction(self, other vmath.Vec2, maxDist, strength, dt float64) vmath.Vec2 {
	if maxDist <= 0 {
		return vmath.Vec2{}
	}
	delta := other.Sub(self)
	dist := delta.Len()
	if dist >= maxDist {
		return vmath.Vec2{}
	}
	k := (1 - dist/maxDist) * strength
	return delta.Scale(k * dt)
}

// ElasticReturn returns the spring impulse pulling pos toward anchor
func ElasticReturn(pos, anchor vmath.Vec2, stiffness, dt float64) vmath.Vec2 {
	return anchor.Sub(pos).Scale(stiffness * dt)
}

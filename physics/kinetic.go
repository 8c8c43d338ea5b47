package physics

import (
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Integrate advances position by force over dt (semi-implicit Euler: impulses are applied to force first)
func Integrate(pos *vmath.Vec2, force vmath.Vec2, dt float64) {
	pos.X += force.X * dt
	pos.Y += force.Y * dt
}

// ApplyImpulse adds a force delta
func ApplyImpulse(force *vmath.Vec2, ix, iy float64) {
	force.X += ix
	force.Y += iy
}

// ApplyGravity adds g*dt to the vertical force
func ApplyGravity(force *vmath.Vec2, g, dt float64) {
	force.Y += g * dt
}

// ApplyFriction multiplies both force components by k
func ApplyFriction(force *vmath.Vec2, k float64) {
	force.X *= k
	force.Y *= k
}

// JitteredFriction returns k scaled by a uniform factor in [1-jitter, 1+jitter]
func JitteredFriction(k, jitter float64, rng *vmath.FastRand) float64 {
	return k * rng.Range(1-jitter, 1+jitter)
}

// ClampDelta bounds a frame delta-time to [0, maxDelta]
func ClampDelta(dt, maxDelta float64) float64 {
	if dt < 0 || !vmath.Finite(dt) {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

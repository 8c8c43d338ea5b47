package field

import (
	"math"

	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Force returns the sinusoidal steering force at pos for simulation time t (seconds)
func Force(pos vmath.Vec2, t float64) vmath.Vec2 {
	return vmath.Vec2{
		X: math.Sin(pos.Y*parameter.FieldFrequency+t) * parameter.FieldStrength,
		Y: math.Cos(pos.X*parameter.FieldFrequency+t) * parameter.FieldStrength,
	}
}

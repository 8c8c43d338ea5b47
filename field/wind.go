package field

import (
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Wind is a target-seeking oscillator
// The target is re-rolled at random intervals, the current force eases toward it
// and wanders slightly; both components stay within ±MaxWindForce
// Not safe for concurrent use, owned by the simulation goroutine
type Wind struct {
	current vmath.Vec2
	target  vmath.Vec2
	timer   float64
}

// NewWind returns a calm wind with a freshly rolled target
func NewWind(rng *vmath.FastRand) *Wind {
	w := &Wind{}
	w.reroll(rng)
	return w
}

// Update advances the wind by dt seconds
func (w *Wind) Update(dt float64, rng *vmath.FastRand) {
	if dt <= 0 {
		return
	}

	w.timer -= dt
	if w.timer <= 0 {
		w.reroll(rng)
	}

	w.current.X = vmath.ExpApproach(w.current.X, w.target.X, parameter.WindSmoothing, dt)
	w.current.Y = vmath.ExpApproach(w.current.Y, w.target.Y, parameter.WindSmoothing, dt)

	step := parameter.WindWalk * dt
	w.current.X += rng.Range(-step, step)
	w.current.Y += rng.Range(-step, step) * parameter.WindVerticalRatio

	w.current = w.current.ClampComponents(parameter.MaxWindForce)
}

func (w *Wind) reroll(rng *vmath.FastRand) {
	w.target = vmath.Vec2{
		X: rng.Range(-parameter.MaxWindForce, parameter.MaxWindForce),
		Y: rng.Range(-parameter.MaxWindForce, parameter.MaxWindForce) * parameter.WindVerticalRatio,
	}
	w.timer = rng.Range(parameter.WindChangeMin, parameter.WindChangeMax)
}

// Force returns the current wind force
func (w *Wind) Force() vmath.Vec2 {
	return w.current
}

// Target returns the force the wind is currently easing toward
func (w *Wind) Target() vmath.Vec2 {
	return w.target
}

// Strength returns the normalized wind magnitude in [0, 1]
func (w *Wind) Strength() float64 {
	return vmath.Clamp01(w.current.Len() / parameter.MaxWindForce)
}

// Reset calms the wind and rolls a new target
func (w *Wind) Reset(rng *vmath.FastRand) {
	w.current = vmath.Vec2{}
	w.reroll(rng)
}

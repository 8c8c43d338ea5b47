package vmath

import "math"

// --- Scalar helpers ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp returns a + (b-a)*t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ExpApproach moves current toward target with frame-rate independent exponential smoothing
// rate is in 1/sec; rate*dt of 0 leaves current unchanged
func ExpApproach(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-rate*dt)
}

// Finite reports whether v is neither NaN nor ±Inf
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each owner keeps its own instance so runs are reproducible under a seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Fork derives an independent generator from the next value of r
func (r *FastRand) Fork() *FastRand {
	return NewFastRand(r.Next() ^ 0x9E3779B97F4A7C15)
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns an int in [lo, hi], both bounds inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a float in [0, 1]
func (r *FastRand) Float64() float64 {
	// 53 significant bits, divided by 2^53-1 so that 1.0 is reachable
	return float64(r.Next()>>11) / float64(1<<53-1)
}

// Range returns a float in [lo, hi], both bounds inclusive
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// Angle returns a random angle in [0, 2π]
func (r *FastRand) Angle() float64 {
	return r.Range(0, 2*math.Pi)
}

package parameter

import "time"

// Simulation Loop & Timing
const (
	// TickInterval is the target frame interval of the simulation loop (~60 Hz)
	TickInterval = time.Second / 60

	// MaxDelta is the upper bound on a single tick's delta-time in seconds
	// Absorbs stalls (debugger, GC, scheduler) without force explosions
	MaxDelta = 0.032

	// FixedDelta is the delta-time used for deterministic pre-simulation (seconds)
	FixedDelta = 1.0 / 60.0

	// StatusLogEvery is the tick count between periodic live-count debug logs
	StatusLogEvery = 60
)

// Capacity Limits
const (
	// MaxParticles is the global live-entity cap; oldest entities are trimmed first
	MaxParticles = 2500

	// MaxChainParticles caps live ChainLink entities; extra chain requests are dropped
	MaxChainParticles = 30

	// MaxPoolSize bounds the recycled Spark free list
	MaxPoolSize = 3000
)

// Viewport Defaults
const (
	// DefaultViewportWidth is the viewport width used until the host reports one
	DefaultViewportWidth = 1280.0

	// DefaultViewportHeight is the viewport height used until the host reports one
	DefaultViewportHeight = 800.0
)

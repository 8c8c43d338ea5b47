package parameter

// Snowfall
const (
	// SnowSpawnInterval is the accumulator budget consumed per snow batch (seconds)
	SnowSpawnInterval = 0.1

	// SnowBatchMin/Max bound flakes per batch; count scales with typing intensity
	SnowBatchMin = 2
	SnowBatchMax = 5

	// MaxSnowflakes caps live snowflakes
	MaxSnowflakes = 100

	// SnowFadeWindow is the idle time after the last keystroke that stops snowing (seconds)
	SnowFadeWindow = 5.0

	// SnowLayers is the number of depth layers (0 = front)
	SnowLayers = 3

	// SnowLayerFalloff is the per-layer reduction of speed and force scale
	SnowLayerFalloff = 0.25

	// SnowSpawnMargin is how far above the viewport new flakes appear
	SnowSpawnMargin = 10.0

	// SnowBoundsMargin is how far outside the viewport a flake may travel before recycling
	SnowBoundsMargin = 20.0

	// SnowLifetimeMin/Max bound a flake lifetime in seconds
	SnowLifetimeMin = 20.0
	SnowLifetimeMax = 30.0

	// SnowFriction is the per-tick force multiplier
	SnowFriction = 0.98

	// SnowFallBase and SnowFallPerSize give the descent speed base + size*k
	SnowFallBase    = 20.0
	SnowFallPerSize = 6.0

	// SnowWindInfluence scales ambient wind for the front layer
	SnowWindInfluence = 1.2

	// SnowRepelRange scales flake size into same-layer repulsion radius
	SnowRepelRange = 4.0

	// SnowRepelStrength is the same-layer push impulse
	SnowRepelStrength = 30.0

	// SnowWindFade is the max opacity reduction under full wind
	SnowWindFade = 0.4
)

// Snowflake size buckets, weighted 60/30/10
const (
	SnowSmallWeight  = 0.6
	SnowMediumWeight = 0.3

	SnowSmallMin  = 2.0
	SnowSmallMax  = 3.0
	SnowMediumMin = 3.5
	SnowMediumMax = 5.0
	SnowLargeMin  = 5.5
	SnowLargeMax  = 7.0
)

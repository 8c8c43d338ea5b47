package parameter

// Stardust Entity
const (
	// StardustLifetimeMin/Max bound lifetime in seconds
	StardustLifetimeMin = 2.5
	StardustLifetimeMax = 4.0

	// StardustSizeMin/Max bound star radius
	StardustSizeMin = 2.0
	StardustSizeMax = 4.0

	// StardustTrailMin/Max bound the trail length (points)
	StardustTrailMin = 15
	StardustTrailMax = 25

	// StardustRotationMin/Max bound spiral angular speed (rad/s, sign randomized)
	StardustRotationMin = 1.5
	StardustRotationMax = 4.0

	// StardustSpiralMin/Max bound the initial spiral radius
	StardustSpiralMin = 20.0
	StardustSpiralMax = 60.0

	// StardustSpiralGrowth is the spiral radius change per second
	StardustSpiralGrowth = 8.0

	// StardustDriftMax bounds the initial linear drift
	StardustDriftMax = 30.0

	// StardustFriction is the per-tick drift multiplier
	StardustFriction = 0.97

	// StardustRepelRange scales star size into same-kind repulsion radius
	StardustRepelRange = 8.0

	// StardustRepelStrength is the same-kind push impulse
	StardustRepelStrength = 40.0

	// StardustSparkles is the number of orbiting sparkle markers
	StardustSparkles = 4

	// StardustSparkleOrbit scales size into sparkle orbit radius
	StardustSparkleOrbit = 2.5

	// StardustGlowLayers is the radial glow layer count
	StardustGlowLayers = 5

	// StardustPoints is the number of star tips
	StardustPoints = 5
)

// Butterfly Entity
const (
	// ButterflyLifetimeMin/Max bound lifetime in seconds
	ButterflyLifetimeMin = 4.0
	ButterflyLifetimeMax = 7.0

	// ButterflySizeMin/Max bound wing span
	ButterflySizeMin = 6.0
	ButterflySizeMax = 10.0

	// ButterflyAmpXMin/Max and ButterflyAmpYMin/Max bound the Lissajous amplitudes
	ButterflyAmpXMin = 20.0
	ButterflyAmpXMax = 45.0
	ButterflyAmpYMin = 10.0
	ButterflyAmpYMax = 30.0

	// ButterflyFreqMin/Max bound both path oscillator frequencies (rad/s)
	ButterflyFreqMin = 0.8
	ButterflyFreqMax = 2.2

	// ButterflyFlapMin/Max bound wing-flap frequency (rad/s)
	ButterflyFlapMin = 12.0
	ButterflyFlapMax = 18.0

	// ButterflyRise is the upward drift of the path anchor per second
	ButterflyRise = 12.0

	// ButterflyJitterChance is the per-tick chance of a random anchor nudge
	ButterflyJitterChance = 0.05

	// ButterflyJitter is the max anchor nudge per axis
	ButterflyJitter = 5.0
)

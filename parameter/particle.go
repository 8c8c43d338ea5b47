package parameter

// Spark Entity
const (
	// SparkLifetime is the full lifetime of a fresh spark in seconds
	SparkLifetime = 2.0

	// SparkSizeMin/Max bound the spark core size (inclusive integer range)
	SparkSizeMin = 2
	SparkSizeMax = 4

	// SparkSpeedMin/Max bound the initial force magnitude
	SparkSpeedMin = 100
	SparkSpeedMax = 200

	// SparkFriction is the per-tick force multiplier
	SparkFriction = 0.95

	// SparkFrictionJitter is the ± fraction applied to friction each tick
	SparkFrictionJitter = 0.02

	// SparkGravity is the downward force impulse per second
	SparkGravity = 300.0

	// SparkGlowScale is glow radius relative to size
	SparkGlowScale = 4.0

	// SparkPulseAmount is the relative amplitude of the glow pulse
	SparkPulseAmount = 0.2

	// SparkGustChance is the per-tick chance of a random wind impulse
	SparkGustChance = 0.05

	// SparkGustForce is the max magnitude per axis of a random wind impulse
	SparkGustForce = 50

	// SparkRepelRadius is the neighbor distance under which sparks are pushed away
	SparkRepelRadius = 50.0

	// SparkRepelStrength scales repulsion as strength/(dist+1)
	SparkRepelStrength = 5.0

	// SparkThemeBandLow/High is the remaining-lifetime band where theme colors are applied
	SparkThemeBandLow  = 1.6
	SparkThemeBandHigh = 1.7

	// SparkTrailCapacity is the ring buffer length of the position trail
	SparkTrailCapacity = 10

	// SparkEndColorJitter is the max per-channel offset of the gradient end color
	SparkEndColorJitter = 20

	// SparkDarkThreshold is the per-channel value under which a dark-theme spark glows dark
	SparkDarkThreshold = 50

	// SparkSaturation is the HSV saturation of untinted sparks
	SparkSaturation = 0.8

	// SparkWobbleFreqMin/Max bound the wobble oscillator frequency (rad/s)
	SparkWobbleFreqMin = 2.0
	SparkWobbleFreqMax = 5.0

	// SparkWobbleAmpMin/Max bound the wobble force amplitude
	SparkWobbleAmpMin = 20.0
	SparkWobbleAmpMax = 40.0

	// SparkPulseFreqMin/Max bound the glow pulse frequency (rad/s)
	SparkPulseFreqMin = 3.0
	SparkPulseFreqMax = 6.0

	// SparkGlowLayers and SparkGlowAlpha describe the regular glow
	SparkGlowLayers = 3
	SparkGlowAlpha  = 0.1

	// SparkDarkGlowLayers, SparkDarkGlowAlpha and SparkDarkGlowBoost describe the dark-theme glow
	SparkDarkGlowLayers = 5
	SparkDarkGlowAlpha  = 0.3
	SparkDarkGlowBoost  = 1.5

	// SparkTrailAlpha is the trail opacity at full lifetime
	SparkTrailAlpha = 50.0 / 255.0
)

// ChainLink Entity
const (
	// ChainLifetime is the full lifetime of a chain link in seconds
	ChainLifetime = 0.5

	// ChainStrength is the default chaining strength
	ChainStrength = 0.8

	// ChainSizeMin/Max bound the link size
	ChainSizeMin = 4
	ChainSizeMax = 6

	// ChainInitialForceScale scales pointer displacement into the initial force
	ChainInitialForceScale = 0.1

	// ChainDistanceDivisor maps pointer displacement to max chain distance
	ChainDistanceDivisor = 1.5

	// ChainReturnStrength is the elastic pull toward the spawn point
	ChainReturnStrength = 5.0

	// ChainAnchoredGravity is the weak gravity of links that stay in place
	ChainAnchoredGravity = 20.0

	// ChainFreeGravity is the gravity of links released from their anchor
	ChainFreeGravity = 200.0

	// ChainFriction is the per-tick force multiplier
	ChainFriction = 0.95

	// ChainVibeFreqMin/Max bound the vibration frequency (rad/s)
	ChainVibeFreqMin = 10
	ChainVibeFreqMax = 15

	// ChainVibeAmpMin/Max bound the vibration amplitude
	ChainVibeAmpMin = 2
	ChainVibeAmpMax = 4

	// ChainHueMin/Span bound the blue-violet hue band of a chain (fraction of 360°)
	ChainHueMin  = 0.6
	ChainHueSpan = 0.3
)

package parameter

// Ambient Wind
const (
	// MaxWindForce bounds each wind component
	MaxWindForce = 40.0

	// WindVerticalRatio scales the vertical target range relative to horizontal
	WindVerticalRatio = 0.2

	// WindChangeMin/Max bound the interval between target re-rolls (seconds)
	WindChangeMin = 2.0
	WindChangeMax = 5.0

	// WindSmoothing is the exponential approach rate toward target (1/sec)
	WindSmoothing = 0.8

	// WindWalk is the max random-walk step per second
	WindWalk = 6.0
)

// Typing Intensity
const (
	// TypingMax caps the keystroke counter
	TypingMax = 20.0

	// TypingIdleDelay is the idle time before the counter decays (seconds)
	TypingIdleDelay = 0.4

	// TypingDecay is the counter decay per second once idle
	TypingDecay = 4.0
)

// Spark Force Field
const (
	// FieldStrength is the steering force magnitude
	FieldStrength = 50.0

	// FieldFrequency is the spatial frequency of the field
	FieldFrequency = 0.01
)

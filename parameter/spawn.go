package parameter

// Pointer-driven Spawning
const (
	// MoveEpsilon is the minimum pointer displacement that spawns a batch
	MoveEpsilon = 1.0

	// ChainThreshold is the pointer displacement above which a chain is added
	ChainThreshold = 50.0

	// BatchSize is the number of kind-weighted entities per pointer batch
	BatchSize = 10

	// ChainSegments is the upper bound of the inclusive 0..N link index range (N+1 links)
	ChainSegments = 5

	// ChainJitter is the max per-link positional offset along the chain path
	ChainJitter = 10
)

// Kind Weighting
// Bands are evaluated in order per spawned unit; a disabled feature yields its band to the next
const (
	// SnowChance is the probability band claimed by snowflakes
	SnowChance = 0.30

	// StardustChance is the probability band claimed by stardust
	StardustChance = 0.20

	// ButterflyChance is the probability band claimed by butterflies
	ButterflyChance = 0.05
)

// Reverse Echo
const (
	// EchoClusterSize is the number of Sparks pre-simulated per echo
	EchoClusterSize = 10

	// EchoHorizon is the number of ticks recorded before reversal
	EchoHorizon = 90
)

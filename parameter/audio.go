package parameter

import "time"

// Audio output
const (
	// AudioBufferDuration is the speaker buffer length; bounds cue latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioCueGap is the minimum spacing between two cues of the same kind
	AudioCueGap = 60 * time.Millisecond
)

// Chain cue: short rising zap, pitch follows link count
const (
	ChainCueDuration = 120 * time.Millisecond
	ChainCueAttack   = 5 * time.Millisecond
	ChainCueRelease  = 90 * time.Millisecond
	ChainCueBaseFreq = 520.0
	ChainCueStepFreq = 40.0
)

// Echo cue: falling sweep played on deletion
const (
	EchoCueDuration  = 350 * time.Millisecond
	EchoCueAttack    = 20 * time.Millisecond
	EchoCueRelease   = 200 * time.Millisecond
	EchoCueStartFreq = 1200.0
	EchoCueEndFreq   = 300.0
)

// Snow cue: soft bell pair on snowfall start
const (
	SnowCueDuration     = 600 * time.Millisecond
	SnowCueAttack       = 10 * time.Millisecond
	SnowCueRelease      = 450 * time.Millisecond
	SnowCueFundamental  = 1318.5 // E6
	SnowCueOvertone     = 2637.0
	SnowCueOvertoneGain = 0.3
)

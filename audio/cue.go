// Package audio synthesizes short cues for spawn events with beep
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Cue identifies a synthesized sound
type Cue int

const (
	CueChain Cue = iota
	CueEcho
	CueSnow
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueChain:
		return "chain"
	case CueEcho:
		return "echo"
	case CueSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency glides linearly from freq to endFreq
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	rng           *vmath.FastRand
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(start*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := vmath.Lerp(o.freq, o.endFreq, t)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewChainCue builds the chain zap; more links raise the pitch
func NewChainCue(links int, vol float64, rate beep.SampleRate) beep.Streamer {
	freq := parameter.ChainCueBaseFreq + parameter.ChainCueStepFreq*float64(max(links, 0))
	osc := NewSweep(freq, freq*1.5, parameter.ChainCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.ChainCueDuration, parameter.ChainCueAttack, parameter.ChainCueRelease, rate)
	return newVolume(shaped, 0.4*vol)
}

// NewEchoCue builds the falling sweep for a reverse echo
func NewEchoCue(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.EchoCueStartFreq, parameter.EchoCueEndFreq, parameter.EchoCueDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.EchoCueDuration, parameter.EchoCueAttack, parameter.EchoCueRelease, rate)
	return newVolume(shaped, 0.6*vol)
}

// NewSnowCue builds the bell played when snowfall starts
func NewSnowCue(vol float64, rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(parameter.SnowCueFundamental, parameter.SnowCueDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.SnowCueDuration, parameter.SnowCueAttack, parameter.SnowCueRelease, rate)

	over := NewOscillator(parameter.SnowCueOvertone, parameter.SnowCueDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.SnowCueDuration, parameter.SnowCueAttack, parameter.SnowCueRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 1-parameter.SnowCueOvertoneGain),
		newVolume(overShaped, parameter.SnowCueOvertoneGain),
	)
	return newVolume(mixed, 0.5*vol)
}

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/parameter"
)

// Player plays spawn cues through the speaker
// Implements spawn.Listener; every method returns without waiting on playback
// A disabled or uninitialized player is silent and never fails
type Player struct {
	mu          sync.Mutex
	enabled     bool
	volume      float64
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	last        [cueCount]time.Time

	// sink receives each cue; nil plays through the speaker mixer
	sink func(Cue, beep.Streamer)
	now  func() time.Time
	log  *zap.Logger
}

// NewPlayer creates a player from the audio config
func NewPlayer(cfg config.AudioConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		rate:    beep.SampleRate(rate),
		mixer:   &beep.Mixer{},
		now:     time.Now,
		log:     log,
	}
}

// Init opens the speaker; no-op when disabled or already open
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info("audio initialized", zap.Int("sample_rate", int(p.rate)), zap.Float64("volume", p.volume))
	return nil
}

// Close silences pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// ChainSpawned plays the chain zap
func (p *Player) ChainSpawned(links int) {
	p.play(CueChain, func() beep.Streamer { return NewChainCue(links, p.volume, p.rate) })
}

// EchoSpawned plays the reverse sweep
func (p *Player) EchoSpawned() {
	p.play(CueEcho, func() beep.Streamer { return NewEchoCue(p.volume, p.rate) })
}

// SnowStarted plays the snow bell
func (p *Player) SnowStarted() {
	p.play(CueSnow, func() beep.Streamer { return NewSnowCue(p.volume, p.rate) })
}

// play rate-limits each cue kind so bursts of input do not stack dozens of voices
func (p *Player) play(cue Cue, build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.volume <= 0 {
		return
	}
	if p.sink == nil && !p.initialized {
		return
	}
	now := p.now()
	if now.Sub(p.last[cue]) < parameter.AudioCueGap {
		return
	}
	p.last[cue] = now

	s := build()
	if p.sink != nil {
		p.sink(cue, s)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

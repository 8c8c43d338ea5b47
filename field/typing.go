package field

import (
	"sync"

	"github.com/lixenwraith/thunderbolt/parameter"
)

// Typing tracks keystroke intensity as a bounded counter that decays once idle
// Keystroke is called from the input path, Update from the simulation goroutine
type Typing struct {
	mu    sync.Mutex
	count float64
	idle  float64
	typed bool
}

// Keystroke records one key press
func (t *Typing) Keystroke() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count = min(t.count+1, parameter.TypingMax)
	t.idle = 0
	t.typed = true
}

// Update advances idle time and applies decay
func (t *Typing) Update(dt float64) {
	if dt <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.idle += dt
	if t.idle > parameter.TypingIdleDelay {
		t.count = max(0, t.count-parameter.TypingDecay*dt)
	}
}

// Intensity returns the normalized counter in [0, 1]
func (t *Typing) Intensity() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count / parameter.TypingMax
}

// Idle returns seconds since the last keystroke and whether any key was ever pressed
func (t *Typing) Idle() (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.idle, t.typed
}

// Reset clears all accounting
func (t *Typing) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count, t.idle, t.typed = 0, 0, false
}

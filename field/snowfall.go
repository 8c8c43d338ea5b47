package field

import (
	"sync"

	"github.com/lixenwraith/thunderbolt/parameter"
)

// Snowfall holds the snowing flag and the spawn budget accumulator
type Snowfall struct {
	mu     sync.Mutex
	active bool
	budget float64
}

// Start flags snowing active, returns true on the inactive to active transition
func (s *Snowfall) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := !s.active
	s.active = true
	return started
}

// Stop clears the flag and any pending budget
func (s *Snowfall) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.budget = 0
}

// Active reports whether new flakes should spawn
func (s *Snowfall) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Tick accumulates dt and returns the number of batches due this tick
// Snowing stops once idle exceeds the fade window; batches already due are still returned
func (s *Snowfall) Tick(dt, idle float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || dt <= 0 {
		return 0
	}

	s.budget += dt
	batches := 0
	for s.budget >= parameter.SnowSpawnInterval {
		s.budget -= parameter.SnowSpawnInterval
		batches++
	}

	if idle > parameter.SnowFadeWindow {
		s.active = false
		s.budget = 0
	}
	return batches
}

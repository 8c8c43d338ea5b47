package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/status"
)

// LiveSet is the copy-on-write collection of live entities in insertion order
// Snapshot is lock-free; Add and RemoveDead serialize on a mutex and publish a fresh slice
type LiveSet struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]entity.Entity]
	max  int

	statLive    *atomic.Int64
	statTrimmed *atomic.Int64
	statCulled  *atomic.Int64
}

// NewLiveSet creates an empty set capped at max entities
func NewLiveSet(max int, reg *status.Registry) *LiveSet {
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &LiveSet{
		max:         max,
		statLive:    reg.Ints.Get("entity.live"),
		statTrimmed: reg.Ints.Get("entity.trimmed"),
		statCulled:  reg.Ints.Get("entity.culled"),
	}
	empty := []entity.Entity{}
	s.snap.Store(&empty)
	return s
}

// Snapshot returns the current members; the slice must not be modified
func (s *LiveSet) Snapshot() []entity.Entity {
	return *s.snap.Load()
}

// Len returns the current member count
func (s *LiveSet) Len() int {
	return len(s.Snapshot())
}

// Count returns the number of members of kind
func (s *LiveSet) Count(kind entity.Kind) int {
	n := 0
	for _, e := range s.Snapshot() {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// Add appends entities and trims the oldest members beyond the cap
// Returns the number trimmed; trimmed entities are dropped, not recycled
func (s *LiveSet) Add(es ...entity.Entity) int {
	if len(es) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := *s.snap.Load()
	next := make([]entity.Entity, 0, len(cur)+len(es))
	next = append(next, cur...)
	for _, e := range es {
		if e != nil {
			next = append(next, e)
		}
	}

	trimmed := 0
	if s.max > 0 && len(next) > s.max {
		trimmed = len(next) - s.max
		next = next[trimmed:]
		s.statTrimmed.Add(int64(trimmed))
	}

	s.publish(next)
	return trimmed
}

// RemoveDead drops every member flagged dead and returns them in insertion order
// Must be called from the goroutine that updates entities
func (s *LiveSet) RemoveDead() []entity.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := *s.snap.Load()
	var dead []entity.Entity
	next := make([]entity.Entity, 0, len(cur))
	for _, e := range cur {
		if e.Common().Dead {
			dead = append(dead, e)
			continue
		}
		next = append(next, e)
	}
	if len(dead) == 0 {
		return nil
	}

	s.statCulled.Add(int64(len(dead)))
	s.publish(next)
	return dead
}

// Clear removes every member
func (s *LiveSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish([]entity.Entity{})
}

func (s *LiveSet) publish(next []entity.Entity) {
	s.snap.Store(&next)
	s.statLive.Store(int64(len(next)))
}

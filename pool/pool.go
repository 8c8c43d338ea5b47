// Package pool recycles particle instances between spawns
package pool

import (
	"sync/atomic"

	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/status"
)

// Pool is a bounded free list of dead entities keyed by kind
// Acquire and Release never block and are safe for concurrent use
// Entities come back un-reset; callers reset at reacquisition
type Pool struct {
	max  int64
	free [entity.KindCount]chan entity.Entity

	reserved atomic.Int64

	statSize      *atomic.Int64
	statHits      *atomic.Int64
	statMisses    *atomic.Int64
	statDiscarded *atomic.Int64
}

// New creates a pool holding at most max entities across the given kinds
// With no kinds only Sparks are pooled; a nil registry gets a private one
func New(max int, reg *status.Registry, kinds ...entity.Kind) *Pool {
	if max < 0 {
		max = 0
	}
	if len(kinds) == 0 {
		kinds = []entity.Kind{entity.KindSpark}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	p := &Pool{
		max:           int64(max),
		statSize:      reg.Ints.Get("pool.size"),
		statHits:      reg.Ints.Get("pool.hits"),
		statMisses:    reg.Ints.Get("pool.misses"),
		statDiscarded: reg.Ints.Get("pool.discarded"),
	}
	for _, k := range kinds {
		if k < entity.KindCount && p.free[k] == nil {
			p.free[k] = make(chan entity.Entity, max)
		}
	}
	return p
}

// Pooled reports whether kind is recycled by this pool
func (p *Pool) Pooled(kind entity.Kind) bool {
	return kind < entity.KindCount && p.free[kind] != nil
}

// Acquire returns a pooled entity of kind, or false when none is available
func (p *Pool) Acquire(kind entity.Kind) (entity.Entity, bool) {
	if !p.Pooled(kind) {
		p.statMisses.Add(1)
		return nil, false
	}
	select {
	case e := <-p.free[kind]:
		p.reserved.Add(-1)
		p.statSize.Store(int64(p.Size()))
		p.statHits.Add(1)
		return e, true
	default:
		p.statMisses.Add(1)
		return nil, false
	}
}

// Release offers e back to the pool and reports whether it was kept
// Entities beyond capacity or of a non-pooled kind are discarded
func (p *Pool) Release(e entity.Entity) bool {
	if e == nil || !p.Pooled(e.Kind()) {
		return false
	}

	if p.reserved.Add(1) > p.max {
		p.reserved.Add(-1)
		p.statDiscarded.Add(1)
		return false
	}

	select {
	case p.free[e.Kind()] <- e:
		p.statSize.Store(int64(p.Size()))
		return true
	default:
		p.reserved.Add(-1)
		p.statDiscarded.Add(1)
		return false
	}
}

// Size returns the number of pooled entities
func (p *Pool) Size() int {
	n := 0
	for _, ch := range p.free {
		if ch != nil {
			n += len(ch)
		}
	}
	return n
}

// Cap returns the configured bound
func (p *Pool) Cap() int {
	return int(p.max)
}

// Drain empties the pool
func (p *Pool) Drain() {
	for _, ch := range p.free {
		if ch == nil {
			continue
		}
		for drained := false; !drained; {
			select {
			case <-ch:
				p.reserved.Add(-1)
			default:
				drained = true
			}
		}
	}
	p.statSize.Store(0)
}

package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

func sparks(rng *vmath.FastRand, n int) []entity.Entity {
	out := make([]entity.Entity, n)
	for i := range out {
		out[i] = entity.NewSpark(rng)
	}
	return out
}

func TestLiveSetTrimsOldest(t *testing.T) {
	reg := status.NewRegistry()
	s := NewLiveSet(5, reg)
	batch := sparks(vmath.NewFastRand(1), 8)

	if trimmed := s.Add(batch...); trimmed != 3 {
		t.Fatalf("trimmed = %d, want 3", trimmed)
	}
	snap := s.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("len = %d, want 5", len(snap))
	}
	for i, e := range snap {
		if e != batch[i+3] {
			t.Errorf("slot %d holds the wrong entity; oldest should go first", i)
		}
	}
	if reg.Int("entity.trimmed") != 3 || reg.Int("entity.live") != 5 {
		t.Errorf("trimmed %d live %d", reg.Int("entity.trimmed"), reg.Int("entity.live"))
	}
}

func TestLiveSetSnapshotIsStable(t *testing.T) {
	s := NewLiveSet(10, nil)
	rng := vmath.NewFastRand(2)
	s.Add(sparks(rng, 2)...)
	before := s.Snapshot()
	s.Add(sparks(rng, 3)...)
	if len(before) != 2 {
		t.Error("a published snapshot changed length")
	}
	if s.Len() != 5 {
		t.Errorf("len = %d", s.Len())
	}
}

func TestLiveSetRemoveDead(t *testing.T) {
	s := NewLiveSet(10, nil)
	batch := sparks(vmath.NewFastRand(3), 4)
	s.Add(batch...)
	batch[1].Common().Dead = true
	batch[3].Common().Dead = true

	dead := s.RemoveDead()
	if len(dead) != 2 || dead[0] != batch[1] || dead[1] != batch[3] {
		t.Fatalf("dead = %v", dead)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
	if s.RemoveDead() != nil {
		t.Error("second sweep found dead entities")
	}
}

func TestLiveSetCountAndClear(t *testing.T) {
	s := NewLiveSet(0, nil)
	rng := vmath.NewFastRand(4)
	s.Add(entity.NewChainLink(rng), entity.NewSpark(rng), entity.NewChainLink(rng), nil)
	if s.Count(entity.KindChain) != 2 || s.Len() != 3 {
		t.Errorf("chains %d len %d", s.Count(entity.KindChain), s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear left members")
	}
}

func TestLiveSetConcurrentAddNeverExceedsCap(t *testing.T) {
	const max = 50
	s := NewLiveSet(max, nil)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := vmath.NewFastRand(seed)
			for i := 0; i < 40; i++ {
				s.Add(sparks(rng, 3)...)
				if n := len(s.Snapshot()); n > max {
					t.Errorf("snapshot of %d exceeds cap", n)
					return
				}
			}
		}(uint64(w + 10))
	}
	wg.Wait()
	if s.Len() != max {
		t.Errorf("len = %d, want %d", s.Len(), max)
	}
}

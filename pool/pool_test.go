package pool

import (
	"sync"
	"testing"

	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

func TestPoolBoundedRelease(t *testing.T) {
	rng := vmath.NewFastRand(1)
	reg := status.NewRegistry()
	p := New(2, reg)

	kept := 0
	for i := 0; i < 3; i++ {
		if p.Release(entity.NewSpark(rng)) {
			kept++
		}
	}
	if kept != 2 || p.Size() != 2 {
		t.Fatalf("kept %d, size %d, want 2 and 2", kept, p.Size())
	}
	if got := reg.Int("pool.discarded"); got != 1 {
		t.Errorf("pool.discarded = %d, want 1", got)
	}

	e, ok := p.Acquire(entity.KindSpark)
	if !ok || e.Kind() != entity.KindSpark {
		t.Fatalf("Acquire = %v, %v, want a pooled spark", e, ok)
	}
	if p.Size() != 1 {
		t.Errorf("size after acquire = %d, want 1", p.Size())
	}
	if reg.Int("pool.hits") != 1 {
		t.Errorf("pool.hits = %d, want 1", reg.Int("pool.hits"))
	}
}

func TestPoolIgnoresUnpooledKinds(t *testing.T) {
	rng := vmath.NewFastRand(2)
	p := New(4, nil)

	if p.Release(entity.NewChainLink(rng)) {
		t.Error("chain links are not pooled by default")
	}
	if _, ok := p.Acquire(entity.KindChain); ok {
		t.Error("Acquire of an unpooled kind should miss")
	}
	if p.Release(nil) {
		t.Error("nil release should be discarded")
	}
	if p.Size() != 0 {
		t.Errorf("size = %d, want 0", p.Size())
	}
}

func TestPoolExplicitKinds(t *testing.T) {
	rng := vmath.NewFastRand(3)
	p := New(4, nil, entity.KindStardust)
	if p.Pooled(entity.KindSpark) {
		t.Error("spark pooled although only stardust was requested")
	}
	if !p.Release(entity.NewStardust(rng)) {
		t.Fatal("stardust release rejected")
	}
	if _, ok := p.Acquire(entity.KindStardust); !ok {
		t.Error("pooled stardust not returned")
	}
}

func TestPoolZeroCapacity(t *testing.T) {
	p := New(0, nil)
	if p.Release(entity.NewSpark(vmath.NewFastRand(4))) {
		t.Error("zero-capacity pool kept an entity")
	}
	if p.Cap() != 0 {
		t.Errorf("cap = %d, want 0", p.Cap())
	}
}

func TestPoolDrain(t *testing.T) {
	rng := vmath.NewFastRand(5)
	p := New(3, nil)
	for i := 0; i < 3; i++ {
		p.Release(entity.NewSpark(rng))
	}
	p.Drain()
	if p.Size() != 0 {
		t.Fatalf("size after drain = %d", p.Size())
	}
	if !p.Release(entity.NewSpark(rng)) {
		t.Error("drained pool should accept entities again")
	}
}

func TestPoolConcurrentReleaseNeverExceedsCap(t *testing.T) {
	const max = 16
	p := New(max, nil)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := vmath.NewFastRand(seed)
			for i := 0; i < 50; i++ {
				p.Release(entity.NewSpark(rng))
				if i%3 == 0 {
					p.Acquire(entity.KindSpark)
				}
			}
		}(uint64(w + 1))
	}
	wg.Wait()

	if p.Size() > max {
		t.Errorf("size = %d exceeds cap %d", p.Size(), max)
	}
}

package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/status"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before timeout")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)
	c.Advance(time.Second)
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("advanced %v", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set ignored")
	}
}

func TestLoopClampsStallDelta(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	reg := status.NewRegistry()

	var calls atomic.Int64
	var lastDT atomic.Value
	loop := NewLoop(5*time.Millisecond, parameter.MaxDelta, clock, func(dt float64) {
		lastDT.Store(dt)
		calls.Add(1)
	}, reg, nil)
	loop.Start(context.Background())
	defer loop.Stop()

	// A frozen clock never reaches the first deadline
	time.Sleep(30 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Fatalf("%d ticks without clock movement", n)
	}

	clock.Advance(10 * time.Second)
	waitFor(t, 2*time.Second, func() bool { return calls.Load() == 1 })
	if dt := lastDT.Load().(float64); dt != parameter.MaxDelta {
		t.Errorf("dt after a 10s stall = %f, want %f", dt, parameter.MaxDelta)
	}

	// Resynced after the stall: no burst of catch-up ticks
	time.Sleep(30 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("%d ticks after one stall", n)
	}
	if reg.Int("loop.ticks") != 1 {
		t.Errorf("loop.ticks = %d", reg.Int("loop.ticks"))
	}
}

func TestLoopStopsPromptly(t *testing.T) {
	var calls atomic.Int64
	loop := NewLoop(5*time.Millisecond, parameter.MaxDelta, nil, func(float64) { calls.Add(1) }, nil, nil)
	loop.Start(context.Background())
	waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 3 })

	begin := time.Now()
	loop.Stop()
	if waited := time.Since(begin); waited > 500*time.Millisecond {
		t.Errorf("Stop took %v", waited)
	}
	if loop.Running() {
		t.Error("still running after Stop")
	}

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Error("ticked after Stop returned")
	}
	loop.Stop()
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(time.Millisecond, parameter.MaxDelta, nil, func(float64) {}, nil, nil)
	loop.Start(ctx)
	waitFor(t, time.Second, loop.Running)
	cancel()
	waitFor(t, time.Second, func() bool { return !loop.Running() })
}

func TestLoopRunsOnce(t *testing.T) {
	var calls atomic.Int64
	loop := NewLoop(time.Millisecond, parameter.MaxDelta, nil, func(float64) { calls.Add(1) }, nil, nil)
	loop.Start(context.Background())
	loop.Stop()
	loop.Start(context.Background())
	n := calls.Load()
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != n || loop.Running() {
		t.Error("a stopped loop restarted")
	}
}

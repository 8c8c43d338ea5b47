package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/core"
	"github.com/lixenwraith/thunderbolt/physics"
	"github.com/lixenwraith/thunderbolt/status"
)

// TickFunc runs one frame with the clamped delta-time in seconds
type TickFunc func(dt float64)

// Loop drives a TickFunc at a fixed rate on its own goroutine
// Sleeps on a timer between deadlines, never spins, and exits within one interval of Stop
// A Loop runs once; create a new one to restart
type Loop struct {
	clock    Clock
	interval time.Duration
	maxDelta float64
	tick     TickFunc

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	started  atomic.Bool

	log       *zap.Logger
	statTicks *atomic.Int64
}

// NewLoop creates a stopped loop
func NewLoop(interval time.Duration, maxDelta float64, clock Clock, tick TickFunc, reg *status.Registry, log *zap.Logger) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		clock:     clock,
		interval:  interval,
		maxDelta:  maxDelta,
		tick:      tick,
		stopChan:  make(chan struct{}),
		log:       log,
		statTicks: reg.Ints.Get("loop.ticks"),
	}
}

// Start launches the loop goroutine; later calls are no-ops
// Cancelling ctx stops the loop like Stop
func (l *Loop) Start(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	l.running.Store(true)
	l.wg.Add(1)
	core.Go(func() { l.run(ctx) })
}

// Stop signals the loop and waits for the goroutine to exit
// Must not be called from the TickFunc
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
}

// Running reports whether the loop goroutine is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()
	defer l.running.Store(false)

	l.log.Info("simulation loop started", zap.Duration("interval", l.interval))
	defer l.log.Info("simulation loop stopped", zap.Int64("ticks", l.statTicks.Load()))

	last := l.clock.Now()
	deadline := last.Add(l.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ctx.Done():
			return
		default:
		}

		now := l.clock.Now()
		if !now.Before(deadline) {
			dt := physics.ClampDelta(now.Sub(last).Seconds(), l.maxDelta)
			last = now
			l.tick(dt)
			l.statTicks.Add(1)

			deadline = deadline.Add(l.interval)
			// Far behind after a stall: resync instead of bursting catch-up ticks
			if now.Sub(deadline) > l.interval*2 {
				deadline = now.Add(l.interval)
			}
		}

		sleep := deadline.Sub(l.clock.Now())
		if sleep <= 0 {
			continue
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-l.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

package entity

import (
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// ReverseEcho replays a pre-simulated Spark cluster backward, one snapshot per tick
// Playback does no physics; the entity dies once the sequence is exhausted
type ReverseEcho struct {
	Body

	frames  [][]Spark
	index   int
	started bool // first Update holds index 0 so the first snapshot is captured
}

// Record simulates cluster forward for ticks steps of ctx.DT and returns a deep copy of the
// cluster after every step, oldest first; the cluster is advanced in place
func Record(cluster []*Spark, ctx *Context, ticks int) [][]Spark {
	live := make([]Entity, len(cluster))
	for i, s := range cluster {
		live[i] = s
	}

	frames := make([][]Spark, 0, ticks)
	for t := 0; t < ticks; t++ {
		for _, s := range cluster {
			s.Update(ctx, live)
		}
		ctx.Time += ctx.DT

		snap := make([]Spark, len(cluster))
		for i, s := range cluster {
			snap[i] = *s
		}
		frames = append(frames, snap)
	}
	return frames
}

// NewReverseEcho wraps forward frames in playback order: forward tick k is shown at playback tick N-1-k
func NewReverseEcho(forward [][]Spark) *ReverseEcho {
	n := len(forward)
	frames := make([][]Spark, n)
	for k, f := range forward {
		frames[n-1-k] = f
	}

	e := &ReverseEcho{frames: frames}
	e.rewind()
	return e
}

func (e *ReverseEcho) Kind() Kind { return KindEcho }

// Reset rewinds playback; the recorded sequence is kept
func (e *ReverseEcho) Reset(_ *vmath.FastRand) {
	e.rewind()
}

func (e *ReverseEcho) rewind() {
	e.index = 0
	e.started = false
	e.revive(float64(len(e.frames)) * parameter.FixedDelta)
	if len(e.frames) == 0 {
		e.Dead = true
	}
}

// Len returns the number of recorded snapshots
func (e *ReverseEcho) Len() int {
	return len(e.frames)
}

// Index returns the playback position
func (e *ReverseEcho) Index() int {
	return e.index
}

// Frame returns the snapshot shown at the current playback position, nil once exhausted
func (e *ReverseEcho) Frame() []Spark {
	if e.index >= len(e.frames) {
		return nil
	}
	return e.frames[e.index]
}

// Update selects the snapshot for the coming render; the entity dies after the last one was shown
func (e *ReverseEcho) Update(_ *Context, _ []Entity) {
	if e.Dead {
		return
	}
	if e.started {
		e.index++
	}
	e.started = true
	e.Lifetime = float64(len(e.frames)-e.index) * parameter.FixedDelta
	if e.index >= len(e.frames) {
		e.Lifetime = 0
		e.Dead = true
	}
}

func (e *ReverseEcho) Render(c *render.Canvas, _ []Entity) {
	frame := e.Frame()
	for i := range frame {
		frame[i].Render(c, nil)
	}
}

// Package scene turns the live entity set into drawable frames
package scene

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Layer is a run of primitives sharing one spawn origin
type Layer struct {
	Origin     vmath.Vec2
	Primitives []render.Primitive
}

// Frame is an immutable capture of the live set in entity-local coordinates
// Safe to share across goroutines; Project never mutates it
type Frame struct {
	Tick   uint64
	Layers []Layer
	// Entities is the number of entities that rendered without fault
	Entities int
	count    int
}

// Len returns the total primitive count
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return f.count
}

// Project translates every primitive by (origin - scroll) into a viewport Scene
func (f *Frame) Project(scroll vmath.Vec2) render.Scene {
	sc := render.Scene{OriginX: scroll.X, OriginY: scroll.Y}
	if f == nil {
		return sc
	}
	sc.Primitives = make([]render.Primitive, 0, f.count)
	for _, l := range f.Layers {
		d := l.Origin.Sub(scroll)
		for _, p := range l.Primitives {
			sc.Primitives = append(sc.Primitives, p.Translate(d.X, d.Y))
		}
	}
	return sc
}

// Capturer renders entities into frames, reusing one scratch canvas
// Not safe for concurrent use; the simulation goroutine owns it
type Capturer struct {
	canvas *render.Canvas
	log    *zap.Logger

	statFaults *atomic.Int64
}

// NewCapturer creates a capturer; nil registry and logger are allowed
func NewCapturer(reg *status.Registry, log *zap.Logger) *Capturer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Capturer{
		canvas:     render.NewCanvas(256),
		log:        log,
		statFaults: reg.Ints.Get("render.faults"),
	}
}

// Capture renders every non-dead entity; an entity whose Render panics is skipped
func (c *Capturer) Capture(tick uint64, live []entity.Entity) *Frame {
	f := &Frame{Tick: tick}
	for _, e := range live {
		b := e.Common()
		if b.Dead {
			continue
		}

		c.canvas.Reset()
		if !c.renderOne(e, live) {
			continue
		}
		f.Entities++

		prims := c.canvas.Primitives()
		if len(prims) == 0 {
			continue
		}
		n := len(f.Layers)
		if n == 0 || f.Layers[n-1].Origin != b.Origin {
			f.Layers = append(f.Layers, Layer{Origin: b.Origin})
			n++
		}
		f.Layers[n-1].Primitives = append(f.Layers[n-1].Primitives, prims...)
		f.count += len(prims)
	}
	return f
}

func (c *Capturer) renderOne(e entity.Entity, live []entity.Entity) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.statFaults.Add(1)
			c.log.Debug("render fault skipped",
				zap.Stringer("kind", e.Kind()),
				zap.String("panic", fmt.Sprint(r)))
			ok = false
		}
	}()
	e.Render(c.canvas, live)
	return true
}

// Render captures and projects in one call
func Render(live []entity.Entity, scroll vmath.Vec2) render.Scene {
	return NewCapturer(nil, nil).Capture(0, live).Project(scroll)
}

// Package entity defines the simulated particle kinds and their shared contract
package entity

import (
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// Kind is the entity discriminant
type Kind uint8

const (
	KindSpark Kind = iota
	KindChain
	KindSnowflake
	KindStardust
	KindButterfly
	KindEcho

	KindCount
)

var kindNames = [KindCount]string{
	KindSpark:     "spark",
	KindChain:     "chain",
	KindSnowflake: "snowflake",
	KindStardust:  "stardust",
	KindButterfly: "butterfly",
	KindEcho:      "echo",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Entity is implemented by every particle kind
// After insertion into the live set an entity is touched only by the simulation goroutine
type Entity interface {
	Kind() Kind
	Common() *Body
	// Update advances one tick; live is the current entity view including the receiver
	Update(ctx *Context, live []Entity)
	// Render emits primitives in viewport-local coordinates at the spawn origin
	Render(c *render.Canvas, live []Entity)
	// Reset re-randomizes cosmetic state and restores a full lifetime
	Reset(rng *vmath.FastRand)
}

// Body holds the fields common to all kinds
type Body struct {
	// Origin is the viewport scroll offset at spawn time, immutable after spawn
	Origin vmath.Vec2
	// Pos is the viewport-local position
	Pos vmath.Vec2
	// ChainStrength is nonzero only for entities that chain
	ChainStrength float64
	Lifetime      float64
	MaxLifetime   float64
	Dead          bool
}

// Common returns the body itself, promoted into every kind
func (b *Body) Common() *Body {
	return b
}

// World returns the position in document space (spawn origin plus local position)
func (b *Body) World() vmath.Vec2 {
	return b.Pos.Add(b.Origin)
}

// LifeFraction returns remaining lifetime over maximum in [0, 1]
func (b *Body) LifeFraction() float64 {
	if b.MaxLifetime <= 0 {
		return 0
	}
	return vmath.Clamp01(b.Lifetime / b.MaxLifetime)
}

// age consumes dt of lifetime and marks the body dead once it reaches zero
func (b *Body) age(dt float64) {
	b.Lifetime -= dt
	if b.Lifetime <= 0 {
		b.Dead = true
	}
}

// revive restores a full lifetime
func (b *Body) revive(lifetime float64) {
	b.Lifetime = lifetime
	b.MaxLifetime = lifetime
	b.Dead = false
}

// local maps another body's position into this body's local coordinate space
func (b *Body) local(other *Body) vmath.Vec2 {
	return other.Pos.Add(other.Origin).Sub(b.Origin)
}

// settler is implemented by kinds whose motion is defined relative to a derived center
type settler interface {
	Settle()
}

// Place sets the spawn origin and local position, then re-derives any motion center
func Place(e Entity, origin, pos vmath.Vec2) {
	b := e.Common()
	b.Origin = origin
	b.Pos = pos
	if s, ok := e.(settler); ok {
		s.Settle()
	}
}

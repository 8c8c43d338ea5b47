package entity

import (
	"math"

	"github.com/lixenwraith/thunderbolt/vmath"
)

// gridSlack pads queries for movement since the last Rebuild
const gridSlack = 8.0

// gridSpan is the widest query, in cells per side, served from buckets rather than a linear scan
const gridSpan = 8

type cellKey struct {
	x, y int
}

// Grid is a sparse uniform bucket index over world positions
// Rebuilt once per tick from the live view; query order follows insertion order within a cell
type Grid struct {
	cell    float64
	buckets map[cellKey][]Entity
}

// NewGrid creates an index with the given cell size
func NewGrid(cell float64) *Grid {
	if cell <= 0 {
		cell = 1
	}
	return &Grid{
		cell:    cell,
		buckets: make(map[cellKey][]Entity),
	}
}

func (g *Grid) key(p vmath.Vec2) cellKey {
	return cellKey{int(math.Floor(p.X / g.cell)), int(math.Floor(p.Y / g.cell))}
}

// Rebuild indexes every non-dead entity with a finite position
func (g *Grid) Rebuild(live []Entity) {
	for k, bucket := range g.buckets {
		if len(bucket) == 0 {
			delete(g.buckets, k)
			continue
		}
		clear(bucket)
		g.buckets[k] = bucket[:0]
	}

	for _, e := range live {
		b := e.Common()
		if b.Dead {
			continue
		}
		w := b.World()
		if !w.Finite() {
			continue
		}
		k := g.key(w)
		g.buckets[k] = append(g.buckets[k], e)
	}
}

// Covers reports whether a query of the given radius is cheap enough to serve from the index
func (g *Grid) Covers(radius float64) bool {
	return radius*2 <= g.cell*gridSpan
}

// Near visits candidates in every cell overlapping the square of half-size radius around center
// Candidates are not distance-filtered
func (g *Grid) Near(center vmath.Vec2, radius float64, fn func(Entity)) {
	if !center.Finite() || radius <= 0 {
		return
	}
	lo := g.key(center.Sub(vmath.Vec2{X: radius, Y: radius}))
	hi := g.key(center.Add(vmath.Vec2{X: radius, Y: radius}))
	for y := lo.y; y <= hi.y; y++ {
		for x := lo.x; x <= hi.x; x++ {
			for _, e := range g.buckets[cellKey{x, y}] {
				fn(e)
			}
		}
	}
}

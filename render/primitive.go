package render

import (
	"math"

	"github.com/lixenwraith/thunderbolt/vmath"
)

// Point is a position in viewport pixels
type Point = vmath.Vec2

// Primitive is one drawable element of a Scene
// Implementations are value types; Translate returns a moved copy and never aliases the receiver's point slices
type Primitive interface {
	Translate(dx, dy float64) Primitive
	Bounds() (min, max Point)
}

// Ellipse is a filled axis-aligned ellipse
type Ellipse struct {
	Center Point
	RX, RY float64
	Color  RGBA
}

func (e Ellipse) Translate(dx, dy float64) Primitive {
	e.Center = e.Center.Add(Point{X: dx, Y: dy})
	return e
}

func (e Ellipse) Bounds() (Point, Point) {
	return Point{X: e.Center.X - e.RX, Y: e.Center.Y - e.RY}, Point{X: e.Center.X + e.RX, Y: e.Center.Y + e.RY}
}

// Polyline is an open stroked path
type Polyline struct {
	Points []Point
	Width  float64
	Color  RGBA
}

func (p Polyline) Translate(dx, dy float64) Primitive {
	p.Points = translatePoints(p.Points, dx, dy)
	return p
}

func (p Polyline) Bounds() (Point, Point) {
	return pointBounds(p.Points, p.Width/2)
}

// Curve is a stroked Bezier segment
// Quadratic curves use Ctrl1 only
type Curve struct {
	Start, Ctrl1, Ctrl2, End Point
	Quadratic                bool
	Width                    float64
	Color                    RGBA
}

func (c Curve) Translate(dx, dy float64) Primitive {
	d := Point{X: dx, Y: dy}
	c.Start = c.Start.Add(d)
	c.Ctrl1 = c.Ctrl1.Add(d)
	c.Ctrl2 = c.Ctrl2.Add(d)
	c.End = c.End.Add(d)
	return c
}

func (c Curve) Bounds() (Point, Point) {
	// Control polygon hull bounds the curve
	pts := []Point{c.Start, c.Ctrl1, c.End}
	if !c.Quadratic {
		pts = append(pts, c.Ctrl2)
	}
	return pointBounds(pts, c.Width/2)
}

// At evaluates the curve at t in [0, 1]
func (c Curve) At(t float64) Point {
	u := 1 - t
	if c.Quadratic {
		return Point{
			X: u*u*c.Start.X + 2*u*t*c.Ctrl1.X + t*t*c.End.X,
			Y: u*u*c.Start.Y + 2*u*t*c.Ctrl1.Y + t*t*c.End.Y,
		}
	}
	return Point{
		X: u*u*u*c.Start.X + 3*u*u*t*c.Ctrl1.X + 3*u*t*t*c.Ctrl2.X + t*t*t*c.End.X,
		Y: u*u*u*c.Start.Y + 3*u*u*t*c.Ctrl1.Y + 3*u*t*t*c.Ctrl2.Y + t*t*t*c.End.Y,
	}
}

// Flatten approximates the curve with segments+1 points
func (c Curve) Flatten(segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		pts[i] = c.At(float64(i) / float64(segments))
	}
	return pts
}

// GradientStop is one color stop of a radial gradient, Offset in [0, 1]
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// RadialGradient maps distance from Center (normalized by Radius) to interpolated stops
type RadialGradient struct {
	Center Point
	Radius float64
	Stops  []GradientStop
}

// At returns the gradient color at p
func (g *RadialGradient) At(p Point) RGBA {
	if len(g.Stops) == 0 {
		return RGBA{}
	}
	t := 0.0
	if g.Radius > 0 {
		t = vmath.Clamp01(g.Center.Dist(p) / g.Radius)
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			k := 1.0
			if span > 0 {
				k = (t - a.Offset) / span
			}
			rgb := Lerp(a.Color.RGB(), b.Color.RGB(), k)
			alpha := vmath.Lerp(a.Color.Alpha(), b.Color.Alpha(), k)
			return rgb.WithAlpha(alpha)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Polygon is a filled closed path with either a flat color or a radial gradient
type Polygon struct {
	Points   []Point
	Color    RGBA
	Gradient *RadialGradient
}

func (p Polygon) Translate(dx, dy float64) Primitive {
	p.Points = translatePoints(p.Points, dx, dy)
	if p.Gradient != nil {
		g := *p.Gradient
		g.Center = g.Center.Add(Point{X: dx, Y: dy})
		p.Gradient = &g
	}
	return p
}

func (p Polygon) Bounds() (Point, Point) {
	return pointBounds(p.Points, 0)
}

// ColorAt returns the fill color at p
func (p Polygon) ColorAt(pt Point) RGBA {
	if p.Gradient != nil {
		return p.Gradient.At(pt)
	}
	return p.Color
}

// Contains reports whether pt lies inside the polygon (even-odd rule)
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func translatePoints(src []Point, dx, dy float64) []Point {
	out := make([]Point, len(src))
	for i, p := range src {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func pointBounds(pts []Point, pad float64) (Point, Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	lo := Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pts {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return Point{X: lo.X - pad, Y: lo.Y - pad}, Point{X: hi.X + pad, Y: hi.Y + pad}
}

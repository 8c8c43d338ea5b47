// Package window hosts the engine in a desktop window with ebiten
package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Mesh is one tessellated primitive
type Mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
	EvenOdd  bool
}

// Tessellate converts a primitive into colored triangles
// Returns false for primitives that produce no geometry
func Tessellate(p render.Primitive) (Mesh, bool) {
	var m Mesh
	switch v := p.(type) {
	case render.Ellipse:
		path := ellipsePath(v)
		m.Vertices, m.Indices = path.AppendVerticesAndIndicesForFilling(nil, nil)
		colorize(m.Vertices, v.Color)
		m.EvenOdd = true
	case render.Polyline:
		var path vector.Path
		for i, pt := range v.Points {
			if i == 0 {
				path.MoveTo(float32(pt.X), float32(pt.Y))
			} else {
				path.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
		m.Vertices, m.Indices = path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOptions(v.Width))
		colorize(m.Vertices, v.Color)
	case render.Curve:
		var path vector.Path
		path.MoveTo(float32(v.Start.X), float32(v.Start.Y))
		if v.Quadratic {
			path.QuadTo(float32(v.Ctrl1.X), float32(v.Ctrl1.Y), float32(v.End.X), float32(v.End.Y))
		} else {
			path.CubicTo(float32(v.Ctrl1.X), float32(v.Ctrl1.Y), float32(v.Ctrl2.X), float32(v.Ctrl2.Y), float32(v.End.X), float32(v.End.Y))
		}
		m.Vertices, m.Indices = path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOptions(v.Width))
		colorize(m.Vertices, v.Color)
	case render.Polygon:
		if v.Gradient != nil && v.Contains(v.Gradient.Center) {
			m = gradientFan(v)
			break
		}
		var path vector.Path
		for i, pt := range v.Points {
			if i == 0 {
				path.MoveTo(float32(pt.X), float32(pt.Y))
			} else {
				path.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
		path.Close()
		m.Vertices, m.Indices = path.AppendVerticesAndIndicesForFilling(nil, nil)
		col := v.Color
		if v.Gradient != nil {
			col = v.Gradient.At(centroid(v.Points))
		}
		colorize(m.Vertices, col)
		m.EvenOdd = true
	}
	return m, len(m.Indices) > 0
}

// DrawScene paints every primitive of the scene onto dst in order
func DrawScene(dst *ebiten.Image, sc render.Scene) {
	for _, p := range sc.Primitives {
		m, ok := Tessellate(p)
		if !ok {
			continue
		}
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		if m.EvenOdd {
			op.FillRule = ebiten.EvenOdd
		}
		dst.DrawTriangles(m.Vertices, m.Indices, whiteSubImage, op)
	}
}

func ellipsePath(e render.Ellipse) *vector.Path {
	var path vector.Path
	n := parameter.WindowEllipseSegments
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := float32(e.Center.X + e.RX*math.Cos(a))
		y := float32(e.Center.Y + e.RY*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

func strokeOptions(width float64) *vector.StrokeOptions {
	return &vector.StrokeOptions{
		Width:    float32(math.Max(width, 1)),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
}

// gradientFan fans triangles out from the gradient center so every vertex carries its own stop color
// Valid only for polygons that are star-shaped around the center
func gradientFan(p render.Polygon) Mesh {
	g := p.Gradient
	n := len(p.Points)
	m := Mesh{
		Vertices: make([]ebiten.Vertex, 0, n+1),
		Indices:  make([]uint16, 0, n*3),
	}
	m.Vertices = append(m.Vertices, vertex(g.Center, g.At(g.Center)))
	for _, pt := range p.Points {
		m.Vertices = append(m.Vertices, vertex(pt, g.At(pt)))
	}
	for i := 0; i < n; i++ {
		a := uint16(1 + i)
		b := uint16(1 + (i+1)%n)
		m.Indices = append(m.Indices, 0, a, b)
	}
	return m
}

func vertex(p render.Point, c render.RGBA) ebiten.Vertex {
	v := ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)}
	setColor(&v, c)
	return v
}

// colorize paints vertices with a straight-alpha color sampled from the white source pixel
func colorize(vs []ebiten.Vertex, c render.RGBA) {
	for i := range vs {
		setColor(&vs[i], c)
	}
}

func setColor(v *ebiten.Vertex, c render.RGBA) {
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R) / 255
	v.ColorG = float32(c.G) / 255
	v.ColorB = float32(c.B) / 255
	v.ColorA = float32(c.A) / 255
}

func centroid(pts []render.Point) render.Point {
	var c render.Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pts)))
}

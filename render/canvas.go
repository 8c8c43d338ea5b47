package render

// Canvas collects primitives emitted by entity renderers
// Fully transparent primitives are dropped at the door
type Canvas struct {
	prims []Primitive
}

// NewCanvas creates a canvas with capacity hint
func NewCanvas(capacity int) *Canvas {
	return &Canvas{prims: make([]Primitive, 0, capacity)}
}

// FillEllipse emits a filled ellipse
func (c *Canvas) FillEllipse(center Point, rx, ry float64, col RGBA) {
	if col.A == 0 || rx <= 0 || ry <= 0 {
		return
	}
	c.prims = append(c.prims, Ellipse{Center: center, RX: rx, RY: ry, Color: col})
}

// FillCircle emits a filled circle of radius r
func (c *Canvas) FillCircle(center Point, r float64, col RGBA) {
	c.FillEllipse(center, r, r, col)
}

// StrokePolyline emits an open path; the point slice is copied
func (c *Canvas) StrokePolyline(points []Point, width float64, col RGBA) {
	if col.A == 0 || len(points) < 2 {
		return
	}
	c.prims = append(c.prims, Polyline{Points: append([]Point(nil), points...), Width: width, Color: col})
}

// StrokeLine emits a single segment
func (c *Canvas) StrokeLine(a, b Point, width float64, col RGBA) {
	c.StrokePolyline([]Point{a, b}, width, col)
}

// StrokeQuad emits a quadratic Bezier
func (c *Canvas) StrokeQuad(start, ctrl, end Point, width float64, col RGBA) {
	if col.A == 0 {
		return
	}
	c.prims = append(c.prims, Curve{Start: start, Ctrl1: ctrl, Ctrl2: ctrl, End: end, Quadratic: true, Width: width, Color: col})
}

// StrokeCubic emits a cubic Bezier
func (c *Canvas) StrokeCubic(start, ctrl1, ctrl2, end Point, width float64, col RGBA) {
	if col.A == 0 {
		return
	}
	c.prims = append(c.prims, Curve{Start: start, Ctrl1: ctrl1, Ctrl2: ctrl2, End: end, Width: width, Color: col})
}

// FillPolygon emits a flat-colored polygon; the point slice is copied
func (c *Canvas) FillPolygon(points []Point, col RGBA) {
	if col.A == 0 || len(points) < 3 {
		return
	}
	c.prims = append(c.prims, Polygon{Points: append([]Point(nil), points...), Color: col})
}

// FillPolygonGradient emits a polygon filled by a radial gradient
func (c *Canvas) FillPolygonGradient(points []Point, grad RadialGradient) {
	if len(points) < 3 || len(grad.Stops) == 0 {
		return
	}
	g := grad
	g.Stops = append([]GradientStop(nil), grad.Stops...)
	c.prims = append(c.prims, Polygon{Points: append([]Point(nil), points...), Color: grad.Stops[0].Color, Gradient: &g})
}

// Primitives returns the collected primitives
func (c *Canvas) Primitives() []Primitive {
	return c.prims
}

// Len returns the number of collected primitives
func (c *Canvas) Len() int {
	return len(c.prims)
}

// Reset empties the canvas keeping capacity
func (c *Canvas) Reset() {
	clear(c.prims)
	c.prims = c.prims[:0]
}

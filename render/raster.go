package render

import "math"

// curveSegments is the flattening resolution used for Bezier strokes
const curveSegments = 16

// Raster is a coarse software compositor that samples a Scene at cell centers
// Used by cell-based surfaces (terminal) where each cell covers cellW x cellH viewport pixels
type Raster struct {
	pix     []RGB
	touched []bool
	width   int
	height  int
	cellW   float64
	cellH   float64
	bg      RGB
}

// NewRaster creates a raster of width x height cells
func NewRaster(width, height int, cellW, cellH float64, bg RGB) *Raster {
	r := &Raster{cellW: cellW, cellH: cellH, bg: bg}
	r.Resize(width, height)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(r.pix) < size {
		r.pix = make([]RGB, size)
		r.touched = make([]bool, size)
	} else {
		r.pix = r.pix[:size]
		r.touched = r.touched[:size]
	}
	r.width = width
	r.height = height
	r.Clear()
}

// Clear resets all cells to background
func (r *Raster) Clear() {
	for i := range r.pix {
		r.pix[i] = r.bg
		r.touched[i] = false
	}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// At returns the cell color and whether any primitive touched it
func (r *Raster) At(x, y int) (RGB, bool) {
	if !r.inBounds(x, y) {
		return r.bg, false
	}
	i := y*r.width + x
	return r.pix[i], r.touched[i]
}

// Draw composites every primitive of the scene in order
func (r *Raster) Draw(s Scene) {
	for _, p := range s.Primitives {
		switch v := p.(type) {
		case Ellipse:
			r.drawEllipse(v)
		case Polyline:
			r.drawPolyline(v.Points, v.Color)
		case Curve:
			r.drawPolyline(v.Flatten(curveSegments), v.Color)
		case Polygon:
			r.drawPolygon(v)
		}
	}
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// cellOf maps a viewport pixel to its cell
func (r *Raster) cellOf(p Point) (int, int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y / r.cellH))
}

// center returns the viewport pixel at the center of cell (x, y)
func (r *Raster) center(x, y int) Point {
	return Point{X: (float64(x) + 0.5) * r.cellW, Y: (float64(y) + 0.5) * r.cellH}
}

func (r *Raster) plot(x, y int, c RGBA) {
	if !r.inBounds(x, y) || c.A == 0 {
		return
	}
	i := y*r.width + x
	r.pix[i] = Blend(r.pix[i], c.RGB(), c.Alpha())
	r.touched[i] = true
}

// cellRange clips primitive bounds to the raster cell grid
func (r *Raster) cellRange(lo, hi Point) (x0, y0, x1, y1 int) {
	x0, y0 = r.cellOf(lo)
	x1, y1 = r.cellOf(hi)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, r.width-1)
	y1 = min(y1, r.height-1)
	return
}

func (r *Raster) drawEllipse(e Ellipse) {
	lo, hi := e.Bounds()
	x0, y0, x1, y1 := r.cellRange(lo, hi)
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := r.center(x, y)
			dx := (c.X - e.Center.X) / e.RX
			dy := (c.Y - e.Center.Y) / e.RY
			if dx*dx+dy*dy <= 1 {
				r.plot(x, y, e.Color)
				hit = true
			}
		}
	}
	if !hit {
		// Sub-cell ellipse: deposit into the containing cell weighted by area coverage
		coverage := math.Min(1, math.Pi*e.RX*e.RY/(r.cellW*r.cellH))
		cx, cy := r.cellOf(e.Center)
		r.plot(cx, cy, e.Color.ScaleAlpha(coverage))
	}
}

func (r *Raster) drawPolyline(pts []Point, col RGBA) {
	if len(pts) < 2 {
		return
	}
	step := math.Min(r.cellW, r.cellH) / 2
	lastX, lastY := math.MinInt, math.MinInt
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		n := int(math.Ceil(a.Dist(b)/step)) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			x, y := r.cellOf(Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
			if x == lastX && y == lastY {
				continue
			}
			r.plot(x, y, col)
			lastX, lastY = x, y
		}
	}
}

func (r *Raster) drawPolygon(p Polygon) {
	lo, hi := p.Bounds()
	x0, y0, x1, y1 := r.cellRange(lo, hi)
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := r.center(x, y)
			if p.Contains(c) {
				r.plot(x, y, p.ColorAt(c))
				hit = true
			}
		}
	}
	if !hit && len(p.Points) > 0 {
		var sum Point
		for _, pt := range p.Points {
			sum = sum.Add(pt)
		}
		centroid := sum.Scale(1 / float64(len(p.Points)))
		cx, cy := r.cellOf(centroid)
		r.plot(cx, cy, p.ColorAt(centroid))
	}
}

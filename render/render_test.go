package render

import (
	"testing"
)

func TestBlendAndAdd(t *testing.T) {
	bg := RGB{R: 100, G: 100, B: 100}
	if got := Blend(bg, RGBWhite, 1); got != RGBWhite {
		t.Errorf("opaque blend = %v", got)
	}
	if got := Blend(bg, RGBWhite, 0); got != bg {
		t.Errorf("transparent blend = %v", got)
	}
	if got := Blend(RGBBlack, RGB{R: 200}, 0.5); got.R != 100 {
		t.Errorf("half blend red = %d", got.R)
	}
	if got := Add(RGB{R: 200}, RGB{R: 100}, 1); got.R != 255 {
		t.Errorf("additive red = %d, want clamp at 255", got.R)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := RGB{R: 10, G: 20, B: 30}, RGB{R: 200, G: 100, B: 0}
	if Lerp(a, b, -1) != a || Lerp(a, b, 0) != a || Lerp(a, b, 1) != b {
		t.Error("endpoints not exact")
	}
	mid := Lerp(RGBBlack, RGBWhite, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("mid gray = %v", mid)
	}
}

func TestColorHelpers(t *testing.T) {
	if c := RGBWhite.WithAlpha(0.5); c.A != 128 {
		t.Errorf("alpha byte = %d", c.A)
	}
	if c := RGBWhite.WithAlpha(2); c.A != 255 {
		t.Errorf("clamped alpha = %d", c.A)
	}
	if c := (RGB{R: 250, G: 5}).Jitter(10, -10, 0); c.R != 255 || c.G != 0 {
		t.Errorf("jitter = %v", c)
	}
	if !(RGB{R: 10, G: 10, B: 10}).Below(20) || (RGB{R: 30}).Below(20) {
		t.Error("Below")
	}
	if c := RGBWhite.WithAlpha(1).ScaleAlpha(0.5); c.A != 128 {
		t.Errorf("scaled alpha = %d", c.A)
	}
}

func TestCanvasDropsInvisible(t *testing.T) {
	c := NewCanvas(4)
	c.FillCircle(Point{}, 5, RGBWhite.WithAlpha(0))
	c.FillCircle(Point{}, 0, RGBWhite.WithAlpha(1))
	c.StrokePolyline([]Point{{X: 1}}, 1, RGBWhite.WithAlpha(1))
	c.FillPolygon([]Point{{}, {X: 1}}, RGBWhite.WithAlpha(1))
	if c.Len() != 0 {
		t.Fatalf("kept %d invisible primitives", c.Len())
	}

	pts := []Point{{}, {X: 4}, {X: 4, Y: 4}}
	c.FillPolygon(pts, RGBWhite.WithAlpha(1))
	pts[0].X = 99
	if got := c.Primitives()[0].(Polygon).Points[0].X; got != 0 {
		t.Error("canvas shares the caller's points")
	}
	c.Reset()
	if c.Len() != 0 {
		t.Error("Reset kept primitives")
	}
}

func TestTranslate(t *testing.T) {
	grad := &RadialGradient{Center: Point{X: 1, Y: 1}, Radius: 2, Stops: []GradientStop{{Color: RGBWhite.WithAlpha(1)}}}
	p := Polygon{Points: []Point{{}, {X: 2}, {X: 2, Y: 2}}, Gradient: grad}
	moved := p.Translate(10, 20).(Polygon)
	if moved.Points[0] != (Point{X: 10, Y: 20}) || moved.Gradient.Center != (Point{X: 11, Y: 21}) {
		t.Errorf("translated = %v center %v", moved.Points[0], moved.Gradient.Center)
	}
	if p.Points[0] != (Point{}) || grad.Center != (Point{X: 1, Y: 1}) {
		t.Error("Translate mutated the original")
	}

	c := Curve{Start: Point{}, Ctrl1: Point{X: 1}, End: Point{X: 2}, Quadratic: true}.Translate(1, 1).(Curve)
	if c.Start != (Point{X: 1, Y: 1}) || c.End != (Point{X: 3, Y: 1}) {
		t.Errorf("curve = %+v", c)
	}
}

func TestCurveEvaluation(t *testing.T) {
	q := Curve{Start: Point{}, Ctrl1: Point{X: 5, Y: 10}, End: Point{X: 10}, Quadratic: true}
	if got := q.At(0.5); got != (Point{X: 5, Y: 5}) {
		t.Errorf("quadratic midpoint = %v", got)
	}
	c := Curve{Start: Point{}, Ctrl1: Point{Y: 10}, Ctrl2: Point{X: 10, Y: 10}, End: Point{X: 10}}
	if got := c.At(0.5); got != (Point{X: 5, Y: 7.5}) {
		t.Errorf("cubic midpoint = %v", got)
	}
	pts := c.Flatten(4)
	if len(pts) != 5 || pts[0] != c.Start || pts[4] != c.End {
		t.Errorf("flatten = %v", pts)
	}
}

func TestRadialGradientStops(t *testing.T) {
	g := &RadialGradient{
		Center: Point{},
		Radius: 10,
		Stops: []GradientStop{
			{Offset: 0, Color: RGBWhite.WithAlpha(1)},
			{Offset: 1, Color: RGBBlack.WithAlpha(0)},
		},
	}
	if got := g.At(Point{}); got != RGBWhite.WithAlpha(1) {
		t.Errorf("center = %v", got)
	}
	if got := g.At(Point{X: 50}); got != RGBBlack.WithAlpha(0) {
		t.Errorf("outside = %v", got)
	}
	if got := g.At(Point{X: 5}); got.A < 126 || got.A > 129 {
		t.Errorf("half radius alpha = %d", got.A)
	}
	if (&RadialGradient{}).At(Point{}) != (RGBA{}) {
		t.Error("gradient without stops should be transparent")
	}
}

func TestPolygonContains(t *testing.T) {
	sq := Polygon{Points: []Point{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}}}
	if !sq.Contains(Point{X: 5, Y: 5}) || sq.Contains(Point{X: 15, Y: 5}) {
		t.Error("square containment")
	}
	if (Polygon{Points: []Point{{}, {X: 1}}}).Contains(Point{}) {
		t.Error("degenerate polygon contains a point")
	}
}

func TestRasterEllipse(t *testing.T) {
	r := NewRaster(10, 5, 8, 16, RGBBlack)
	red := RGB{R: 255}
	r.Draw(Scene{Primitives: []Primitive{
		Ellipse{Center: Point{X: 4, Y: 8}, RX: 6, RY: 10, Color: red.WithAlpha(1)},
	}})

	if c, touched := r.At(0, 0); !touched || c != red {
		t.Errorf("cell (0,0) = %v touched %v", c, touched)
	}
	if _, touched := r.At(5, 3); touched {
		t.Error("distant cell touched")
	}
	if c, touched := r.At(-1, 0); touched || c != RGBBlack {
		t.Error("out-of-bounds read")
	}
}

func TestRasterSubCellEllipseDeposits(t *testing.T) {
	r := NewRaster(4, 4, 8, 16, RGBBlack)
	r.Draw(Scene{Primitives: []Primitive{
		Ellipse{Center: Point{X: 17, Y: 17}, RX: 1, RY: 1, Color: RGBWhite.WithAlpha(1)},
	}})
	c, touched := r.At(2, 1)
	if !touched {
		t.Fatal("tiny ellipse left no trace")
	}
	if c.R == 0 || c.R == 255 {
		t.Errorf("coverage-weighted cell = %v", c)
	}
}

func TestRasterStrokes(t *testing.T) {
	r := NewRaster(10, 3, 8, 16, RGBBlack)
	white := RGBWhite.WithAlpha(1)
	r.Draw(Scene{Primitives: []Primitive{
		Polyline{Points: []Point{{X: 4, Y: 8}, {X: 76, Y: 8}}, Width: 1, Color: white},
		Curve{Start: Point{X: 4, Y: 40}, Ctrl1: Point{X: 40, Y: 40}, End: Point{X: 76, Y: 40}, Quadratic: true, Color: white},
	}})
	for x := 0; x < 10; x++ {
		if _, touched := r.At(x, 0); !touched {
			t.Errorf("line missed cell (%d,0)", x)
		}
		if _, touched := r.At(x, 2); !touched {
			t.Errorf("curve missed cell (%d,2)", x)
		}
	}
	if _, touched := r.At(3, 1); touched {
		t.Error("row between strokes touched")
	}
}

func TestRasterResizeClears(t *testing.T) {
	r := NewRaster(2, 2, 8, 16, RGBBlack)
	r.Draw(Scene{Primitives: []Primitive{Ellipse{Center: Point{X: 4, Y: 8}, RX: 4, RY: 8, Color: RGBWhite.WithAlpha(1)}}})
	r.Resize(3, 1)
	if r.Width() != 3 || r.Height() != 1 {
		t.Fatalf("size %dx%d", r.Width(), r.Height())
	}
	if _, touched := r.At(0, 0); touched {
		t.Error("resize kept old pixels")
	}
}

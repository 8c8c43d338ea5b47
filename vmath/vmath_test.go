package vmath

import (
	"math"
	"testing"
)

func TestScalarHelpers(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp01(0.4) != 0.4 {
		t.Error("Clamp")
	}
	if Lerp(2, 4, 0.5) != 3 || Lerp(2, 4, 2) != 6 {
		t.Error("Lerp should not clamp t")
	}
	if ExpApproach(10, 0, 0, 1) != 10 || ExpApproach(10, 0, 1, 0) != 10 {
		t.Error("ExpApproach with zero rate or dt must not move")
	}
	if got := ExpApproach(10, 0, 1, 1); math.Abs(got-10/math.E) > 1e-12 {
		t.Errorf("ExpApproach = %f", got)
	}
	if Finite(math.NaN()) || Finite(math.Inf(-1)) || !Finite(1e300) {
		t.Error("Finite")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f > 1 {
			t.Fatalf("Float64 = %f", f)
		}
		if v := r.IntRange(-2, 2); v < -2 || v > 2 {
			t.Fatalf("IntRange = %d", v)
		}
		if v := r.Range(3, 4); v < 3 || v > 4 {
			t.Fatalf("Range = %f", v)
		}
		if a := r.Angle(); a < 0 || a > 2*math.Pi {
			t.Fatalf("Angle = %f", a)
		}
	}
	if r.Intn(0) != 0 || r.IntRange(5, 5) != 5 || r.Chance(0) {
		t.Error("degenerate inputs")
	}
}

func TestFastRandReproducible(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("diverged at %d", i)
		}
	}
	fa, fb := a.Fork(), b.Fork()
	if fa.Next() != fb.Next() {
		t.Error("forks of equal generators differ")
	}
	if a.Next() == fa.Next() {
		t.Error("fork mirrors its parent")
	}
}

func TestVectorOps(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 || v.LenSq() != 25 {
		t.Errorf("len %f sq %f", v.Len(), v.LenSq())
	}
	if v.Add(V(1, 1)) != V(4, 5) || v.Sub(V(1, 1)) != V(2, 3) || v.Scale(2) != V(6, 8) {
		t.Error("arithmetic")
	}
	if V(0, 0).Dist(v) != 5 {
		t.Error("Dist")
	}
	if v.Perpendicular() != V(-4, 3) {
		t.Error("Perpendicular")
	}
	r := V(1, 0).Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("Rotate = %v", r)
	}
	p := Polar(2, math.Pi)
	if math.Abs(p.X+2) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("Polar = %v", p)
	}
	if V(50, -70).ClampComponents(40) != V(40, -40) {
		t.Error("ClampComponents")
	}
	if V(math.NaN(), 0).Finite() || !v.Finite() {
		t.Error("Finite")
	}
}

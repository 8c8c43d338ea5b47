package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/thunderbolt/vmath"
)

func TestKinetics(t *testing.T) {
	pos := vmath.V(0, 0)
	Integrate(&pos, vmath.V(10, -20), 0.5)
	if pos != vmath.V(5, -10) {
		t.Errorf("Integrate = %v", pos)
	}

	f := vmath.V(1, 1)
	ApplyImpulse(&f, 2, 3)
	ApplyGravity(&f, 10, 0.1)
	if f != vmath.V(3, 5) {
		t.Errorf("impulse + gravity = %v", f)
	}
	ApplyFriction(&f, 0.5)
	if f != vmath.V(1.5, 2.5) {
		t.Errorf("friction = %v", f)
	}

	rng := vmath.NewFastRand(1)
	for i := 0; i < 1000; i++ {
		if k := JitteredFriction(0.9, 0.1, rng); k < 0.81-1e-12 || k > 0.99+1e-12 {
			t.Fatalf("jittered friction %f", k)
		}
	}
}

func TestClampDelta(t *testing.T) {
	cases := map[float64]float64{
		0.016:       0.016,
		10:          0.032,
		-1:          0,
		math.NaN():  0,
		math.Inf(1): 0,
	}
	for in, want := range cases {
		if got := ClampDelta(in, 0.032); got != want {
			t.Errorf("ClampDelta(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRepulsionsPushApart(t *testing.T) {
	self, other := vmath.V(0, 0), vmath.V(5, 0)
	if f := InverseRepulsion(self, other, 10, 100, 0.1); f.X >= 0 || f.Y != 0 {
		t.Errorf("InverseRepulsion = %v", f)
	}
	if f := LinearRepulsion(self, other, 10, 100, 0.1); f.X >= 0 {
		t.Errorf("LinearRepulsion = %v", f)
	}
	if InverseRepulsion(self, vmath.V(20, 0), 10, 100, 0.1) != (vmath.Vec2{}) {
		t.Error("InverseRepulsion beyond radius")
	}
	if LinearRepulsion(self, self, 10, 100, 0.1) != (vmath.Vec2{}) {
		t.Error("coincident points should not push")
	}
}

func TestChainAttractionFalloff(t *testing.T) {
	self := vmath.V(0, 0)
	near := ChainAttraction(self, vmath.V(10, 0), 100, 1, 1)
	far := ChainAttraction(self, vmath.V(90, 0), 100, 1, 1)
	if near.X <= 0 || far.X <= 0 {
		t.Fatalf("attraction should pull: %v %v", near, far)
	}
	if ChainAttraction(self, vmath.V(100, 0), 100, 1, 1) != (vmath.Vec2{}) {
		t.Error("pull at max distance")
	}
	if ChainAttraction(self, vmath.V(1, 0), 0, 1, 1) != (vmath.Vec2{}) {
		t.Error("zero reach should not pull")
	}
}

func TestElasticReturn(t *testing.T) {
	if f := ElasticReturn(vmath.V(10, 0), vmath.V(0, 0), 2, 0.5); f != vmath.V(-10, 0) {
		t.Errorf("ElasticReturn = %v", f)
	}
}

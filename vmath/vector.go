package vmath

import "math"

// Vec2 is a 2D float vector used for positions and forces
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns Euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns squared length without sqrt
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Dist returns Euclidean distance between v and o
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

// Rotate rotates v by angle radians around the origin
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Polar returns a vector of length r at angle radians
func Polar(r, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c * r, s * r}
}

// ClampComponents limits each component to [-limit, limit]
func (v Vec2) ClampComponents(limit float64) Vec2 {
	return Vec2{Clamp(v.X, -limit, limit), Clamp(v.Y, -limit, limit)}
}

// Finite reports whether both components are finite
func (v Vec2) Finite() bool { return Finite(v.X) && Finite(v.Y) }

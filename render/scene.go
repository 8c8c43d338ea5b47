package render

// Scene is one frame of drawable primitives in viewport coordinates
// OriginX/OriginY is the viewport scroll offset the scene was projected for
type Scene struct {
	OriginX, OriginY float64
	Primitives       []Primitive
}

// Len returns primitive count
func (s Scene) Len() int {
	return len(s.Primitives)
}

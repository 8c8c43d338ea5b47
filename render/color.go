package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// RGBA is a straight (non-premultiplied) 8-bit color with alpha
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// WithAlpha attaches an alpha in [0, 1] to an opaque color
func (c RGB) WithAlpha(alpha float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: clamp(alpha*255.0 + 0.5)}
}

// Jitter offsets every channel and clamps to [0, 255]
func (c RGB) Jitter(dr, dg, db int) RGB {
	return RGB{
		R: clampInt(int(c.R) + dr),
		G: clampInt(int(c.G) + dg),
		B: clampInt(int(c.B) + db),
	}
}

// Below reports whether every channel is below threshold
func (c RGB) Below(threshold uint8) bool {
	return c.R < threshold && c.G < threshold && c.B < threshold
}

// RGB drops the alpha channel
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Alpha returns the alpha channel in [0, 1]
func (c RGBA) Alpha() float64 {
	return float64(c.A) / 255.0
}

// ScaleAlpha multiplies alpha by factor
func (c RGBA) ScaleAlpha(factor float64) RGBA {
	c.A = clamp(float64(c.A)*factor + 0.5)
	return c
}

// NRGBA converts to the image/color straight-alpha type
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Colorful converts to a go-colorful color
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Package render defines the drawing surface the simulation paints onto.
// Concrete surfaces live in the sub-packages: canvas (ebiten), term (tcell)
// and svg (svgo).
package render

import (
	"image/color"
	"math"
)

// Surface is a 2D drawable target with fixed pixel dimensions.
// All painting is additive; FillGradient is expected once at the start of
// every frame and covers the whole target.
type Surface interface {
	// FillGradient paints a vertical gradient over the full surface.
	FillGradient(top, bottom color.NRGBA)
	// FillCircle paints a filled, anti-aliased circle.
	FillCircle(x, y, r float64, c color.NRGBA)
	// FillGlow paints a soft halo of radius r+blur fading to nothing.
	FillGlow(x, y, r, blur float64, c color.NRGBA)
}

// WithAlpha returns c with its alpha replaced by opacity (0..1, clamped).
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(opacity) * 255))
	return c
}

// Opacity returns the alpha channel of c as 0..1.
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

func clamp01(v float64) float64 {
	switch {
	case v < 0, math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

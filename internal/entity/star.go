package entity

import (
	"image/color"
	"math/rand/v2"

	"starfield/internal/render"
)

// Twinkle band. Opacity ping-pongs between these edges.
const (
	StarMinOpacity = 0.1
	StarMaxOpacity = 0.4
	StarMaxRadius  = 1.5
)

// StarColor is the default star hue; only alpha changes per frame.
var StarColor = color.NRGBA{0x4a, 0x90, 0xe2, 0xff}

type Star struct {
	X, Y    float64
	Radius  float64
	Opacity float64
	Rate    float64 // signed, flips at the band edges
	Color   color.NRGBA
}

func NewStar(rng *rand.Rand, c *Canvas) *Star {
	return &Star{
		X:       rng.Float64() * c.Width,
		Y:       rng.Float64() * c.Height,
		Radius:  rng.Float64() * StarMaxRadius,
		Opacity: rng.Float64()*(StarMaxOpacity-StarMinOpacity) + StarMinOpacity,
		Rate:    rng.Float64()*0.02 + 0.005,
		Color:   StarColor,
	}
}

// Update advances the twinkle. The boundary frame may overshoot the band;
// the reversed rate brings it back on the next call.
func (s *Star) Update() {
	s.Opacity += s.Rate
	if s.Opacity > StarMaxOpacity || s.Opacity < StarMinOpacity {
		s.Rate = -s.Rate
	}
}

func (s *Star) Draw(dst render.Surface) {
	dst.FillCircle(s.X, s.Y, s.Radius, render.WithAlpha(s.Color, s.Opacity))
}

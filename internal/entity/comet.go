package entity

import (
	"image/color"
	"math/rand/v2"

	"starfield/internal/render"
)

const (
	// ExitMargin lets a comet travel fully off-screen before it respawns,
	// so the trail fades out instead of vanishing.
	ExitMargin = 50.0
	// SpawnOffset is how far outside the top or left edge comets appear.
	SpawnOffset = 50.0

	CometMinSpeed  = 0.5
	CometMaxSpeed  = 2.0
	CometMinRadius = 1.0
	CometMaxRadius = 3.0
	CometMinAlpha  = 0.3
	CometMaxAlpha  = 0.8
	CometMinTrail  = 20
	CometMaxTrail  = 49

	GlowBlur = 10.0
)

// DefaultPalette is the light-theme comet palette.
var DefaultPalette = []color.NRGBA{
	{0x4a, 0x90, 0xe2, 0xff}, // primary blue
	{0x7f, 0xb3, 0xff, 0xff}, // light blue
	{0x2c, 0x5f, 0x9f, 0xff}, // dark blue
	{0x8a, 0xb4, 0xf8, 0xff}, // pastel blue
}

// Comet is a pooled shooting star. It is never destroyed: leaving the
// canvas re-randomizes it in place.
type Comet struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   color.NRGBA
	Trail   *Trail

	canvas  *Canvas
	rng     *rand.Rand
	palette []color.NRGBA
	resets  int
}

func NewComet(rng *rand.Rand, c *Canvas, palette []color.NRGBA) *Comet {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	cm := &Comet{
		Trail:   NewTrail(CometMaxTrail),
		canvas:  c,
		rng:     rng,
		palette: palette,
	}
	cm.Reset()
	cm.resets = 0
	return cm
}

// Reset respawns the comet just outside the top or left edge with fresh
// motion and look, and clears its trail.
func (c *Comet) Reset() {
	if c.rng.Float64() < 0.5 {
		c.X = c.rng.Float64() * c.canvas.Width
		c.Y = -SpawnOffset
	} else {
		c.X = -SpawnOffset
		c.Y = c.rng.Float64() * c.canvas.Height
	}

	c.VX = between(c.rng, CometMinSpeed, CometMaxSpeed)
	c.VY = between(c.rng, CometMinSpeed, CometMaxSpeed)
	c.Radius = between(c.rng, CometMinRadius, CometMaxRadius)
	c.Opacity = between(c.rng, CometMinAlpha, CometMaxAlpha)
	c.Color = c.palette[c.rng.IntN(len(c.palette))]

	c.Trail.Reset(CometMinTrail + c.rng.IntN(CometMaxTrail-CometMinTrail+1))
	c.resets++
}

// Update records the pre-move position, moves, and respawns once the
// comet is past the right or bottom edge by more than ExitMargin.
func (c *Comet) Update() {
	c.Trail.Push(Point{c.X, c.Y})

	c.X += c.VX
	c.Y += c.VY

	if c.X > c.canvas.Width+ExitMargin || c.Y > c.canvas.Height+ExitMargin {
		c.Reset()
	}
}

// Draw paints the tapered trail, then the glow and the head on top.
func (c *Comet) Draw(dst render.Surface) {
	n := c.Trail.Len()
	for i := 0; i < n; i++ {
		p := c.Trail.At(i)
		w := float64(i) / float64(n)
		dst.FillCircle(p.X, p.Y, w*c.Radius, render.WithAlpha(c.Color, w*c.Opacity))
	}

	dst.FillGlow(c.X, c.Y, c.Radius, GlowBlur, render.WithAlpha(c.Color, c.Opacity*0.5))
	dst.FillCircle(c.X, c.Y, c.Radius, render.WithAlpha(c.Color, c.Opacity))
}

// Resets reports how many times the comet has respawned since creation.
func (c *Comet) Resets() int { return c.resets }

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

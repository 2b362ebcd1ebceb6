// Package canvas paints render.Surface calls onto an ebiten image.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfield/internal/assets"
)

const glowSpriteSize = 64

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	glowImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface wraps the screen image for one Draw call.
type Surface struct {
	dst *ebiten.Image
}

func New(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// FillGradient draws a full-screen quad with per-vertex colors.
func (s *Surface) FillGradient(top, bottom color.NRGBA) {
	b := s.dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	vs := []ebiten.Vertex{
		vertex(0, 0, top),
		vertex(w, 0, top),
		vertex(0, h, bottom),
		vertex(w, h, bottom),
	}
	is := []uint16{0, 1, 2, 1, 2, 3}
	s.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

// FillGlow stretches the halo sprite over radius r+blur and tints it.
func (s *Surface) FillGlow(x, y, r, blur float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	if glowImage == nil {
		glowImage = ebiten.NewImageFromImage(assets.GlowSprite(glowSpriteSize))
	}

	scale := (r + blur) / (glowSpriteSize / 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glowSpriteSize/2, -glowSpriteSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(glowImage, op)
}

func vertex(x, y float32, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

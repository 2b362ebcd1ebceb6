// Package scene drives the space background: it owns the canvas size and
// the star and comet populations, and advances and paints them once per
// frame.
package scene

import (
	"image/color"
	"math/rand/v2"

	"starfield/internal/entity"
	"starfield/internal/render"
)

const (
	DefaultStarCount  = 100
	DefaultCometCount = 8
)

// Background gradient tones.
var (
	DefaultTop    = color.NRGBA{0xf8, 0xfb, 0xff, 0xff}
	DefaultBottom = color.NRGBA{0xe8, 0xf4, 0xff, 0xff}
)

// Options fixes the look and population sizes for a session.
type Options struct {
	StarCount  int
	CometCount int
	StarColor  color.NRGBA
	Palette    []color.NRGBA
	Top        color.NRGBA
	Bottom     color.NRGBA
}

// DefaultOptions matches the light theme of the site.
func DefaultOptions() Options {
	return Options{
		StarCount:  DefaultStarCount,
		CometCount: DefaultCometCount,
		StarColor:  entity.StarColor,
		Palette:    entity.DefaultPalette,
		Top:        DefaultTop,
		Bottom:     DefaultBottom,
	}
}

type Scene struct {
	opts   Options
	rng    *rand.Rand
	canvas *entity.Canvas
	stars  []*entity.Star
	comets []*entity.Comet
	frames uint64
}

func New(opts Options, rng *rand.Rand) *Scene {
	return &Scene{
		opts:   opts,
		rng:    rng,
		canvas: &entity.Canvas{},
	}
}

// Initialize creates the populations using the current canvas size.
// Populations are fixed for the session, so later calls do nothing.
func (s *Scene) Initialize() {
	if s.stars != nil || s.comets != nil {
		return
	}

	s.stars = make([]*entity.Star, s.opts.StarCount)
	for i := range s.stars {
		st := entity.NewStar(s.rng, s.canvas)
		st.Color = s.opts.StarColor
		s.stars[i] = st
	}

	s.comets = make([]*entity.Comet, s.opts.CometCount)
	for i := range s.comets {
		s.comets[i] = entity.NewComet(s.rng, s.canvas, s.opts.Palette)
	}
}

// Resize sets the drawable area. Entities keep their in-flight positions.
func (s *Scene) Resize(w, h int) {
	s.canvas.Width = float64(w)
	s.canvas.Height = float64(h)
}

func (s *Scene) Size() (w, h int) {
	return int(s.canvas.Width), int(s.canvas.Height)
}

func (s *Scene) Stars() []*entity.Star   { return s.stars }
func (s *Scene) Comets() []*entity.Comet { return s.comets }

// Frames returns the number of completed frames.
func (s *Scene) Frames() uint64 { return s.frames }

// Frame runs one full tick: background, then every star, then every comet,
// each updated right before it is drawn.
func (s *Scene) Frame(dst render.Surface) {
	dst.FillGradient(s.opts.Top, s.opts.Bottom)

	for _, st := range s.stars {
		st.Update()
		st.Draw(dst)
	}

	for _, cm := range s.comets {
		cm.Update()
		cm.Draw(dst)
	}

	s.frames++
}

// Advance is the update half of Frame, for hosts that tick simulation and
// drawing separately.
func (s *Scene) Advance() {
	for _, st := range s.stars {
		st.Update()
	}
	for _, cm := range s.comets {
		cm.Update()
	}
	s.frames++
}

// Render is the drawing half of Frame. It does not mutate entities.
func (s *Scene) Render(dst render.Surface) {
	dst.FillGradient(s.opts.Top, s.opts.Bottom)
	for _, st := range s.stars {
		st.Draw(dst)
	}
	for _, cm := range s.comets {
		cm.Draw(dst)
	}
}

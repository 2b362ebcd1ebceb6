package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfield/internal/overlay"
)

// --- Colors ---
var (
	ColButton     = color.RGBA{0x4a, 0x90, 0xe2, 0xe6}
	ColButtonHot  = color.RGBA{0x2c, 0x5f, 0x9f, 0xf0}
	ColRingTrack  = color.RGBA{0xff, 0xff, 0xff, 0x40}
	ColRing       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColRingActive = color.RGBA{0x8a, 0xb4, 0xf8, 0xff}
	ColRipple     = color.RGBA{0x7f, 0xb3, 0xff, 0x80}
	ColArrow      = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

const ringSegments = 64

func (g *Game) drawScrollTop(screen *ebiten.Image) {
	if !g.scroll.Visible() {
		return
	}
	cx, cy := g.scroll.Center()
	x, y := float32(cx), float32(cy)

	// 1. Button
	r := float32(overlay.ButtonRadius)
	fill := ColButton
	if g.scroll.Hovered() {
		r *= 1.1
		fill = ColButtonHot
	} else if g.scroll.Pulsing() {
		r *= overlay.PulseScale
	}
	vector.DrawFilledCircle(screen, x, y, r, fill, true)

	// 2. Ripple
	if g.scroll.Rippling() {
		vector.StrokeCircle(screen, x, y, r+6, 2, ColRipple, true)
	}

	// 3. Progress ring, clockwise from twelve o'clock
	vector.StrokeCircle(screen, x, y, overlay.RingRadius, 3, ColRingTrack, true)
	ring := ColRing
	if g.scroll.Scrolling() {
		ring = ColRingActive
	}
	progress := 1 - g.scroll.DashOffset()/overlay.Circumference
	segs := int(math.Ceil(progress * ringSegments))
	for i := 0; i < segs; i++ {
		a0 := -math.Pi/2 + 2*math.Pi*float64(i)/ringSegments
		a1 := -math.Pi/2 + 2*math.Pi*math.Min(float64(i+1)/ringSegments, progress)
		vector.StrokeLine(screen,
			x+float32(overlay.RingRadius*math.Cos(a0)), y+float32(overlay.RingRadius*math.Sin(a0)),
			x+float32(overlay.RingRadius*math.Cos(a1)), y+float32(overlay.RingRadius*math.Sin(a1)),
			3, ring, true)
	}

	// 4. Arrow
	vector.StrokeLine(screen, x, y+8, x, y-8, 2, ColArrow, true)
	vector.StrokeLine(screen, x-6, y-2, x, y-8, 2, ColArrow, true)
	vector.StrokeLine(screen, x+6, y-2, x, y-8, 2, ColArrow, true)
}

func (g *Game) drawCounters(screen *ebiten.Image) {
	if len(g.counters) == 0 || !g.counters[0].Started() {
		return
	}
	labels := make([]string, len(g.counters))
	for i, c := range g.counters {
		labels[i] = c.String()
	}
	_, h := g.scene.Size()
	ebitenutil.DebugPrintAt(screen, strings.Join(labels, "   "), 10, h-20)
}

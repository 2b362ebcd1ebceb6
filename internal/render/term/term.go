// Package term paints render.Surface calls into a tcell screen. Each
// terminal cell stands for a CellWidth x CellHeight block of canvas pixels;
// circles become glyphs and glows tint the cell background.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
	ink   float64 // strongest circle painted into the cell this frame
}

// Surface buffers one frame of cells and flushes it on Present.
type Surface struct {
	screen     tcell.Screen
	cols, rows int
	cells      []cell
}

func New(screen tcell.Screen) *Surface {
	s := &Surface{screen: screen}
	s.syncSize()
	return s
}

// PixelSize returns the canvas size in pixels that matches the screen.
func (s *Surface) PixelSize() (w, h int) {
	cols, rows := s.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

func (s *Surface) syncSize() {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows && s.cells != nil {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
}

// FillGradient starts a new frame: it picks up screen resizes and resets
// every cell to its gradient row color.
func (s *Surface) FillGradient(top, bottom color.NRGBA) {
	s.syncSize()
	t, b := toColorful(top), toColorful(bottom)
	for row := 0; row < s.rows; row++ {
		f := 0.0
		if s.rows > 1 {
			f = float64(row) / float64(s.rows-1)
		}
		bg := t.BlendRgb(b, f)
		for col := 0; col < s.cols; col++ {
			s.cells[row*s.cols+col] = cell{bg: bg, glyph: ' '}
		}
	}
}

func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	a := float64(c.A) / 0xff
	if r <= 0 || a == 0 {
		return
	}
	cl := s.at(x, y)
	if cl == nil {
		return
	}
	ink := a * r
	if ink < cl.ink {
		return
	}
	cl.ink = ink
	cl.fg = cl.bg.BlendRgb(toColorful(c), a)
	cl.glyph = glyphFor(r)
}

// FillGlow tints the background of every cell within r+blur of the
// center, fading linearly with distance.
func (s *Surface) FillGlow(x, y, r, blur float64, c color.NRGBA) {
	a := float64(c.A) / 0xff
	reach := r + blur
	if a == 0 || reach <= 0 {
		return
	}
	tint := toColorful(c)

	c0, r0 := int(math.Floor((x-reach)/CellWidth)), int(math.Floor((y-reach)/CellHeight))
	c1, r1 := int(math.Floor((x+reach)/CellWidth)), int(math.Floor((y+reach)/CellHeight))
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			cx := (float64(col) + 0.5) * CellWidth
			cy := (float64(row) + 0.5) * CellHeight
			d := math.Hypot(cx-x, cy-y)
			if d >= reach {
				continue
			}
			cl := &s.cells[row*s.cols+col]
			cl.bg = cl.bg.BlendRgb(tint, a*(1-d/reach))
		}
	}
}

// Present flushes the buffered frame to the screen.
func (s *Surface) Present() error {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			cl := s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Background(toTcell(cl.bg)).Foreground(toTcell(cl.fg))
			s.screen.SetContent(col, row, cl.glyph, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *Surface) at(x, y float64) *cell {
	if x < 0 || y < 0 {
		return nil
	}
	col, row := int(x/CellWidth), int(y/CellHeight)
	if col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func glyphFor(r float64) rune {
	switch {
	case r < 1:
		return '·'
	case r < 2:
		return '•'
	default:
		return '●'
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 0xff, G: float64(c.G) / 0xff, B: float64(c.B) / 0xff}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

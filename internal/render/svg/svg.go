// Package svg keeps the most recent frame as a display list and encodes
// it as an SVG document with svgo.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"slices"

	svgo "github.com/ajstarks/svgo"

	"starfield/internal/render"
)

// Precision is the sub-pixel scale: svgo takes integer coordinates, so
// shapes are drawn at Precision times size inside a scaled group.
const Precision = 100

// Surface records the current frame. FillGradient starts a new frame.
type Surface struct {
	render.Recorder
}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) FillGradient(top, bottom color.NRGBA) {
	s.Reset()
	s.Recorder.FillGradient(top, bottom)
}

// Encode writes the recorded frame as a width x height SVG document.
func (s *Surface) Encode(w io.Writer, width, height int) error {
	cw := &countingWriter{w: w}
	canvas := svgo.New(cw)
	canvas.Start(width, height)
	canvas.Title("Starfield")

	canvas.Def()
	for _, op := range s.Ops {
		if op.Kind == render.OpGradient {
			canvas.LinearGradient("bg", 0, 0, 0, 100, []svgo.Offcolor{
				{Offset: 0, Color: hex(op.C), Opacity: render.Opacity(op.C)},
				{Offset: 100, Color: hex(op.C2), Opacity: render.Opacity(op.C2)},
			})
			break
		}
	}
	for _, blur := range s.blurs() {
		canvas.Filter(filterID(blur))
		canvas.FeGaussianBlur(svgo.Filterspec{In: "SourceGraphic"}, blur/2*Precision, blur/2*Precision)
		canvas.Fend()
	}
	canvas.DefEnd()

	canvas.Gtransform(fmt.Sprintf("scale(%g)", 1.0/Precision))
	for _, op := range s.Ops {
		switch op.Kind {
		case render.OpGradient:
			canvas.Rect(0, 0, width*Precision, height*Precision, "fill:url(#bg)")
		case render.OpCircle:
			if op.R <= 0 || op.C.A == 0 {
				continue
			}
			canvas.Circle(scaled(op.X), scaled(op.Y), scaled(op.R), fill(op.C))
		case render.OpGlow:
			if op.C.A == 0 {
				continue
			}
			canvas.Circle(scaled(op.X), scaled(op.Y), scaled(op.R+op.Blur/2),
				fill(op.C)+fmt.Sprintf(";filter:url(#%s)", filterID(op.Blur)))
		}
	}
	canvas.Gend()
	canvas.End()

	if cw.err != nil {
		return fmt.Errorf("write svg: %w", cw.err)
	}
	return nil
}

// blurs lists the distinct glow blur radii in the frame.
func (s *Surface) blurs() []float64 {
	var out []float64
	for _, op := range s.Ops {
		if op.Kind == render.OpGlow && !slices.Contains(out, op.Blur) {
			out = append(out, op.Blur)
		}
	}
	return out
}

func filterID(blur float64) string {
	return fmt.Sprintf("glow%d", int(blur*Precision))
}

func scaled(v float64) int {
	return int(v * Precision)
}

func fill(c color.NRGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", hex(c), render.Opacity(c))
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// countingWriter remembers the first write error; svgo drops them.
type countingWriter struct {
	w   io.Writer
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return len(p), nil
	}
	n, err := c.w.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}

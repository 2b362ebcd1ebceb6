package render

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpGradient OpKind = iota
	OpCircle
	OpGlow
)

func (k OpKind) String() string {
	switch k {
	case OpGradient:
		return "gradient"
	case OpCircle:
		return "circle"
	case OpGlow:
		return "glow"
	}
	return "unknown"
}

// Op is one recorded drawing call. Gradient ops use C for the top color
// and C2 for the bottom color.
type Op struct {
	Kind    OpKind
	X, Y    float64
	R, Blur float64
	C, C2   color.NRGBA
}

// Recorder is a Surface that keeps a display list instead of pixels.
// Used directly by tests and embedded by the SVG surface.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillGradient(top, bottom color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, C: top, C2: bottom})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, C: c})
}

func (r *Recorder) FillGlow(x, y, radius, blur float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGlow, X: x, Y: y, R: radius, Blur: blur, C: c})
}

// Reset drops the display list, keeping the backing array.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

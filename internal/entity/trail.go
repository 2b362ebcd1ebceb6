package entity

// Trail is a bounded FIFO of past positions backed by a ring buffer.
// Index 0 is the oldest retained point.
type Trail struct {
	buf   []Point
	head  int
	n     int
	bound int
}

func NewTrail(bound int) *Trail {
	t := &Trail{}
	t.Reset(bound)
	return t
}

// Reset empties the trail and sets a new bound. The backing array is
// reused whenever it is large enough.
func (t *Trail) Reset(bound int) {
	if bound < 0 {
		bound = 0
	}
	if cap(t.buf) < bound {
		t.buf = make([]Point, bound)
	}
	t.buf = t.buf[:bound]
	t.head, t.n, t.bound = 0, 0, bound
}

// Push appends p at the tail. Once the trail is full the oldest point is
// evicted; the return value reports whether that happened.
func (t *Trail) Push(p Point) bool {
	if t.bound == 0 {
		return false
	}
	if t.n < t.bound {
		t.buf[(t.head+t.n)%t.bound] = p
		t.n++
		return false
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % t.bound
	return true
}

// At returns the i-th retained point, oldest first.
func (t *Trail) At(i int) Point {
	return t.buf[(t.head+i)%t.bound]
}

func (t *Trail) Len() int   { return t.n }
func (t *Trail) Bound() int { return t.bound }

// Points copies the retained points, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

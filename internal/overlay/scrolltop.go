// Package overlay holds the page chrome drawn over the space background:
// the scroll-to-top control with its progress ring and the stat counters.
// Timers are counted in ticks at 60 TPS.
package overlay

import "math"

type ButtonState int

const (
	ButtonHidden  ButtonState = iota // At or above VisibleAfter
	ButtonVisible                    // Scrolled past VisibleAfter
)

const (
	RingRadius    = 27.0
	Circumference = 2 * math.Pi * RingRadius
	ButtonRadius  = 25.0
	ButtonMargin  = 50.0 // button center distance from the bottom-right corner

	VisibleAfter   = 300.0
	ScrollingTicks = 9  // 150ms
	RippleTicks    = 36 // 600ms

	// Idle pulse: the visible, unhovered button grows to PulseScale for
	// PulseTicks once every PulseEvery ticks.
	PulseEvery = 180 // 3s
	PulseTicks = 18  // 300ms
	PulseScale = 1.05

	// Smooth scroll covers this fraction of the remaining distance per
	// tick, never less than MinReturnStep pixels.
	ReturnFactor  = 0.15
	MinReturnStep = 4.0
)

// ScrollTop tracks the scroll position of a virtual page and the state of
// the button that returns to its top.
type ScrollTop struct {
	State ButtonState

	offset     float64
	pageHeight float64
	viewport   float64
	width      float64

	returning bool

	scrollingTicks int
	rippleTicks    int
	pulseClock     int
	pulseTicks     int
	hovered        bool
}

func NewScrollTop(pageHeight float64) *ScrollTop {
	return &ScrollTop{
		State:      ButtonHidden,
		pageHeight: pageHeight,
	}
}

// SetViewport records the visible window size; the offset is clamped to
// the new scroll range.
func (s *ScrollTop) SetViewport(w, h float64) {
	s.width, s.viewport = w, h
	s.offset = math.Min(s.offset, s.maxOffset())
	s.syncState()
}

// ScrollBy moves the page by dy pixels (positive is down). A manual
// scroll interrupts a smooth return.
func (s *ScrollTop) ScrollBy(dy float64) {
	if dy == 0 {
		return
	}
	s.offset = math.Max(0, math.Min(s.offset+dy, s.maxOffset()))
	s.returning = false
	s.scrollingTicks = ScrollingTicks
	s.syncState()
}

// Click starts the ripple and the return to the top.
func (s *ScrollTop) Click() {
	s.rippleTicks = RippleTicks
	s.ToTop()
}

// ToTop starts a smooth scroll to offset zero.
func (s *ScrollTop) ToTop() {
	if s.offset > 0 {
		s.returning = true
	}
}

// Hover reports whether the pointer just entered the button.
func (s *ScrollTop) Hover(on bool) bool {
	entered := on && !s.hovered
	s.hovered = on
	return entered
}

func (s *ScrollTop) Update() {
	if s.scrollingTicks > 0 {
		s.scrollingTicks--
	}
	if s.rippleTicks > 0 {
		s.rippleTicks--
	}

	if s.pulseTicks > 0 {
		s.pulseTicks--
	}

	if s.returning {
		step := math.Max(s.offset*ReturnFactor, MinReturnStep)
		s.offset = math.Max(0, s.offset-step)
		s.scrollingTicks = ScrollingTicks
		s.returning = s.offset > 0
	}
	s.syncState()

	s.pulseClock++
	if s.pulseClock >= PulseEvery {
		s.pulseClock = 0
		if s.State == ButtonVisible && !s.hovered {
			s.pulseTicks = PulseTicks
		}
	}
}

// syncState derives visibility from the offset alone, so a smooth return
// hides the button as soon as it passes VisibleAfter.
func (s *ScrollTop) syncState() {
	if s.offset > VisibleAfter {
		s.State = ButtonVisible
	} else {
		s.State = ButtonHidden
	}
}

func (s *ScrollTop) maxOffset() float64 {
	return math.Max(0, s.pageHeight-s.viewport)
}

func (s *ScrollTop) Offset() float64 { return s.offset }

// Progress is the scrolled fraction of the page, 0..1. A page that fits
// the viewport reports 0.
func (s *ScrollTop) Progress() float64 {
	m := s.maxOffset()
	if m == 0 {
		return 0
	}
	return s.offset / m
}

// DashOffset is the stroke dash offset of the progress ring: the full
// circumference at the top of the page, zero at the bottom.
func (s *ScrollTop) DashOffset() float64 {
	return Circumference - s.Progress()*Circumference
}

func (s *ScrollTop) Visible() bool   { return s.State == ButtonVisible }
func (s *ScrollTop) Returning() bool { return s.returning }
func (s *ScrollTop) Scrolling() bool { return s.scrollingTicks > 0 }
func (s *ScrollTop) Rippling() bool  { return s.rippleTicks > 0 }
func (s *ScrollTop) Hovered() bool   { return s.hovered }

// Pulsing reports whether the idle pulse is showing. Hovering cancels it.
func (s *ScrollTop) Pulsing() bool { return s.pulseTicks > 0 && !s.hovered }

// Center returns the button center in viewport coordinates.
func (s *ScrollTop) Center() (x, y float64) {
	return s.width - ButtonMargin, s.viewport - ButtonMargin
}

// Contains reports whether (x, y) is over the button.
func (s *ScrollTop) Contains(x, y float64) bool {
	cx, cy := s.Center()
	return math.Hypot(x-cx, y-cy) <= RingRadius
}

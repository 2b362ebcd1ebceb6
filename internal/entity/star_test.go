package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"starfield/internal/render"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestStarOpacityStaysInBand(t *testing.T) {
	rng := testRand()
	c := &Canvas{Width: 800, Height: 600}

	for n := 0; n < 50; n++ {
		s := NewStar(rng, c)
		slack := math.Abs(s.Rate)
		for i := 0; i < 5000; i++ {
			s.Update()
			if s.Opacity < StarMinOpacity-slack || s.Opacity > StarMaxOpacity+slack {
				t.Fatalf("star %d update %d: opacity %f outside band (rate %f)", n, i, s.Opacity, s.Rate)
			}
		}
	}
}

func TestStarRateFlipsAfterUpperEdge(t *testing.T) {
	s := &Star{Opacity: 0.39, Rate: 0.01}

	s.Update()
	if math.Abs(s.Opacity-0.40) > 1e-9 {
		t.Fatalf("opacity after first update: got=%f want=0.40", s.Opacity)
	}
	if s.Rate != 0.01 {
		t.Fatalf("rate flipped too early: %f", s.Rate)
	}

	s.Update()
	if s.Rate != -0.01 {
		t.Fatalf("expected rate to flip to -0.01, got %f", s.Rate)
	}
}

func TestStarRateFlipsBelowLowerEdge(t *testing.T) {
	s := &Star{Opacity: 0.105, Rate: -0.01}
	s.Update()
	if s.Rate != 0.01 {
		t.Fatalf("expected rate to flip positive below the band, got %f", s.Rate)
	}
	s.Update()
	if s.Opacity < StarMinOpacity-0.01 {
		t.Fatalf("opacity kept falling: %f", s.Opacity)
	}
}

func TestNewStarWithinCanvas(t *testing.T) {
	rng := testRand()
	c := &Canvas{Width: 320, Height: 240}
	for i := 0; i < 200; i++ {
		s := NewStar(rng, c)
		if s.X < 0 || s.X >= c.Width || s.Y < 0 || s.Y >= c.Height {
			t.Fatalf("star spawned outside canvas: (%f, %f)", s.X, s.Y)
		}
		if s.Radius < 0 || s.Radius >= StarMaxRadius {
			t.Fatalf("radius out of range: %f", s.Radius)
		}
		if s.Rate <= 0 {
			t.Fatalf("initial rate should be positive, got %f", s.Rate)
		}
	}
}

func TestStarDrawUsesCurrentOpacity(t *testing.T) {
	s := &Star{X: 10, Y: 20, Radius: 1.2, Opacity: 0.4, Color: StarColor}
	var rec render.Recorder
	s.Draw(&rec)

	if len(rec.Ops) != 1 || rec.Ops[0].Kind != render.OpCircle {
		t.Fatalf("expected one circle, got %+v", rec.Ops)
	}
	op := rec.Ops[0]
	if op.X != 10 || op.Y != 20 || op.R != 1.2 {
		t.Fatalf("circle geometry: %+v", op)
	}
	if op.C.A != 102 || op.C.R != StarColor.R {
		t.Fatalf("circle color: %+v", op.C)
	}
}

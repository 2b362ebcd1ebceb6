package entity

import (
	"image/color"
	"math"
	"math/rand/v2"

	"starfield/internal/render"
)

const (
	BurstSparks       = 8
	BurstTicks        = 36 // 600ms at 60 TPS
	BurstMinDistance  = 40.0
	BurstMaxDistance  = 60.0
	BurstSparkRadius  = 2.0
	BurstGlowBlur     = 6.0
	BurstGlowStrength = 0.8
)

var SparkColor = color.NRGBA{0xff, 0xff, 0xff, 0xff}

type spark struct {
	origin Point
	dx, dy float64
	age    int
	live   bool
}

// Burst is a fixed pool of sparks thrown radially from a point. Sparks
// slide out with ease-out while shrinking and fading to nothing.
type Burst struct {
	sparks []spark
	rng    *rand.Rand
	Color  color.NRGBA
}

// NewBurst allocates room for the given number of simultaneous bursts.
func NewBurst(rng *rand.Rand, bursts int) *Burst {
	if bursts < 1 {
		bursts = 1
	}
	return &Burst{
		sparks: make([]spark, bursts*BurstSparks),
		rng:    rng,
		Color:  SparkColor,
	}
}

// Emit throws BurstSparks sparks from (x, y) and returns how many found a
// free slot.
func (b *Burst) Emit(x, y float64) int {
	placed := 0
	for i := range b.sparks {
		if placed == BurstSparks {
			break
		}
		sp := &b.sparks[i]
		if sp.live {
			continue
		}
		angle := float64(placed) / BurstSparks * 2 * math.Pi
		dist := between(b.rng, BurstMinDistance, BurstMaxDistance)
		*sp = spark{
			origin: Point{x, y},
			dx:     math.Cos(angle) * dist,
			dy:     math.Sin(angle) * dist,
			live:   true,
		}
		placed++
	}
	return placed
}

func (b *Burst) Update() {
	for i := range b.sparks {
		sp := &b.sparks[i]
		if !sp.live {
			continue
		}
		sp.age++
		if sp.age >= BurstTicks {
			sp.live = false
		}
	}
}

func (b *Burst) Draw(dst render.Surface) {
	for i := range b.sparks {
		sp := &b.sparks[i]
		if !sp.live {
			continue
		}
		t := float64(sp.age) / BurstTicks
		e := easeOut(t)
		x := sp.origin.X + sp.dx*e
		y := sp.origin.Y + sp.dy*e
		fade := 1 - t
		r := BurstSparkRadius * fade
		dst.FillGlow(x, y, r, BurstGlowBlur, render.WithAlpha(b.Color, BurstGlowStrength*fade))
		dst.FillCircle(x, y, r, render.WithAlpha(b.Color, fade))
	}
}

// Active returns the number of live sparks.
func (b *Burst) Active() int {
	n := 0
	for i := range b.sparks {
		if b.sparks[i].live {
			n++
		}
	}
	return n
}

// easeOut approximates the CSS ease-out timing curve.
func easeOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

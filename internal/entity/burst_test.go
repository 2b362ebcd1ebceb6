package entity

import (
	"math"
	"testing"

	"starfield/internal/render"
)

func TestBurstLifecycle(t *testing.T) {
	b := NewBurst(testRand(), 2)

	if got := b.Emit(100, 100); got != BurstSparks {
		t.Fatalf("emit: got=%d want=%d", got, BurstSparks)
	}
	if b.Active() != BurstSparks {
		t.Fatalf("active after emit: %d", b.Active())
	}

	for i := 0; i < BurstTicks-1; i++ {
		b.Update()
	}
	if b.Active() != BurstSparks {
		t.Fatalf("sparks expired early: %d", b.Active())
	}
	b.Update()
	if b.Active() != 0 {
		t.Fatalf("sparks still live after %d ticks: %d", BurstTicks, b.Active())
	}
}

func TestBurstPoolIsBounded(t *testing.T) {
	b := NewBurst(testRand(), 1)
	b.Emit(0, 0)
	if got := b.Emit(10, 10); got != 0 {
		t.Fatalf("expected full pool to reject sparks, placed %d", got)
	}

	for i := 0; i < BurstTicks; i++ {
		b.Update()
	}
	if got := b.Emit(10, 10); got != BurstSparks {
		t.Fatalf("expected expired sparks to be reused, placed %d", got)
	}
}

func TestBurstSparksTravelOutward(t *testing.T) {
	b := NewBurst(testRand(), 1)
	b.Emit(50, 50)

	var rec render.Recorder
	b.Draw(&rec)
	for _, op := range rec.Ops {
		if op.X != 50 || op.Y != 50 {
			t.Fatalf("sparks should start at the origin: %+v", op)
		}
	}

	for i := 0; i < BurstTicks/2; i++ {
		b.Update()
	}
	rec.Reset()
	b.Draw(&rec)

	if rec.Count(render.OpCircle) != BurstSparks {
		t.Fatalf("circles: %d", rec.Count(render.OpCircle))
	}
	for _, op := range rec.Ops {
		d := math.Hypot(op.X-50, op.Y-50)
		if d <= 0 || d > BurstMaxDistance {
			t.Fatalf("spark distance out of range: %f", d)
		}
		if op.Kind == render.OpCircle && (op.R >= BurstSparkRadius || op.C.A >= 255) {
			t.Fatalf("spark should shrink and fade: %+v", op)
		}
	}
}

package entity

import (
	"math"
	"testing"

	"starfield/internal/render"
)

func newTestComet(w, h float64) (*Comet, *Canvas) {
	c := &Canvas{Width: w, Height: h}
	return NewComet(testRand(), c, nil), c
}

func TestTrailEvictsOldestFirst(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		evicted := tr.Push(Point{X: float64(i)})
		if want := i > 3; evicted != want {
			t.Fatalf("push %d: evicted=%v want=%v", i, evicted, want)
		}
	}

	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("trail len: got=%d want=3", len(pts))
	}
	for i, want := range []float64{3, 4, 5} {
		if pts[i].X != want {
			t.Fatalf("trail[%d]: got=%f want=%f", i, pts[i].X, want)
		}
	}
}

func TestTrailResetReusesBuffer(t *testing.T) {
	tr := NewTrail(CometMaxTrail)
	for i := 0; i < 10; i++ {
		tr.Push(Point{X: float64(i)})
	}
	before := &tr.buf[0]
	tr.Reset(CometMinTrail)

	if tr.Len() != 0 || tr.Bound() != CometMinTrail {
		t.Fatalf("reset: len=%d bound=%d", tr.Len(), tr.Bound())
	}
	if &tr.buf[0] != before {
		t.Fatalf("expected reset to keep the backing array")
	}
}

func TestCometTrailNeverExceedsBound(t *testing.T) {
	rng := testRand()
	c := &Canvas{Width: 800, Height: 600}

	for n := 0; n < 8; n++ {
		cm := NewComet(rng, c, nil)
		for i := 0; i < 3000; i++ {
			cm.Update()
			b := cm.Trail.Bound()
			if b < CometMinTrail || b > CometMaxTrail {
				t.Fatalf("trail bound out of range: %d", b)
			}
			if cm.Trail.Len() > b {
				t.Fatalf("comet %d update %d: trail len %d > bound %d", n, i, cm.Trail.Len(), b)
			}
		}
	}
}

func TestCometTrailFillsToBound(t *testing.T) {
	cm, c := newTestComet(800, 600)
	c.Width, c.Height = 1e6, 1e6
	cm.X, cm.Y = 0, 0
	cm.VX, cm.VY = 1, 1

	for i := 0; i < 1000; i++ {
		cm.Update()
	}

	if cm.Resets() != 0 {
		t.Fatalf("comet reset unexpectedly: %d", cm.Resets())
	}
	want := min(1000, cm.Trail.Bound())
	if cm.Trail.Len() != want {
		t.Fatalf("trail len: got=%d want=%d", cm.Trail.Len(), want)
	}

	// Newest retained point is the position before the last move.
	last := cm.Trail.At(cm.Trail.Len() - 1)
	if last.X != 999 || last.Y != 999 {
		t.Fatalf("newest trail point: got=%+v want=(999,999)", last)
	}
	first := cm.Trail.At(0)
	if first.X != float64(1000-want) {
		t.Fatalf("oldest trail point: got=%+v want x=%d", first, 1000-want)
	}
}

func TestCometResetsPastRightEdge(t *testing.T) {
	cm, c := newTestComet(800, 600)
	cm.X, cm.Y = 790, 300
	cm.VX, cm.VY = 1, 1

	for i := 1; i <= 60; i++ {
		cm.Update()
	}
	if cm.Resets() != 0 {
		t.Fatalf("reset before passing the margin: x=%f", cm.X)
	}
	if cm.X != 850 {
		t.Fatalf("x after 60 updates: got=%f want=850", cm.X)
	}

	cm.Update()
	if cm.Resets() != 1 {
		t.Fatalf("expected reset on update 61, resets=%d", cm.Resets())
	}
	if cm.Trail.Len() != 0 {
		t.Fatalf("trail not cleared on reset: len=%d", cm.Trail.Len())
	}
	assertSpawnRegion(t, cm, c)
}

func TestCometResetsPastBottomEdge(t *testing.T) {
	cm, c := newTestComet(800, 600)
	cm.X, cm.Y = 0, 649
	cm.VX, cm.VY = 0.5, 2

	cm.Update()
	if cm.Resets() != 1 {
		t.Fatalf("expected reset once y > height+margin")
	}
	assertSpawnRegion(t, cm, c)
}

func TestCometSpawnsFromBothEdges(t *testing.T) {
	cm, c := newTestComet(800, 600)
	var top, left int
	for i := 0; i < 400; i++ {
		cm.Reset()
		assertSpawnRegion(t, cm, c)
		if cm.Y == -SpawnOffset {
			top++
		} else {
			left++
		}
		if cm.VX < CometMinSpeed || cm.VX >= CometMaxSpeed || cm.VY < CometMinSpeed || cm.VY >= CometMaxSpeed {
			t.Fatalf("velocity out of range: (%f, %f)", cm.VX, cm.VY)
		}
	}
	if top == 0 || left == 0 {
		t.Fatalf("expected spawns from both edges: top=%d left=%d", top, left)
	}
}

func TestCometSeesResizeOnNextUpdate(t *testing.T) {
	cm, c := newTestComet(800, 600)
	cm.X, cm.Y = 400, 100
	cm.VX, cm.VY = 1, 1

	c.Width = 300
	cm.Update()
	if cm.Resets() != 1 {
		t.Fatalf("expected shrink to trigger reset on next update")
	}
}

func TestCometDrawTapersTrail(t *testing.T) {
	cm, c := newTestComet(800, 600)
	c.Width, c.Height = 1e6, 1e6
	cm.X, cm.Y = 0, 0
	cm.VX, cm.VY = 1, 1
	cm.Radius, cm.Opacity = 2, 0.8
	for i := 0; i < 10; i++ {
		cm.Update()
	}

	var rec render.Recorder
	cm.Draw(&rec)

	n := cm.Trail.Len()
	if len(rec.Ops) != n+2 {
		t.Fatalf("ops: got=%d want=%d", len(rec.Ops), n+2)
	}
	if rec.Ops[0].R != 0 || rec.Ops[0].C.A != 0 {
		t.Fatalf("oldest trail point should be invisible: %+v", rec.Ops[0])
	}
	for i := 1; i < n; i++ {
		if rec.Ops[i].R <= rec.Ops[i-1].R {
			t.Fatalf("trail radius not increasing at %d", i)
		}
	}
	wantLast := float64(n-1) / float64(n) * cm.Radius
	if math.Abs(rec.Ops[n-1].R-wantLast) > 1e-9 {
		t.Fatalf("newest trail radius: got=%f want=%f", rec.Ops[n-1].R, wantLast)
	}

	glow, head := rec.Ops[n], rec.Ops[n+1]
	if glow.Kind != render.OpGlow || head.Kind != render.OpCircle {
		t.Fatalf("expected glow then head, got %s then %s", glow.Kind, head.Kind)
	}
	if glow.Blur != GlowBlur {
		t.Fatalf("glow blur: %f", glow.Blur)
	}
	if head.R != cm.Radius || head.X != cm.X || head.Y != cm.Y {
		t.Fatalf("head geometry: %+v", head)
	}
	if math.Abs(render.Opacity(glow.C)-render.Opacity(head.C)/2) > 0.01 {
		t.Fatalf("glow should be half the head opacity: glow=%d head=%d", glow.C.A, head.C.A)
	}
}

func assertSpawnRegion(t *testing.T, cm *Comet, c *Canvas) {
	t.Helper()
	topEdge := cm.Y == -SpawnOffset && cm.X >= 0 && cm.X < c.Width
	leftEdge := cm.X == -SpawnOffset && cm.Y >= 0 && cm.Y < c.Height
	if !topEdge && !leftEdge {
		t.Fatalf("comet outside spawn region: (%f, %f)", cm.X, cm.Y)
	}
}

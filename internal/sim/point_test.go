package sim

import (
	"math"
	"testing"
)

func testParams() *Params {
	p := DefaultParams()
	return &p
}

func TestSpringForceIsZeroAtRestLength(t *testing.T) {
	p := testParams()
	a := NewPoint(0, 0, false, p)
	b := NewPoint(p.Tolerance, 0, false, p)

	fx, fy := a.springForce(&b)
	if fx != 0 || fy != 0 {
		t.Fatalf("expected zero spring force at rest length, got (%v, %v)", fx, fy)
	}

	b = NewPoint(0, -p.Tolerance, false, p)
	fx, fy = a.springForce(&b)
	if fx != 0 || fy != 0 {
		t.Fatalf("expected zero vertical spring force at rest length, got (%v, %v)", fx, fy)
	}
}

func TestSpringForcePullsTowardStretchedNeighbor(t *testing.T) {
	p := testParams()
	a := NewPoint(0, 0, false, p)
	b := NewPoint(3, 0, false, p)

	fx, fy := a.springForce(&b)
	want := p.Stiffness * (3 - p.Tolerance)
	if math.Abs(fx-want) > 1e-9 || math.Abs(fy) > 1e-9 {
		t.Fatalf("expected pull (%v, 0), got (%v, %v)", want, fx, fy)
	}

	c := NewPoint(0.5, 0, false, p)
	fx, _ = a.springForce(&c)
	if fx >= 0 {
		t.Fatalf("expected compressed spring to push away, got fx=%v", fx)
	}
}

func TestComputeForcesAddsGravityOnlyAtRest(t *testing.T) {
	p := testParams()
	chain := []Point{
		NewPoint(0, 0, true, p),
		NewPoint(1, 0, false, p),
		NewPoint(2, 0, true, p),
	}
	chain[1].SetLeft(0)
	chain[1].SetRight(2)

	chain[1].ComputeForces(chain)
	if chain[1].FX != 0 {
		t.Fatalf("expected no horizontal force at rest, got %v", chain[1].FX)
	}
	want := p.Gravity * p.Mass * p.Tolerance
	if chain[1].FY != want {
		t.Fatalf("expected gravity term %v, got %v", want, chain[1].FY)
	}
}

func TestComputeForcesSkipsAnchors(t *testing.T) {
	p := testParams()
	chain := []Point{
		NewPoint(0, 0, true, p),
		NewPoint(5, 5, false, p),
	}
	chain[0].SetRight(1)

	chain[0].ComputeForces(chain)
	if chain[0].FX != 0 || chain[0].FY != 0 {
		t.Fatalf("expected anchor to accumulate nothing, got (%v, %v)", chain[0].FX, chain[0].FY)
	}
}

func TestIntegrateClampsSpeed(t *testing.T) {
	p := testParams()
	for _, f := range []float64{1e12, -1e12, 3e6, -7e7} {
		pt := NewPoint(0, 0, false, p)
		pt.FX = f
		pt.FY = -f
		pt.Integrate()
		if math.Abs(pt.VX) > p.MaxSpeed || math.Abs(pt.VY) > p.MaxSpeed {
			t.Fatalf("force %v: speed (%v, %v) exceeds cap %v", f, pt.VX, pt.VY, p.MaxSpeed)
		}
		if math.Abs(pt.VX) != p.MaxSpeed {
			t.Fatalf("force %v: expected speed clamped to cap, got %v", f, pt.VX)
		}
	}
}

func TestIntegrateResetsForceAccumulator(t *testing.T) {
	p := testParams()
	pt := NewPoint(10, 10, false, p)
	pt.FX, pt.FY = 123, -456
	pt.Integrate()
	if pt.FX != 0 || pt.FY != 0 {
		t.Fatalf("expected zero force after integrate, got (%v, %v)", pt.FX, pt.FY)
	}

	anchor := NewPoint(0, 0, true, p)
	anchor.FX = 1
	anchor.Integrate()
	if anchor.FX != 0 || anchor.FY != 0 {
		t.Fatalf("expected anchor force cleared, got (%v, %v)", anchor.FX, anchor.FY)
	}
}

func TestIntegrateAppliesDampingAndScale(t *testing.T) {
	p := testParams()
	pt := NewPoint(0, 0, false, p)
	pt.FX = p.Mass * p.FrameRate // one unit of velocity

	pt.Integrate()

	wantV := math.Pow(p.Damping, 1/p.FrameRate)
	if math.Abs(pt.VX-wantV) > 1e-12 {
		t.Fatalf("expected damped velocity %v, got %v", wantV, pt.VX)
	}
	wantX := wantV * p.Scale / p.FrameRate
	if math.Abs(pt.X-wantX) > 1e-12 {
		t.Fatalf("expected x %v, got %v", wantX, pt.X)
	}
}

func TestIntegrateLeavesAnchorInPlaceEvenWithVelocity(t *testing.T) {
	p := testParams()
	anchor := NewPoint(7, 8, true, p)
	anchor.VX, anchor.VY = 50, -50

	anchor.Integrate()
	if anchor.X != 7 || anchor.Y != 8 {
		t.Fatalf("expected anchor to stay at (7, 8), got (%v, %v)", anchor.X, anchor.Y)
	}
	if anchor.VX != 0 || anchor.VY != 0 {
		t.Fatalf("expected anchor velocity cleared, got (%v, %v)", anchor.VX, anchor.VY)
	}
}

func TestApplyDragMovesPointNearPreviousPointer(t *testing.T) {
	p := testParams()
	pt := NewPoint(50, 50, false, p)

	pt.ApplyDrag(54, 50, 4, 0)
	if pt.X != 54 || pt.Y != 50 {
		t.Fatalf("expected point at (54, 50), got (%v, %v)", pt.X, pt.Y)
	}
}

func TestApplyDragIgnoresDistantPointer(t *testing.T) {
	p := testParams()
	pt := NewPoint(50, 50, false, p)

	// previous pointer at (61, 50): 11 away
	pt.ApplyDrag(65, 50, 4, 0)
	if pt.X != 50 || pt.Y != 50 {
		t.Fatalf("expected point unchanged, got (%v, %v)", pt.X, pt.Y)
	}
}

func TestApplyDragAtExactTouchRadius(t *testing.T) {
	p := testParams()
	pt := NewPoint(50, 50, false, p)

	pt.ApplyDrag(50, 62, 0, 2) // previous pointer at (50, 60)
	if pt.Y != 52 {
		t.Fatalf("expected point within touch radius to move, got y=%v", pt.Y)
	}
}

func TestDistanceTo(t *testing.T) {
	pt := NewPoint(1, 2, false, testParams())
	if got := pt.DistanceTo(4, 6); got != 5 {
		t.Fatalf("expected distance 5, got %v", got)
	}
}

func TestNeighborAccessors(t *testing.T) {
	pt := NewPoint(0, 0, false, testParams())
	if _, ok := pt.Left(); ok {
		t.Fatal("expected no left neighbour on a new point")
	}
	pt.SetLeft(3)
	pt.SetRight(5)
	if i, ok := pt.Left(); !ok || i != 3 {
		t.Fatalf("expected left 3, got %d (%v)", i, ok)
	}
	if i, ok := pt.Right(); !ok || i != 5 {
		t.Fatalf("expected right 5, got %d (%v)", i, ok)
	}
}

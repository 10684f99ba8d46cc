package sim

import (
	"image/color"
	"math"
	"testing"
)

type recordingSurface struct {
	fills     int
	polylines [][]Vec
	circles   []Vec
	colors    []color.Color
}

func (s *recordingSurface) Fill(color.Color) { s.fills++ }

func (s *recordingSurface) Polyline(pts []Vec, _ color.Color) {
	s.polylines = append(s.polylines, pts)
}

func (s *recordingSurface) Circle(center Vec, _ float64, c color.Color) {
	s.circles = append(s.circles, center)
	s.colors = append(s.colors, c)
}

func TestNewDerivesPointCountAndAnchors(t *testing.T) {
	c := New(DefaultParams(), 10, 100, 290, 100)

	if c.Len() != 281 {
		t.Fatalf("expected 281 points, got %d", c.Len())
	}
	pts := c.Points()
	if !pts[0].Fixed() || !pts[280].Fixed() {
		t.Fatal("expected first and last points to be anchors")
	}
	for i := 1; i < 280; i++ {
		if pts[i].Fixed() {
			t.Fatalf("expected interior point %d to be movable", i)
		}
	}
	if pts[0].X != 10 || pts[280].X != 290 {
		t.Fatalf("expected chain to span 10..290, got %v..%v", pts[0].X, pts[280].X)
	}
	if c.Length() != 280 {
		t.Fatalf("expected length 280, got %v", c.Length())
	}
}

func TestNewCoincidentAnchors(t *testing.T) {
	c := New(DefaultParams(), 50, 50, 50, 50)

	if c.Len() != 1 {
		t.Fatalf("expected a single point, got %d", c.Len())
	}
	pt := c.Points()[0]
	if pt.X != 50 || pt.Y != 50 {
		t.Fatalf("expected the point on the anchor, got (%v, %v)", pt.X, pt.Y)
	}
	if !pt.Fixed() {
		t.Fatal("expected the single point to be an anchor")
	}

	for range 10 {
		c.Update()
	}
	if got := c.Points()[0].Pos(); got != (Vec{X: 50, Y: 50}) {
		t.Fatalf("expected anchor to stay at (50, 50), got %v", got)
	}
	if e := c.Energy(); e != 0 {
		t.Fatalf("expected zero energy, got %v", e)
	}
}

func TestNewRoundsPointCountUp(t *testing.T) {
	p := DefaultParams()
	p.Tolerance = 3
	c := New(p, 0, 0, 10, 0)
	if c.Len() != 5 {
		t.Fatalf("expected 1+ceil(10/3)=5 points, got %d", c.Len())
	}
}

func TestNewWiresNeighbors(t *testing.T) {
	c := New(DefaultParams(), 0, 0, 5, 0)
	pts := c.Points()

	if _, ok := pts[0].Left(); ok {
		t.Fatal("expected first point without left neighbour")
	}
	if _, ok := pts[len(pts)-1].Right(); ok {
		t.Fatal("expected last point without right neighbour")
	}
	for i := 1; i < len(pts)-1; i++ {
		l, lok := pts[i].Left()
		r, rok := pts[i].Right()
		if !lok || !rok || l != i-1 || r != i+1 {
			t.Fatalf("point %d wired to (%d,%v) (%d,%v)", i, l, lok, r, rok)
		}
	}
}

func TestUpdateKeepsAnchorsFixed(t *testing.T) {
	c := New(DefaultParams(), 10, 100, 290, 100)
	first, last := c.Points()[0].Pos(), c.Points()[c.Len()-1].Pos()

	for range 2000 {
		c.Update()
	}

	if got := c.Points()[0].Pos(); got != first {
		t.Fatalf("first anchor moved from %v to %v", first, got)
	}
	if got := c.Points()[c.Len()-1].Pos(); got != last {
		t.Fatalf("last anchor moved from %v to %v", last, got)
	}
}

func TestUpdateSagsUnderGravityWithinSpeedCap(t *testing.T) {
	c := New(DefaultParams(), 10, 100, 290, 100)
	mid := c.Len() / 2

	for range 400 {
		c.Update()
		for i, pt := range c.Points() {
			if math.Abs(pt.VX) > pt.p.MaxSpeed || math.Abs(pt.VY) > pt.p.MaxSpeed {
				t.Fatalf("point %d exceeded speed cap: (%v, %v)", i, pt.VX, pt.VY)
			}
			if pt.FX != 0 || pt.FY != 0 {
				t.Fatalf("point %d kept force (%v, %v) after update", i, pt.FX, pt.FY)
			}
		}
	}

	if y := c.Points()[mid].Y; y <= 100 {
		t.Fatalf("expected middle of the cord to sag below y=100, got %v", y)
	}
	if y := c.Points()[mid].Y; math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("simulation diverged: y=%v", y)
	}
}

func TestUpdateComputesForcesBeforeMoving(t *testing.T) {
	p := DefaultParams()
	p.Gravity = 0
	c := New(p, 0, 0, 4, 0)
	pts := c.Points()
	pts[2].Y = 1 // pluck the middle

	c.Update()

	// Symmetric neighbours must see the same displaced middle point.
	if math.Abs(pts[1].VY-pts[3].VY) > 1e-12 {
		t.Fatalf("expected symmetric response, got %v and %v", pts[1].VY, pts[3].VY)
	}
}

func TestDragGrabsNearbyPointsOnly(t *testing.T) {
	c := New(DefaultParams(), 0, 100, 100, 100)

	c.Drag(50, 130, 0, 30)

	pts := c.Points()
	if pts[50].Y != 130 {
		t.Fatalf("expected point under the pointer to follow, got y=%v", pts[50].Y)
	}
	if pts[30].Y != 100 {
		t.Fatalf("expected distant point to stay, got y=%v", pts[30].Y)
	}
}

func TestDrawRendersPolylineThenMarkers(t *testing.T) {
	c := New(DefaultParams(), 0, 0, 10, 0)
	var s recordingSurface

	c.Draw(&s)

	if len(s.polylines) != 1 || len(s.polylines[0]) != c.Len() {
		t.Fatalf("expected one polyline through %d points, got %v", c.Len(), s.polylines)
	}
	if len(s.circles) != c.Len() {
		t.Fatalf("expected %d markers, got %d", c.Len(), len(s.circles))
	}
	if s.colors[0] != c.Palette.Anchor || s.colors[1] != c.Palette.Point {
		t.Fatal("expected anchors and points to use their palette colours")
	}
	if s.fills != 0 {
		t.Fatal("expected Draw to leave the background to the caller")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(DefaultParams(), 0, 0, 10, 0)
	cp := c.Clone()

	c.Points()[3].Y = 42
	if cp.Points()[3].Y == 42 {
		t.Fatal("expected clone to keep its own points")
	}
	if cp.Params() != c.Params() {
		t.Fatal("expected clone to share constants")
	}
}

func TestResetRestoresRestState(t *testing.T) {
	c := New(DefaultParams(), 0, 0, 10, 0)
	for range 50 {
		c.Update()
	}
	c.Reset()
	for i, pt := range c.Points() {
		if pt.Y != 0 || pt.VX != 0 || pt.VY != 0 {
			t.Fatalf("point %d not at rest after reset: %+v", i, pt)
		}
	}
}

func TestEnergyAndExcitationAtRest(t *testing.T) {
	c := New(DefaultParams(), 0, 0, 10, 0)
	if e := c.Energy(); e > 1e-9 {
		t.Fatalf("expected zero energy at rest length, got %v", e)
	}
	if ex := c.Excitation(); ex != 0 {
		t.Fatalf("expected zero excitation at rest, got %v", ex)
	}

	c.Points()[5].VY = 1000
	if ex := c.Excitation(); ex <= 0 || ex > 1 {
		t.Fatalf("expected excitation in (0, 1], got %v", ex)
	}
}

func TestHeatModeColorsBySpeed(t *testing.T) {
	c := New(DefaultParams(), 0, 0, 10, 0)
	c.Palette.Mode = ColorHeat
	pts := c.Points()
	pts[4].VY = pts[4].p.MaxSpeed

	slow := c.Palette.pointColor(&pts[3])
	fast := c.Palette.pointColor(&pts[4])
	if slow == fast {
		t.Fatal("expected heat mode to distinguish slow and fast points")
	}
	if got := c.Palette.pointColor(&pts[0]); got != c.Palette.Anchor {
		t.Fatal("expected anchors to keep the anchor colour in heat mode")
	}
}

func TestColorModeCycles(t *testing.T) {
	if ColorPlain.Next() != ColorHeat || ColorHeat.Next() != ColorPlain {
		t.Fatal("expected colour modes to alternate")
	}
	if ColorHeat.String() != "heat" {
		t.Fatalf("unexpected name %q", ColorHeat.String())
	}
}

package sim

import "math"

// Cord is a chain of points strung between two anchors.
// It is only mutated from a single goroutine; use Clone to hand a snapshot
// to another one.
type Cord struct {
	x1, y1 float64
	x2, y2 float64
	length float64
	points []Point
	params *Params

	Palette Palette
}

// New builds a cord at rest on the straight line from (x1, y1) to (x2, y2).
// The chain has 1 + ceil(length/Tolerance) points; the first and last are
// anchors.
func New(p Params, x1, y1, x2, y2 float64) *Cord {
	c := &Cord{
		x1: x1, y1: y1,
		x2: x2, y2: y2,
		length:  math.Hypot(x2-x1, y2-y1),
		params:  &p,
		Palette: LightPalette(),
	}
	c.build()
	return c
}

func (c *Cord) build() {
	count := 1 + int(math.Ceil(c.length/c.params.Tolerance))
	c.points = make([]Point, count)

	// Spacing uses count-1 gaps so the last point sits on the second anchor.
	// Coincident anchors give a single point and no gaps.
	gaps := math.Max(float64(count-1), 1)
	for i := range count {
		fixed := i == 0 || i == count-1
		x := c.x1 + float64(i)*(c.x2-c.x1)/gaps
		y := c.y1 + float64(i)*(c.y2-c.y1)/gaps
		c.points[i] = NewPoint(x, y, fixed, c.params)
	}
	for i := range c.points {
		if i > 0 {
			c.points[i].SetLeft(i - 1)
		}
		if i < count-1 {
			c.points[i].SetRight(i + 1)
		}
	}
}

// Reset puts the cord back at rest between its anchors.
func (c *Cord) Reset() {
	c.build()
}

// Params returns the constants the cord was built with.
func (c *Cord) Params() Params { return *c.params }

// Length is the straight-line distance between the anchors.
func (c *Cord) Length() float64 { return c.length }

// Len returns the number of points.
func (c *Cord) Len() int { return len(c.points) }

// Points exposes the chain. The slice must not be resized.
func (c *Cord) Points() []Point { return c.points }

// Positions returns the point positions in chain order.
func (c *Cord) Positions() []Vec {
	out := make([]Vec, len(c.points))
	for i := range c.points {
		out[i] = c.points[i].Pos()
	}
	return out
}

// Update advances the simulation by one frame. All forces are computed from
// the positions at the start of the frame before any point moves.
func (c *Cord) Update() {
	for i := range c.points {
		c.points[i].ComputeForces(c.points)
	}
	for i := range c.points {
		c.points[i].Integrate()
	}
}

// Drag offers a pointer motion event to every point.
func (c *Cord) Drag(tx, ty, dx, dy float64) {
	for i := range c.points {
		c.points[i].ApplyDrag(tx, ty, dx, dy)
	}
}

// Draw renders the string as a polyline with a marker on every point.
func (c *Cord) Draw(s Surface) {
	s.Polyline(c.Positions(), c.Palette.Line)
	for i := range c.points {
		pt := &c.points[i]
		s.Circle(pt.Pos(), c.params.PointRadius, c.Palette.pointColor(pt))
	}
}

// Clone returns an independent copy sharing the same constants.
func (c *Cord) Clone() *Cord {
	cp := *c
	cp.points = make([]Point, len(c.points))
	copy(cp.points, c.points)
	return &cp
}

// Energy returns the kinetic energy of all points plus the potential stored
// in every spring segment.
func (c *Cord) Energy() float64 {
	var e float64
	for i := range c.points {
		pt := &c.points[i]
		e += 0.5 * c.params.Mass * (pt.VX*pt.VX + pt.VY*pt.VY)
		if j, ok := pt.Right(); ok {
			ext := pt.DistanceTo(c.points[j].X, c.points[j].Y) - c.params.Tolerance
			e += 0.5 * c.params.Stiffness * ext * ext
		}
	}
	return e
}

// Excitation is the mean speed of the interior points as a fraction of
// MaxSpeed, in [0, 1].
func (c *Cord) Excitation() float64 {
	n := len(c.points) - 2
	if n <= 0 {
		return 0
	}
	var sum float64
	for i := 1; i <= n; i++ {
		sum += c.points[i].Speed()
	}
	ex := sum / float64(n) / c.params.MaxSpeed
	if ex > 1 {
		ex = 1
	}
	return ex
}

package sim

import "math"

// noNeighbor marks an absent left or right link at the ends of the chain.
const noNeighbor = -1

// Point is a single mass of the chain. Neighbours are indices into the
// slice that owns the point.
type Point struct {
	X, Y   float64
	VX, VY float64
	FX, FY float64

	left  int
	right int
	fixed bool
	p     *Params
}

// NewPoint creates an unlinked point at (x, y).
func NewPoint(x, y float64, fixed bool, p *Params) Point {
	return Point{X: x, Y: y, left: noNeighbor, right: noNeighbor, fixed: fixed, p: p}
}

// Fixed reports whether the point is an anchor.
func (pt *Point) Fixed() bool { return pt.fixed }

// SetLeft links the point to its left neighbour at chain index i.
func (pt *Point) SetLeft(i int) { pt.left = i }

// SetRight links the point to its right neighbour at chain index i.
func (pt *Point) SetRight(i int) { pt.right = i }

// Left returns the chain index of the left neighbour and whether there is one.
func (pt *Point) Left() (int, bool) { return pt.left, pt.left != noNeighbor }

// Right returns the chain index of the right neighbour and whether there is one.
func (pt *Point) Right() (int, bool) { return pt.right, pt.right != noNeighbor }

// Pos returns the current position.
func (pt *Point) Pos() Vec { return Vec{X: pt.X, Y: pt.Y} }

// DistanceTo returns the Euclidean distance from the point to (x, y).
func (pt *Point) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-pt.X, y-pt.Y)
}

// springForce is the pull the spring towards other exerts on pt.
func (pt *Point) springForce(other *Point) (float64, float64) {
	dist := pt.DistanceTo(other.X, other.Y)
	power := pt.p.Stiffness * (dist - pt.p.Tolerance)
	angle := math.Atan2(other.Y-pt.Y, other.X-pt.X)
	return power * math.Cos(angle), power * math.Sin(angle)
}

// ComputeForces adds the spring pull of both neighbours and gravity to the
// force accumulator. Anchors accumulate nothing.
func (pt *Point) ComputeForces(chain []Point) {
	if pt.fixed {
		return
	}
	for _, i := range [2]int{pt.left, pt.right} {
		if i == noNeighbor {
			continue
		}
		fx, fy := pt.springForce(&chain[i])
		pt.FX += fx
		pt.FY += fy
	}
	pt.FY += pt.p.Gravity * pt.p.Mass * pt.p.Tolerance
}

// Integrate advances velocity and position by one frame and clears the force
// accumulator. Anchors keep their position and stay at rest.
func (pt *Point) Integrate() {
	if pt.fixed {
		pt.VX, pt.VY = 0, 0
		pt.FX, pt.FY = 0, 0
		return
	}
	fps := pt.p.FrameRate
	decay := math.Pow(pt.p.Damping, 1/fps)

	pt.VX = pt.integrateAxis(pt.VX, pt.FX, decay)
	pt.VY = pt.integrateAxis(pt.VY, pt.FY, decay)

	pt.X += pt.VX * pt.p.Scale / fps
	pt.Y += pt.VY * pt.p.Scale / fps
	pt.FX, pt.FY = 0, 0
}

func (pt *Point) integrateAxis(v, f, decay float64) float64 {
	v += f / (pt.p.Mass * pt.p.FrameRate)
	v *= decay
	return clampSpeed(v, pt.p.MaxSpeed)
}

func clampSpeed(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// ApplyDrag moves the point with a pointer that is now at (tx, ty) after
// moving by (dx, dy), provided the pointer started within TouchRadius of it.
func (pt *Point) ApplyDrag(tx, ty, dx, dy float64) {
	if pt.DistanceTo(tx-dx, ty-dy) <= pt.p.TouchRadius {
		pt.X += dx
		pt.Y += dy
	}
}

// Speed returns the velocity magnitude.
func (pt *Point) Speed() float64 {
	return math.Hypot(pt.VX, pt.VY)
}

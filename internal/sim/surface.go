package sim

import "image/color"

// Vec is a position in world coordinates. Y grows downward, as on screen.
type Vec struct {
	X, Y float64
}

// Surface is what a Cord draws itself onto.
type Surface interface {
	Fill(c color.Color)
	Polyline(pts []Vec, c color.Color)
	Circle(center Vec, r float64, c color.Color)
}

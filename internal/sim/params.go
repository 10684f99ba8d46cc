package sim

// Params holds the physical constants of one simulation. Every Point of a Cord
// shares the Cord's Params.
type Params struct {
	FrameRate   float64 // integration steps per simulated second
	Scale       float64 // world units travelled per unit of velocity per second
	Gravity     float64
	Mass        float64
	Stiffness   float64
	Damping     float64 // fraction of velocity left after one simulated second
	MaxSpeed    float64 // per-axis velocity cap
	Tolerance   float64 // spring rest length and chain spacing
	TouchRadius float64 // how close a pointer must be to grab a point
	PointRadius float64 // drawn marker radius
}

// DefaultParams returns the constants of the classic 300x600 string scene.
func DefaultParams() Params {
	return Params{
		FrameRate:   200,
		Scale:       10,
		Gravity:     9.8,
		Mass:        10,
		Stiffness:   5000,
		Damping:     0.1,
		MaxSpeed:    100,
		Tolerance:   1,
		TouchRadius: 10,
		PointRadius: 2,
	}
}

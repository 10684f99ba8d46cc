package ui

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// rateMeter reports the achieved tick rate, smoothed by a critically damped
// spring so the readout does not flicker.
type rateMeter struct {
	spring harmonica.Spring
	rate   float64
	vel    float64
	last   time.Time
}

func newRateMeter(fps int) rateMeter {
	return rateMeter{spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 2.0, 1.0)}
}

func (r *rateMeter) observe(t time.Time) {
	if !r.last.IsZero() {
		if dt := t.Sub(r.last).Seconds(); dt > 0 {
			r.rate, r.vel = r.spring.Update(r.rate, r.vel, 1/dt)
		}
	}
	r.last = t
}

// pause forgets the last tick so idle time is not counted.
func (r *rateMeter) pause() { r.last = time.Time{} }

func (r *rateMeter) Rate() float64 { return r.rate }

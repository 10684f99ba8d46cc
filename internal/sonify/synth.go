package sonify

import "math"

// SampleRate is the PCM rate of everything this package produces.
const SampleRate = 44100

// Synth is a sine oscillator whose loudness follows the string's excitation.
type Synth struct {
	tone   float64
	volume float64
	phase  float64
	level  float64 // loudness at the end of the previous frame
	carry  float64 // fractional samples owed from earlier frames
}

// NewSynth creates an oscillator at tone Hz scaled by volume in [0, 1].
func NewSynth(tone, volume float64) *Synth {
	return &Synth{tone: tone, volume: volume}
}

// Render produces the samples covering dt seconds, ramping loudness
// linearly from the previous frame's level to level.
func (s *Synth) Render(level, dt float64) []int16 {
	level = math.Max(0, math.Min(1, level))
	want := s.carry + dt*SampleRate
	n := int(want)
	s.carry = want - float64(n)

	out := make([]int16, n)
	step := 2 * math.Pi * s.tone / SampleRate
	for i := range n {
		t := float64(i+1) / float64(n)
		amp := (s.level + (level-s.level)*t) * s.volume
		out[i] = int16(amp * math.Sin(s.phase) * math.MaxInt16)
		s.phase += step
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
	s.level = level
	return out
}

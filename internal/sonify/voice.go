package sonify

import "io"

// Voice turns per-frame excitation levels into sound for the live output
// and an optional recording. It is driven from the UI goroutine.
type Voice struct {
	synth  *Synth
	stream *Stream
	out    *Output
	rec    *Recorder
}

// NewVoice creates a silent voice; attach an Output or start a recording to
// make it produce samples.
func NewVoice(tone, volume float64) *Voice {
	return &Voice{
		synth:  NewSynth(tone, volume),
		stream: NewStream(0.25),
	}
}

// Source is the reader to hand to Open.
func (v *Voice) Source() io.Reader { return v.stream }

// Attach starts feeding out.
func (v *Voice) Attach(out *Output) { v.out = out }

// Detach stops and closes the live output.
func (v *Voice) Detach() error {
	out := v.out
	v.out = nil
	v.stream.ring.Clear()
	return out.Close()
}

// Live reports whether an output is attached.
func (v *Voice) Live() bool { return v.out != nil }

func (v *Voice) StartRecording() { v.rec = &Recorder{} }

// StopRecording ends the recording and returns its samples.
func (v *Voice) StopRecording() []int16 {
	if v.rec == nil {
		return nil
	}
	s := v.rec.Samples()
	v.rec = nil
	return s
}

func (v *Voice) Recording() bool { return v.rec != nil }

// Feed renders dt seconds at the given excitation level.
func (v *Voice) Feed(level, dt float64) {
	if v.out == nil && v.rec == nil {
		return
	}
	samples := v.synth.Render(level, dt)
	if v.out != nil {
		v.stream.Push(samples)
	}
	if v.rec != nil {
		v.rec.Append(samples)
	}
}

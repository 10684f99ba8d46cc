package sonify

import "encoding/binary"

// Stream is an io.Reader of 16-bit little-endian mono PCM for the audio
// device. It plays silence whenever the simulation falls behind.
type Stream struct {
	ring *RingBuffer
}

// NewStream buffers up to seconds of audio.
func NewStream(seconds float64) *Stream {
	size := int(seconds*SampleRate) * 2
	return &Stream{ring: NewRingBuffer(max(size, 2))}
}

// Push queues samples for playback.
func (s *Stream) Push(samples []int16) {
	buf := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}
	s.ring.Write(buf)
}

// Buffered returns the number of queued samples.
func (s *Stream) Buffered() int { return s.ring.Len() / 2 }

func (s *Stream) Read(p []byte) (int, error) {
	n := s.ring.Drain(p[:len(p)&^1])
	clear(p[n:])
	return len(p), nil
}

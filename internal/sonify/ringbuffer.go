package sonify

import "sync"

// RingBuffer is a thread-safe FIFO byte buffer. When full, new data
// overwrites the oldest bytes.
type RingBuffer struct {
	buf  []byte
	size int
	r    int // read position
	len  int // current fill level
	mu   sync.Mutex
}

// NewRingBuffer creates a ring buffer with the given capacity in bytes.
func NewRingBuffer(size int) *RingBuffer {
	return &RingBuffer{
		buf:  make([]byte, size),
		size: size,
	}
}

// Write appends data, dropping the oldest bytes if the buffer overflows.
func (rb *RingBuffer) Write(p []byte) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for _, b := range p {
		w := (rb.r + rb.len) % rb.size
		rb.buf[w] = b
		if rb.len == rb.size {
			rb.r = (rb.r + 1) % rb.size
		} else {
			rb.len++
		}
	}
}

// Drain moves up to len(p) of the oldest bytes into p and returns how many
// were copied.
func (rb *RingBuffer) Drain(p []byte) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	n := min(len(p), rb.len)
	for i := range n {
		p[i] = rb.buf[(rb.r+i)%rb.size]
	}
	rb.r = (rb.r + n) % rb.size
	rb.len -= n
	return n
}

// Len returns the number of buffered bytes.
func (rb *RingBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.len
}

// Clear resets the buffer.
func (rb *RingBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.r = 0
	rb.len = 0
}

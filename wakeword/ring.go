package wakeword

// Ring is a fixed-capacity ring buffer for audio samples. Once full, new
// samples overwrite the oldest ones, so the buffer always holds the most
// recent capacity samples in insertion order.
type Ring struct {
	data []float64
	pos  int
	full bool
}

// NewRing creates a Ring holding up to capacity samples.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Push appends a block of samples, overwriting the oldest data when full.
func (r *Ring) Push(samples []float64) {
	for _, v := range samples {
		r.data[r.pos] = v
		r.pos++
		if r.pos >= len(r.data) {
			r.pos = 0
			r.full = true
		}
	}
}

// Len returns the number of buffered samples.
func (r *Ring) Len() int {
	if r.full {
		return len(r.data)
	}
	return r.pos
}

// Cap returns the buffer capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Snapshot returns the buffered samples oldest-first as a new slice.
func (r *Ring) Snapshot() []float64 {
	out := make([]float64, r.Len())
	if r.full {
		copy(out, r.data[r.pos:])
		copy(out[len(r.data)-r.pos:], r.data[:r.pos])
	} else {
		copy(out, r.data[:r.pos])
	}
	return out
}

// Reset discards all buffered samples.
func (r *Ring) Reset() {
	r.pos = 0
	r.full = false
}

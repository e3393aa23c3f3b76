package wakeword

import "sync"

// Guarded serializes access to a shared Detector.
//
// Audio capture callbacks and decision loops typically run on different
// goroutines; Guarded holds one exclusive lock for the duration of each
// call, so a template replacement during Train is never observed as a
// partial write by a concurrent Detect.
type Guarded struct {
	mu sync.Mutex
	d  *Detector
}

// NewGuarded wraps a detector. The caller must not use the detector
// directly afterwards.
func NewGuarded(d *Detector) *Guarded {
	return &Guarded{d: d}
}

// Detect calls [Detector.Detect] under the lock.
func (g *Guarded) Detect(audio []float64) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.d.Detect(audio)
}

// Train calls [Detector.Train] under the lock.
func (g *Guarded) Train(samples [][]float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.d.Train(samples)
}

// SetTemplate calls [Detector.SetTemplate] under the lock.
func (g *Guarded) SetTemplate(template [][]float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.d.SetTemplate(template)
}

// SetThreshold calls [Detector.SetThreshold] under the lock.
func (g *Guarded) SetThreshold(t float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.d.SetThreshold(t)
}

// Threshold returns the current similarity cutoff under the lock.
func (g *Guarded) Threshold() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.d.Threshold()
}

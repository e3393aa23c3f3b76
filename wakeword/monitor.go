package wakeword

import (
	"context"
	"math"
)

const (
	defaultWindowSeconds = 2.0

	// minFillDivisor: detection starts once the capture window holds at
	// least sampleRate/minFillDivisor samples (100 ms at default rate).
	minFillDivisor = 10
)

// Detection describes one positive match emitted by a Monitor.
type Detection struct {
	// Similarity is the score that crossed the detector threshold.
	Similarity float64

	// Audio is a snapshot of the capture window at detection time,
	// oldest-first. Callers typically hand it to a recorder or a remote
	// transcription service.
	Audio []float64
}

// MonitorOption configures a Monitor.
type MonitorOption func(*monitorConfig)

type monitorConfig struct {
	windowSeconds float64
	minFill       int
}

// WithWindowSeconds sets the capture window length in seconds.
func WithWindowSeconds(seconds float64) MonitorOption {
	return func(cfg *monitorConfig) {
		if seconds > 0 {
			cfg.windowSeconds = seconds
		}
	}
}

// WithMinFill sets the minimum number of buffered samples before
// detection runs.
func WithMinFill(samples int) MonitorOption {
	return func(cfg *monitorConfig) {
		if samples > 0 {
			cfg.minFill = samples
		}
	}
}

// Monitor owns a Detector exclusively and scores a stream of audio chunks
// against its template.
//
// The capture goroutine sends raw sample chunks over the input channel; the
// monitor keeps a sliding window of the most recent audio, runs detection
// after each chunk once the window has a minimum fill, and emits a
// [Detection] for every match. The window is cleared after a match so one
// utterance does not trigger repeatedly. This is the message-passing
// alternative to [Guarded]: no lock contention, because only the monitor
// goroutine touches the detector.
type Monitor struct {
	det     *Detector
	ring    *Ring
	minFill int
	in      <-chan []float64
	out     chan Detection
}

// NewMonitor creates a monitor reading sample chunks from in. The caller
// must not use the detector directly while the monitor runs.
func NewMonitor(det *Detector, in <-chan []float64, opts ...MonitorOption) *Monitor {
	rate := det.Config().SampleRate

	cfg := monitorConfig{
		windowSeconds: defaultWindowSeconds,
		minFill:       int(rate) / minFillDivisor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	capacity := int(math.Round(cfg.windowSeconds * rate))

	return &Monitor{
		det:     det,
		ring:    NewRing(capacity),
		minFill: cfg.minFill,
		in:      in,
		out:     make(chan Detection),
	}
}

// Detections returns the channel on which matches are emitted. It is
// closed when Run returns.
func (m *Monitor) Detections() <-chan Detection {
	return m.out
}

// Run consumes the input channel until it is closed or ctx is canceled.
// Individual detect calls always run to completion; cancellation is only
// observed between chunks.
func (m *Monitor) Run(ctx context.Context) error {
	defer close(m.out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunk, ok := <-m.in:
			if !ok {
				return nil
			}

			m.ring.Push(chunk)
			if m.ring.Len() < m.minFill {
				continue
			}

			window := m.ring.Snapshot()
			detected, similarity := m.det.Detect(window)
			if !detected {
				continue
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case m.out <- Detection{Similarity: similarity, Audio: window}:
				m.ring.Reset()
			}
		}
	}
}

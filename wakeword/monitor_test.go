package wakeword

import (
	"context"
	"testing"
	"time"

	"github.com/cwbudde/algo-wakeword/signal"
)

func TestMonitorDetectsStreamedPattern(t *testing.T) {
	det := newTestDetector(t)

	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))

	in := make(chan []float64)
	m := NewMonitor(det, in, WithWindowSeconds(1))

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background())
	}()

	// Stream the pattern in 100 ms chunks, the way a capture callback
	// delivers audio.
	go func() {
		const chunk = 1600
		for off := 0; off < len(chirp); off += chunk {
			end := off + chunk
			if end > len(chirp) {
				end = len(chirp)
			}
			in <- chirp[off:end]
		}
		close(in)
	}()

	matched := false
	for d := range m.Detections() {
		if d.Similarity < det.Threshold() {
			t.Errorf("emitted detection below threshold: %g", d.Similarity)
		}
		if len(d.Audio) == 0 {
			t.Error("detection carries no audio snapshot")
		}
		matched = true
	}
	if !matched {
		t.Error("no detection for streamed template audio")
	}

	if err := <-done; err != nil {
		t.Errorf("Run = %v, want nil on input close", err)
	}
}

func TestMonitorIgnoresNoise(t *testing.T) {
	det := newTestDetector(t)

	gen := signal.NewGenerator(signal.WithSeed(7))
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))

	noise, err := gen.WhiteNoise(0.5, len(chirp))
	if err != nil {
		t.Fatal(err)
	}

	in := make(chan []float64)
	m := NewMonitor(det, in, WithWindowSeconds(1))

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background())
	}()

	go func() {
		const chunk = 1600
		for off := 0; off < len(noise); off += chunk {
			in <- noise[off : off+chunk]
		}
		close(in)
	}()

	for d := range m.Detections() {
		t.Errorf("noise triggered a detection (similarity %g)", d.Similarity)
	}
	if err := <-done; err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}

func TestMonitorCancellation(t *testing.T) {
	det := newTestDetector(t)

	in := make(chan []float64)
	m := NewMonitor(det, in)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	// The detections channel closes with Run.
	if _, ok := <-m.Detections(); ok {
		t.Error("detections channel still open after Run returned")
	}
}

func TestMonitorMinFill(t *testing.T) {
	det := newTestDetector(t)

	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))
	det.SetThreshold(0)

	// With min fill above the streamed total, detection never runs and no
	// match is emitted even at threshold zero.
	in := make(chan []float64)
	m := NewMonitor(det, in, WithWindowSeconds(1), WithMinFill(len(chirp)+1))

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background())
	}()

	go func() {
		in <- chirp
		close(in)
	}()

	for range m.Detections() {
		t.Error("detection ran below the configured minimum fill")
	}
	if err := <-done; err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}

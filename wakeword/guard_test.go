package wakeword

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-wakeword/signal"
)

func TestGuardedConcurrentUse(t *testing.T) {
	g := NewGuarded(newTestDetector(t))

	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Train([][]float64{chirp}); err != nil {
		t.Fatal(err)
	}

	// Detect, retrain and threshold changes from separate goroutines; the
	// race detector flags any unguarded access.
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				g.Detect(chirp)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			if err := g.Train([][]float64{chirp}); err != nil {
				t.Error(err)
			}
			g.SetThreshold(0.5 + 0.01*float64(i))
		}
	}()
	wg.Wait()

	detected, similarity := g.Detect(chirp)
	if !detected || similarity != 1 {
		t.Errorf("Detect = (%v, %g), want (true, 1)", detected, similarity)
	}
}

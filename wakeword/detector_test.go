package wakeword

import (
	"testing"

	"github.com/cwbudde/algo-wakeword/mfcc"
	"github.com/cwbudde/algo-wakeword/signal"
)

func TestDetectWithoutTemplate(t *testing.T) {
	det, err := New()
	if err != nil {
		t.Fatal(err)
	}

	gen := signal.NewGenerator()
	audio, err := gen.Sine(440, 0.5, 16000)
	if err != nil {
		t.Fatal(err)
	}

	detected, similarity := det.Detect(audio)
	if detected || similarity != 0 {
		t.Errorf("Detect without template = (%v, %g), want (false, 0)", detected, similarity)
	}
}

func TestDetectShortAudio(t *testing.T) {
	det, err := New()
	if err != nil {
		t.Fatal(err)
	}

	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))

	// 100 samples is below one analysis frame.
	detected, similarity := det.Detect(chirp[:100])
	if detected || similarity != 0 {
		t.Errorf("Detect on short audio = (%v, %g), want (false, 0)", detected, similarity)
	}
}

func TestDetectSelfSimilarity(t *testing.T) {
	det, err := New()
	if err != nil {
		t.Fatal(err)
	}

	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))

	detected, similarity := det.Detect(chirp)
	if !detected {
		t.Error("template did not match its own source audio")
	}
	if similarity != 1 {
		t.Errorf("self-similarity = %g, want 1", similarity)
	}
}

func TestDetectRejectsNoise(t *testing.T) {
	det, err := New()
	if err != nil {
		t.Fatal(err)
	}

	gen := signal.NewGenerator(signal.WithSeed(42))
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))

	noise, err := gen.WhiteNoise(0.5, len(chirp))
	if err != nil {
		t.Fatal(err)
	}

	detected, similarity := det.Detect(noise)
	if detected {
		t.Errorf("noise matched the template (similarity %g)", similarity)
	}
	if similarity >= det.Threshold() {
		t.Errorf("noise similarity %g not below threshold %g", similarity, det.Threshold())
	}
}

func TestThresholdClamping(t *testing.T) {
	det, err := New(WithThreshold(1.5))
	if err != nil {
		t.Fatal(err)
	}
	if got := det.Threshold(); got != 1 {
		t.Errorf("Threshold() = %g, want 1", got)
	}

	det.SetThreshold(-0.2)
	if got := det.Threshold(); got != 0 {
		t.Errorf("Threshold() = %g, want 0", got)
	}

	det.SetThreshold(0.85)
	if got := det.Threshold(); got != 0.85 {
		t.Errorf("Threshold() = %g, want 0.85", got)
	}
}

func TestThresholdControlsDecisionOnly(t *testing.T) {
	det, err := New()
	if err != nil {
		t.Fatal(err)
	}

	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	det.SetTemplate(det.Extract(chirp))

	probe, err := gen.Chirp(320, 1550, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}

	det.SetThreshold(0)
	permissive, simLow := det.Detect(probe)
	det.SetThreshold(1)
	strict, simHigh := det.Detect(probe)

	if simLow != simHigh {
		t.Errorf("similarity changed with threshold: %g vs %g", simLow, simHigh)
	}
	if !permissive {
		t.Error("threshold 0 should accept any scored audio")
	}
	if strict && simHigh < 1 {
		t.Error("threshold 1 accepted a non-perfect match")
	}
}

func TestWithMaxDistanceScale(t *testing.T) {
	gen := signal.NewGenerator()
	chirp, err := gen.Chirp(300, 1500, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	probe, err := gen.Chirp(400, 1600, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}

	score := func(scale float64) float64 {
		det, err := New(WithMaxDistanceScale(scale))
		if err != nil {
			t.Fatal(err)
		}
		det.SetTemplate(det.Extract(chirp))
		_, similarity := det.Detect(probe)
		return similarity
	}

	// A larger assumed maximum shrinks the normalized distance, so the
	// similarity must not decrease.
	if tight, loose := score(1), score(100); loose < tight {
		t.Errorf("similarity fell from %g to %g as the scale grew", tight, loose)
	}
}

func TestConfigOptionsForwarded(t *testing.T) {
	det, err := New(WithConfig(
		mfcc.WithSampleRate(8000),
		mfcc.WithCoefficients(10),
		mfcc.WithFrequencyRange(100, 3500),
	))
	if err != nil {
		t.Fatal(err)
	}

	cfg := det.Config()
	if cfg.SampleRate != 8000 || cfg.NumCoefficients != 10 {
		t.Errorf("options not forwarded: %+v", cfg)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(WithConfig(mfcc.WithFrequencyRange(300, 9000))); err == nil {
		t.Error("expected error for band above Nyquist")
	}
}

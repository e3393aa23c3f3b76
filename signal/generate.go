package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator (default 16 kHz, seed 1).
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 16000,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Chirp generates a linear frequency sweep from startHz to endHz.
//
// The instantaneous frequency is f(t) = f0 + (f1-f0)*t/T, so the phase
// integral gives x(t) = sin(2*pi*(f0*t + (f1-f0)/(2*T)*t^2)).
func (g *Generator) Chirp(startHz, endHz, amplitude, seconds float64) ([]float64, error) {
	if startHz <= 0 || endHz <= 0 {
		return nil, fmt.Errorf("signal: chirp frequencies must be > 0: %f..%f", startHz, endHz)
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("signal: chirp duration must be > 0: %f", seconds)
	}

	n := int(math.Round(seconds * g.sampleRate))
	out := make([]float64, n)
	slope := (endHz - startHz) / (2 * seconds)
	for i := range out {
		t := float64(i) / g.sampleRate
		phase := 2 * math.Pi * (startHz*t + slope*t*t)
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// MultiTone generates a sum of sine waves with per-tone amplitudes.
func (g *Generator) MultiTone(freqsHz, amplitudes []float64, seconds float64) ([]float64, error) {
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("signal: multi-tone requires at least one frequency")
	}
	if len(freqsHz) != len(amplitudes) {
		return nil, fmt.Errorf("signal: multi-tone frequency/amplitude length mismatch: %d != %d", len(freqsHz), len(amplitudes))
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("signal: multi-tone duration must be > 0: %f", seconds)
	}

	n := int(math.Round(seconds * g.sampleRate))
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / g.sampleRate
		for k, f := range freqsHz {
			out[i] += amplitudes[k] * math.Sin(2*math.Pi*f*t)
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

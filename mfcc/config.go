package mfcc

import "fmt"

// Config defines the fixed parameters of one extraction pipeline.
type Config struct {
	SampleRate      float64 // reference rate in Hz for mel-to-bin mapping
	FrameSize       int     // samples per analysis window
	HopSize         int     // samples advanced between frames
	NumCoefficients int     // output coefficients per frame
	NumFilters      int     // mel filterbank rows
	MinFreq         float64 // lower edge of the analysis band in Hz
	MaxFreq         float64 // upper edge of the analysis band in Hz
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the analysis settings for 16 kHz speech:
// 512 sample frames with 75% overlap, 13 coefficients from 26 mel
// filters over 300-8000 Hz.
func DefaultConfig() Config {
	return Config{
		SampleRate:      16000,
		FrameSize:       512,
		HopSize:         128,
		NumCoefficients: 13,
		NumFilters:      26,
		MinFreq:         300,
		MaxFreq:         8000,
	}
}

// WithSampleRate sets the input sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameSize sets the analysis window length in samples.
func WithFrameSize(frameSize int) Option {
	return func(cfg *Config) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithHopSize sets the stride between analysis windows in samples.
func WithHopSize(hopSize int) Option {
	return func(cfg *Config) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// WithCoefficients sets the number of cepstral coefficients per frame.
func WithCoefficients(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.NumCoefficients = n
		}
	}
}

// WithFilters sets the number of mel filterbank rows.
func WithFilters(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.NumFilters = n
		}
	}
}

// WithFrequencyRange sets the analysis band edges in Hz.
func WithFrequencyRange(minFreq, maxFreq float64) Option {
	return func(cfg *Config) {
		if minFreq >= 0 && maxFreq > minFreq {
			cfg.MinFreq = minFreq
			cfg.MaxFreq = maxFreq
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate checks the configuration invariants.
func (cfg Config) Validate() error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("mfcc: sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.FrameSize <= 0 {
		return fmt.Errorf("mfcc: frame size must be > 0: %d", cfg.FrameSize)
	}
	if cfg.HopSize <= 0 || cfg.HopSize > cfg.FrameSize {
		return fmt.Errorf("mfcc: hop size must be in (0, frame size]: %d", cfg.HopSize)
	}
	if cfg.NumCoefficients <= 0 || cfg.NumCoefficients > cfg.NumFilters {
		return fmt.Errorf("mfcc: coefficient count must be in (0, filter count]: %d", cfg.NumCoefficients)
	}
	if cfg.MinFreq < 0 || cfg.MinFreq >= cfg.MaxFreq {
		return fmt.Errorf("mfcc: min frequency must be in [0, max frequency): %f", cfg.MinFreq)
	}
	if cfg.MaxFreq > cfg.SampleRate/2 {
		return fmt.Errorf("mfcc: max frequency must not exceed Nyquist (%f): %f", cfg.SampleRate/2, cfg.MaxFreq)
	}
	return nil
}

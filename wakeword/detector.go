package wakeword

import (
	"math"

	"github.com/cwbudde/algo-wakeword/dtw"
	"github.com/cwbudde/algo-wakeword/mfcc"
)

const defaultThreshold = 0.7

// Detector matches audio buffers against a stored feature template.
//
// Configuration, filterbank and DCT basis are fixed for the detector's
// lifetime; the template and threshold may change between calls. Detector
// methods are not safe for concurrent use, see [Guarded] and [Monitor].
type Detector struct {
	extractor *mfcc.Extractor
	template  [][]float64
	threshold float64
	distScale float64
}

type detectorConfig struct {
	mfccOpts  []mfcc.Option
	threshold float64
	distScale float64
}

// Option configures a Detector.
type Option func(*detectorConfig)

// WithConfig forwards extraction options to the underlying MFCC pipeline.
func WithConfig(opts ...mfcc.Option) Option {
	return func(cfg *detectorConfig) {
		cfg.mfccOpts = append(cfg.mfccOpts, opts...)
	}
}

// WithThreshold sets the initial similarity cutoff, clamped to [0, 1].
func WithThreshold(t float64) Option {
	return func(cfg *detectorConfig) {
		cfg.threshold = clampUnit(t)
	}
}

// WithMaxDistanceScale scales the assumed maximum DTW cost used to map
// distances onto [0, 1].
//
// The default scale of 1 reproduces the sqrt(templateRows*numCoefficients)
// heuristic; it is not a derived bound, and atypical configurations may
// saturate similarity at 0 or 1 without adjustment.
func WithMaxDistanceScale(scale float64) Option {
	return func(cfg *detectorConfig) {
		if scale > 0 {
			cfg.distScale = scale
		}
	}
}

// New creates a detector with no template set.
func New(opts ...Option) (*Detector, error) {
	cfg := detectorConfig{
		threshold: defaultThreshold,
		distScale: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	extractor, err := mfcc.NewExtractor(cfg.mfccOpts...)
	if err != nil {
		return nil, err
	}

	return &Detector{
		extractor: extractor,
		threshold: cfg.threshold,
		distScale: cfg.distScale,
	}, nil
}

// Config returns the detector's extraction configuration.
func (d *Detector) Config() mfcc.Config {
	return d.extractor.Config()
}

// Extract exposes the detector's MFCC pipeline, one coefficient row per
// analysis frame. Useful for building templates from pre-recorded audio
// and for inspection in tests.
func (d *Detector) Extract(audio []float64) [][]float64 {
	return d.extractor.Extract(audio)
}

// SetTemplate replaces the stored template wholesale. The detector keeps
// the slice; callers must not mutate it afterwards.
func (d *Detector) SetTemplate(template [][]float64) {
	d.template = template
}

// Template returns the stored template, or nil when untrained. The result
// is shared for reads only.
func (d *Detector) Template() [][]float64 {
	return d.template
}

// SetThreshold stores the similarity cutoff, silently clamped to [0, 1].
func (d *Detector) SetThreshold(t float64) {
	d.threshold = clampUnit(t)
}

// Threshold returns the current similarity cutoff.
func (d *Detector) Threshold() float64 {
	return d.threshold
}

// Detect reports whether audio resembles the trained template, along with
// a similarity score in [0, 1].
//
// Without a template, or when the audio is too short to yield any analysis
// frame, the result is (false, 0); neither case is an error.
func (d *Detector) Detect(audio []float64) (bool, float64) {
	if len(d.template) == 0 {
		return false, 0
	}

	features := d.extractor.Extract(audio)
	if len(features) == 0 {
		return false, 0
	}

	distance := dtw.Distance(features, d.template)

	// Heuristic upper bound on the DTW cost, kept for behavioral
	// compatibility; see WithMaxDistanceScale.
	maxDistance := d.distScale * math.Sqrt(float64(len(d.template))*float64(d.Config().NumCoefficients))
	normalized := math.Min(distance/maxDistance, 1)
	similarity := 1 - normalized

	return similarity >= d.threshold, similarity
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package mfcc

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// preEmphasisAlpha is the first-order high-pass coefficient applied before
// spectral analysis to flatten the spectral tilt of speech.
const preEmphasisAlpha = 0.97

// powerFloor keeps the log power spectrum finite for silent bins.
const powerFloor = 1e-10

// Extractor converts raw mono audio into per-frame MFCC vectors.
//
// The mel filterbank, DCT basis, FFT plan and scratch buffers are built once
// at construction and reused across calls; an Extractor is therefore not safe
// for concurrent use.
type Extractor struct {
	cfg        Config
	filterbank *mat.Dense
	dct        *mat.Dense
	plan       *algofft.Plan[complex128]
	window     []float64

	frame    []float64
	fftIn    []complex128
	fftOut   []complex128
	re       []float64
	im       []float64
	power    []float64
	powerVec *mat.VecDense
	melVec   *mat.VecDense
	coefVec  *mat.VecDense
}

// NewExtractor creates an extractor from the default configuration plus opts.
func NewExtractor(opts ...Option) (*Extractor, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.FrameSize)
	if err != nil {
		return nil, fmt.Errorf("mfcc: init fft plan: %w", err)
	}

	numBins := cfg.FrameSize / 2
	power := make([]float64, numBins)

	return &Extractor{
		cfg:        cfg,
		filterbank: Filterbank(cfg),
		dct:        DCTBasis(cfg.NumFilters, cfg.NumCoefficients),
		plan:       plan,
		window:     hammingWindow(cfg.FrameSize),
		frame:      make([]float64, cfg.FrameSize),
		fftIn:      make([]complex128, cfg.FrameSize),
		fftOut:     make([]complex128, cfg.FrameSize),
		re:         make([]float64, numBins),
		im:         make([]float64, numBins),
		power:      power,
		powerVec:   mat.NewVecDense(numBins, power),
		melVec:     mat.NewVecDense(cfg.NumFilters, nil),
		coefVec:    mat.NewVecDense(cfg.NumCoefficients, nil),
	}, nil
}

// Config returns the extractor configuration.
func (e *Extractor) Config() Config {
	return e.cfg
}

// FrameCount returns the number of analysis frames Extract produces for
// audio of the given length: (length - FrameSize)/HopSize + 1, or 0 when
// the audio is shorter than one frame.
func (e *Extractor) FrameCount(length int) int {
	if length < e.cfg.FrameSize {
		return 0
	}
	return (length-e.cfg.FrameSize)/e.cfg.HopSize + 1
}

// Extract returns one NumCoefficients-length row per analysis frame.
//
// Audio shorter than one frame yields zero rows. The returned rows are
// freshly allocated and owned by the caller.
func (e *Extractor) Extract(audio []float64) [][]float64 {
	frames := e.FrameCount(len(audio))
	if frames == 0 {
		return nil
	}

	numBins := e.cfg.FrameSize / 2
	out := make([][]float64, frames)

	for f := 0; f < frames; f++ {
		row := make([]float64, e.cfg.NumCoefficients)
		out[f] = row

		start := f * e.cfg.HopSize
		preEmphasize(e.frame, audio[start:start+e.cfg.FrameSize])
		vecmath.MulBlockInPlace(e.frame, e.window)

		for i, v := range e.frame {
			e.fftIn[i] = complex(v, 0)
		}

		// Plan and scratch sizes are fixed at construction; Forward cannot
		// fail here. A zero row is emitted in the unreachable error case.
		if err := e.plan.Forward(e.fftOut, e.fftIn); err != nil {
			continue
		}

		for i := 0; i < numBins; i++ {
			e.re[i] = real(e.fftOut[i])
			e.im[i] = imag(e.fftOut[i])
		}
		vecmath.Power(e.power, e.re, e.im)
		for i, p := range e.power {
			e.power[i] = math.Log(p + powerFloor)
		}

		e.melVec.MulVec(e.filterbank, e.powerVec)
		e.coefVec.MulVec(e.dct, e.melVec)

		for i := range row {
			row[i] = e.coefVec.AtVec(i)
		}
	}

	return out
}

// preEmphasize writes src high-pass filtered into dst:
// dst[0] = src[0], dst[i] = src[i] - alpha*src[i-1].
func preEmphasize(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	dst[0] = src[0]
	for i := 1; i < len(src); i++ {
		dst[i] = src[i] - preEmphasisAlpha*src[i-1]
	}
}

// hammingWindow returns symmetric Hamming coefficients
// 0.54 - 0.46*cos(2*pi*i/(n-1)).
func hammingWindow(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return out
}

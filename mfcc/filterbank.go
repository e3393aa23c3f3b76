package mfcc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// HzToMel converts a frequency in Hz to the mel scale.
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz converts a mel-scale value back to Hz.
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// Filterbank builds the triangular mel filterbank for cfg.
//
// The result has NumFilters rows and FrameSize/2 columns. Each row is a
// triangle over FFT power-spectrum bins: zero at its left and right edge
// bins, one at its center bin, linear in between. Filter centers are the
// NumFilters+2 mel points evenly spaced between MinFreq and MaxFreq,
// mapped back to Hz and then to bin indices.
func Filterbank(cfg Config) *mat.Dense {
	numBins := cfg.FrameSize / 2
	fb := mat.NewDense(cfg.NumFilters, numBins, nil)

	minMel := HzToMel(cfg.MinFreq)
	maxMel := HzToMel(cfg.MaxFreq)

	binPoints := make([]int, cfg.NumFilters+2)
	for i := range binPoints {
		mel := minMel + (maxMel-minMel)*float64(i)/float64(cfg.NumFilters+1)
		hz := MelToHz(mel)
		binPoints[i] = int(math.Floor(hz * float64(cfg.FrameSize) / cfg.SampleRate))
	}

	for i := 0; i < cfg.NumFilters; i++ {
		start := binPoints[i]
		center := binPoints[i+1]
		end := binPoints[i+2]

		for j := start; j < center; j++ {
			if j >= 0 && j < numBins {
				fb.Set(i, j, float64(j-start)/float64(center-start))
			}
		}
		for j := center; j < end; j++ {
			if j >= 0 && j < numBins {
				fb.Set(i, j, float64(end-j)/float64(end-center))
			}
		}
	}

	return fb
}

// DCTBasis builds the orthonormal DCT-II basis used to decorrelate mel
// energies into cepstral coefficients.
//
// The result has numCoefficients rows and numFilters columns. Entry (i, j)
// is cos(pi*i*(j+0.5)/numFilters), scaled by sqrt(1/numFilters) for row 0
// and sqrt(2/numFilters) for every other row, which makes the rows
// orthonormal.
func DCTBasis(numFilters, numCoefficients int) *mat.Dense {
	dct := mat.NewDense(numCoefficients, numFilters, nil)

	scale0 := math.Sqrt(1 / float64(numFilters))
	scale := math.Sqrt(2 / float64(numFilters))

	for i := 0; i < numCoefficients; i++ {
		s := scale
		if i == 0 {
			s = scale0
		}
		for j := 0; j < numFilters; j++ {
			v := math.Cos(math.Pi * float64(i) * (float64(j) + 0.5) / float64(numFilters))
			dct.Set(i, j, s*v)
		}
	}

	return dct
}

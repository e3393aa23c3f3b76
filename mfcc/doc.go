// Package mfcc extracts Mel-Frequency Cepstral Coefficients from raw
// mono audio.
//
// MFCCs are compact per-frame spectral descriptors that approximate human
// auditory frequency resolution. The extraction pipeline per analysis frame:
//
//  1. Pre-emphasis (first-order high-pass, alpha = 0.97)
//  2. Hamming window
//  3. Forward FFT
//  4. Log power spectrum over the lower half of the bins
//  5. Triangular mel filterbank (matrix-vector product)
//  6. DCT-II with orthonormal scaling (matrix-vector product)
//
// The mel filterbank and DCT basis depend only on the configuration and are
// built once per [Extractor]. Extraction itself allocates only the output
// rows; per-frame scratch buffers are owned by the extractor, so a single
// Extractor must not be shared between goroutines without synchronization.
//
// # Usage
//
// Extract a feature matrix at the default analysis settings (16 kHz, 512
// sample frames, 128 sample hop, 13 coefficients from 26 filters over
// 300-8000 Hz):
//
//	ex, err := mfcc.NewExtractor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	features := ex.Extract(audio) // one []float64 row per frame
//
// Audio shorter than one frame yields zero rows; this is a deliberate
// "too short to analyze" result, not an error.
package mfcc

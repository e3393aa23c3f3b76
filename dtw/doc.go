// Package dtw computes Dynamic Time Warping distances between feature
// sequences.
//
// DTW finds the minimum-cost monotonic alignment between two time series of
// possibly different lengths, which makes it tolerant of patterns spoken or
// played at slightly different speeds. The local cost between two frames is
// their Euclidean distance across all coefficients.
//
// Complexity is O(n*m) time for sequences of n and m frames. The inputs
// here are bounded (seconds of audio at roughly 100 frames per second), so
// no band constraint is applied.
package dtw

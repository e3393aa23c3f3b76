package wakeword

import "errors"

// Errors returned by training.
var (
	// ErrEmptyInput indicates that no training samples were supplied.
	ErrEmptyInput = errors.New("wakeword: no training samples supplied")

	// ErrNoValidSamples indicates that every supplied sample was shorter
	// than one analysis frame, so no features could be extracted.
	ErrNoValidSamples = errors.New("wakeword: no sample produced any analysis frames")
)

// Package wakeword matches live audio against a trained acoustic template.
//
// A [Detector] combines MFCC feature extraction with Dynamic Time Warping:
// several recordings of the same short utterance are averaged into one
// reference feature sequence (the template), and incoming audio is scored by
// its alignment distance to that template, normalized into a similarity in
// [0, 1] and compared against a threshold. No speech recognition is
// involved; the detector recognizes one trained pattern.
//
// # Usage
//
//	det, err := wakeword.New(wakeword.WithThreshold(0.7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := det.Train(recordings); err != nil {
//	    log.Fatal(err)
//	}
//	detected, similarity := det.Detect(audio)
//
// A Detector is not safe for concurrent use. Share one between an audio
// capture callback and a decision loop through [Guarded], or hand it to a
// [Monitor] that owns it exclusively and receives audio over a channel.
package wakeword

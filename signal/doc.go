// Package signal generates deterministic test and demo signals.
//
// A [Generator] owns its configuration and random seed explicitly, so two
// generators constructed with the same options produce identical output;
// there is no package-level random state. The chirp and multi-tone shapes
// mirror the synthetic wake-word stand-ins used by the detection demos:
// a short frequency sweep is a convenient utterance-shaped pattern that
// needs no microphone.
package signal

// Package pcm converts captured sample formats into the float64 mono
// buffers the analysis pipeline consumes.
//
// Capture devices deliver 32-bit float, signed 16-bit, or unsigned 16-bit
// interleaved PCM. Each [Format] carries its own conversion routine, picked
// once at stream setup rather than per sample. Amplitudes are normalized to
// a nominal [-1, 1] range; multi-channel input is averaged down to mono
// with [Downmix].
package pcm

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Format identifies the wire encoding of captured samples. All byte-level
// decoding assumes little-endian order.
type Format int

const (
	// Float32 is IEEE 754 32-bit float PCM.
	Float32 Format = iota
	// Int16 is signed 16-bit PCM.
	Int16
	// Uint16 is unsigned 16-bit PCM with a midpoint of 32768.
	Uint16
)

// ParseFormat maps a format name ("f32", "s16", "u16") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "f32", "float32":
		return Float32, nil
	case "s16", "int16":
		return Int16, nil
	case "u16", "uint16":
		return Uint16, nil
	default:
		return 0, fmt.Errorf("pcm: unknown sample format %q", name)
	}
}

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case Float32:
		return "f32"
	case Int16:
		return "s16"
	case Uint16:
		return "u16"
	default:
		return fmt.Sprintf("pcm.Format(%d)", int(f))
	}
}

// BytesPerSample returns the encoded width of one sample.
func (f Format) BytesPerSample() int {
	switch f {
	case Float32:
		return 4
	case Int16, Uint16:
		return 2
	default:
		return 0
	}
}

// Samples decodes raw little-endian bytes into float64 samples.
//
// The input length must be a multiple of the sample width. Channel layout
// is preserved; interleaved multi-channel data can be reduced afterwards
// with [Downmix].
func (f Format) Samples(raw []byte) ([]float64, error) {
	width := f.BytesPerSample()
	if width == 0 {
		return nil, fmt.Errorf("pcm: unknown sample format %d", int(f))
	}
	if len(raw)%width != 0 {
		return nil, fmt.Errorf("pcm: %d bytes is not a multiple of the %d-byte sample width", len(raw), width)
	}

	out := make([]float64, len(raw)/width)
	switch f {
	case Float32:
		for i := range out {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			out[i] = float64(math.Float32frombits(bits))
		}
	case Int16:
		for i := range out {
			v := int16(binary.LittleEndian.Uint16(raw[i*2:]))
			out[i] = float64(v) / math.MaxInt16
		}
	case Uint16:
		for i := range out {
			v := binary.LittleEndian.Uint16(raw[i*2:])
			out[i] = (float64(v) - 32768) / 32768
		}
	}
	return out, nil
}

// FromFloat32 converts 32-bit float samples.
func FromFloat32(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

// FromInt16 converts signed 16-bit samples to [-1, 1].
func FromInt16(in []int16) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v) / math.MaxInt16
	}
	return out
}

// FromUint16 converts unsigned 16-bit samples to [-1, 1].
func FromUint16(in []uint16) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = (float64(v) - 32768) / 32768
	}
	return out
}

// Downmix averages interleaved multi-channel samples to mono. Mono input
// is returned as-is. A trailing partial frame is dropped.
func Downmix(interleaved []float64, channels int) ([]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("pcm: channel count must be > 0: %d", channels)
	}
	if channels == 1 {
		return interleaved, nil
	}

	frames := len(interleaved) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += interleaved[i*channels+c]
		}
		out[i] = sum / float64(channels)
	}
	return out, nil
}

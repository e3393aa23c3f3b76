package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-wakeword/mfcc"
	"github.com/cwbudde/algo-wakeword/pcm"
)

// pcmFlags is the raw-PCM input surface shared by train and detect.
func pcmFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "sample-rate",
			Aliases: []string{"s"},
			Usage:   "Sample rate in Hz",
			Value:   16000,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"F"},
			Usage:   "Sample format: f32, s16, u16 (little-endian)",
			Value:   "s16",
		},
		&cli.IntFlag{
			Name:    "channels",
			Aliases: []string{"c"},
			Usage:   "Number of interleaved channels (downmixed to mono)",
			Value:   1,
		},
		&cli.FloatFlag{
			Name:    "threshold",
			Aliases: []string{"t"},
			Usage:   "Similarity cutoff for positive detection, clamped to [0,1]",
			Value:   0.7,
		},
	}
}

func mfccOptions(cmd *cli.Command) []mfcc.Option {
	return []mfcc.Option{
		mfcc.WithSampleRate(float64(cmd.Int("sample-rate"))),
	}
}

// loadAudio reads a headerless PCM file and returns mono float64 samples.
func loadAudio(cmd *cli.Command, path string) ([]float64, error) {
	format, err := pcm.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	samples, err := format.Samples(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return pcm.Downmix(samples, cmd.Int("channels"))
}

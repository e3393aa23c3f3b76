package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-wakeword/wakeword"
)

var errNoSampleFiles = errors.New("expected at least one sample file argument")

func trainCommand() *cli.Command {
	return &cli.Command{
		Name:      "train",
		Usage:     "Train a template from raw PCM recordings and score each one against it",
		ArgsUsage: "<file ...>",
		Flags:     pcmFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return errNoSampleFiles
			}

			det, err := wakeword.New(
				wakeword.WithConfig(mfccOptions(cmd)...),
				wakeword.WithThreshold(cmd.Float("threshold")),
			)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			samples := make([][]float64, 0, len(paths))
			for _, path := range paths {
				audio, err := loadAudio(cmd, path)
				if err != nil {
					return err
				}
				samples = append(samples, audio)
			}

			if err := det.Train(samples); err != nil {
				return err
			}

			fmt.Printf("template trained from %d recording(s), %d frames x %d coefficients\n",
				len(samples), len(det.Template()), det.Config().NumCoefficients)

			// Score each recording against the averaged template so outliers
			// are easy to spot and re-record.
			for i, audio := range samples {
				detected, similarity := det.Detect(audio)
				mark := "miss"
				if detected {
					mark = "ok"
				}
				fmt.Printf("  %-4s %s (similarity %.1f%%)\n", mark, paths[i], similarity*100)
			}

			return nil
		},
	}
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-wakeword/wakeword"
)

var errNoProbeFile = errors.New("expected exactly one probe file argument")

func detectCommand() *cli.Command {
	flags := append(pcmFlags(),
		&cli.StringSliceFlag{
			Name:     "template",
			Aliases:  []string{"T"},
			Usage:    "Recording(s) of the wake word to train the template from (repeatable)",
			Required: true,
		},
	)

	return &cli.Command{
		Name:      "detect",
		Usage:     "Match a raw PCM recording against a template trained from reference recordings",
		ArgsUsage: "<file>",
		Flags:     flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errNoProbeFile, cmd.NArg())
			}

			det, err := wakeword.New(
				wakeword.WithConfig(mfccOptions(cmd)...),
				wakeword.WithThreshold(cmd.Float("threshold")),
			)
			if err != nil {
				return err
			}

			var samples [][]float64
			for _, path := range cmd.StringSlice("template") {
				audio, err := loadAudio(cmd, path)
				if err != nil {
					return err
				}
				samples = append(samples, audio)
			}

			if err := det.Train(samples); err != nil {
				return err
			}

			probePath := cmd.Args().First()
			probe, err := loadAudio(cmd, probePath)
			if err != nil {
				return err
			}

			detected, similarity := det.Detect(probe)
			if detected {
				fmt.Printf("DETECTED %s (similarity %.1f%%, threshold %.1f%%)\n",
					probePath, similarity*100, det.Threshold()*100)
			} else {
				fmt.Printf("not detected: %s (similarity %.1f%%, threshold %.1f%%)\n",
					probePath, similarity*100, det.Threshold()*100)
			}

			return nil
		},
	}
}

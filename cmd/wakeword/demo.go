package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-wakeword/signal"
	"github.com/cwbudde/algo-wakeword/wakeword"
)

// demoCommand runs the detector against synthetic audio: a chirp trained as
// its own template must match itself and reject noise, and a multi-tone
// pattern trained from slightly varied recordings must still match.
func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Self-test the detection pipeline on synthetic signals",
		Action: func(_ context.Context, _ *cli.Command) error {
			gen := signal.NewGenerator(signal.WithSeed(12345))

			det, err := wakeword.New()
			if err != nil {
				return err
			}

			chirp, err := gen.Chirp(300, 1500, 0.5, 1)
			if err != nil {
				return err
			}

			features := det.Extract(chirp)
			fmt.Printf("chirp: %d samples -> %d frames x %d coefficients\n",
				len(chirp), len(features), det.Config().NumCoefficients)

			det.SetTemplate(features)

			detected, similarity := det.Detect(chirp)
			fmt.Printf("  self-detection:  %s (similarity %.1f%%)\n", verdict(detected), similarity*100)

			noise, err := gen.WhiteNoise(0.1, len(chirp))
			if err != nil {
				return err
			}
			detected, similarity = det.Detect(noise)
			fmt.Printf("  noise rejection: %s (similarity %.1f%%)\n", verdict(!detected), similarity*100)

			// Train from varied recordings of the same pattern, the way real
			// utterances vary in pitch and pace.
			var samples [][]float64
			for i := 0; i < 3; i++ {
				shift := 1 + 0.05*float64(i)
				tone, err := gen.MultiTone(
					[]float64{440 * shift, 880 * shift, 1320 * shift},
					[]float64{0.3, 0.3, 0.2},
					1+0.1*float64(i),
				)
				if err != nil {
					return err
				}
				samples = append(samples, tone)
			}

			if err := det.Train(samples); err != nil {
				return err
			}
			fmt.Printf("multi-tone: template averaged from %d recordings (%d frames)\n",
				len(samples), len(det.Template()))

			detected, similarity = det.Detect(samples[0])
			fmt.Printf("  recall:          %s (similarity %.1f%%)\n", verdict(detected), similarity*100)

			return nil
		},
	}
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAILED"
}

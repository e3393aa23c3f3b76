// Command wakeword trains and evaluates acoustic wake-word templates.
//
// Usage:
//
//	wakeword demo
//	wakeword train -s 16000 -F s16 sample1.raw sample2.raw sample3.raw
//	wakeword detect -t template1.raw -t template2.raw probe.raw
//
// Audio files are headerless little-endian PCM; see the --format flag.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()

	app := &cli.Command{
		Name:  "wakeword",
		Usage: "Acoustic wake-word template training and detection",
		Commands: []*cli.Command{
			demoCommand(),
			trainCommand(),
			detectCommand(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}

// internal/lsapp/app.go
package lsapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pngtext/internal/appcore"
	"pngtext/internal/cli"
	"pngtext/internal/logging"
	"pngtext/internal/lscli"
	"pngtext/internal/lsoutput"
	"pngtext/internal/version"
	"pngtext/internal/visitors"
)

// RunContext parses argv and runs the chunk listing. Same exit-code
// contract as pngtext.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("pngls")
	fs.SetOutput(io.Discard)

	opts, err := lscli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "pngls version %s\n", version.Version)
		return 0
	}

	write, err := lsoutput.For(opts.Output)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	log := logging.New(stderr, opts.Quiet, opts.Verbose)
	return appcore.Run(ctx, stdout, stderr,
		appcore.Options{Path: opts.Path},
		visitors.Chunks(log),
		write,
	)
}

// Run is the background-context wrapper used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

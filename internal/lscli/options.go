// internal/lscli/options.go
package lscli

import (
	"errors"
	"flag"
	"fmt"

	"pngtext/internal/cliutil"
	"pngtext/internal/version"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds the pngls flags and positional file argument.
type Options struct {
	Path string

	Output  string
	Quiet   bool
	Verbose bool
	Version bool
}

// ParseArgs registers and parses the pngls flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json [text]")
	fs.StringVar(&opt.Output, "o", OutputText, "output format (shorthand) [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand) [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "enable debug logging [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	installUsage(fs)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		return opt, errors.New("missing <file> argument")
	case 1:
		opt.Path = posArgs[0]
	default:
		return opt, fmt.Errorf("expected one <file> argument, got %d", len(posArgs))
	}
	if opt.Output != OutputText && opt.Output != OutputJSON {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

func installUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "pngls - list the chunks of a PNG file\n\n")
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  pngls [options] <file>")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Prints every chunk's byte-offset span, type and payload length, with")
		fmt.Fprintln(out, "decoded detail for IHDR and text chunks. '-' reads from STDIN.")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string   Output format: text | json [text]")
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet           Suppress warnings")
		fmt.Fprintln(out, "      --verbose         Enable debug logging")
		fmt.Fprintln(out, "  -v, --version         Print version and exit")
		fmt.Fprintln(out, "  -h, --help            Show this help and exit")
	}
}

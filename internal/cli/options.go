// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"pngtext/internal/cliutil"
	"pngtext/internal/version"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
)

// Options holds all CLI flags and the positional file argument.
type Options struct {
	Path string // PNG file path, or "-" for stdin

	Output  string
	Quiet   bool
	Verbose bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the positional <file>.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", OutputText, "output format (shorthand) [text]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress per-chunk decode warnings [false]")
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

	// Validation
	switch len(posArgs) {
	case 0:
		return opt, errors.New("missing <file> argument")
	case 1:
		opt.Path = posArgs[0]
	default:
		return opt, fmt.Errorf("expected one <file> argument, got %d", len(posArgs))
	}
	switch opt.Output {
	case OutputText, OutputJSON, OutputJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

func installUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "pngtext - print text chunks embedded in PNG images\n\n")
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  pngtext [options] <file>")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Walks the PNG chunk stream and prints every tEXt, zTXt and iTXt chunk")
		fmt.Fprintln(out, "with its byte-offset span. '-' reads the image from STDIN.")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string   Output format: text | json | jsonl [text]")
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet           Suppress per-chunk decode warnings")
		fmt.Fprintln(out, "      --verbose         Enable debug logging")
		fmt.Fprintln(out, "  -v, --version         Print version and exit")
		fmt.Fprintln(out, "  -h, --help            Show this help and exit")
	}
}

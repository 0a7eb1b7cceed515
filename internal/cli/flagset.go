// internal/cli/flagset.go
package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError; the usage text
// is installed by ParseArgs once the flags are registered.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

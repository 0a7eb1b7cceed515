// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("output", "text", "")
	fs.String("o", "text", "")
	fs.Bool("quiet", false, "")
	fs.Bool("q", false, "")
	return fs
}

func TestSplitFlagsAfterPositional(t *testing.T) {
	flags, pos := SplitFlagsAndPositionals(newFS(), []string{"in.png", "-o", "json", "-q"})
	if !reflect.DeepEqual(flags, []string{"-o", "json", "-q"}) {
		t.Errorf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"in.png"}) {
		t.Errorf("pos = %v", pos)
	}
}

func TestSplitStdinDash(t *testing.T) {
	_, pos := SplitFlagsAndPositionals(newFS(), []string{"--output=jsonl", "-"})
	if !reflect.DeepEqual(pos, []string{"-"}) {
		t.Errorf("pos = %v", pos)
	}
}

func TestSplitDoubleDash(t *testing.T) {
	flags, pos := SplitFlagsAndPositionals(newFS(), []string{"-q", "--", "-weird-name.png"})
	if !reflect.DeepEqual(flags, []string{"-q"}) {
		t.Errorf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"-weird-name.png"}) {
		t.Errorf("pos = %v", pos)
	}
}

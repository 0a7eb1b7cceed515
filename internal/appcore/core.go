// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"pngtext-core/pngfile"
	"pngtext/internal/output"
)

// Options holds the scan parameters shared by the pngtext tool family.
type Options struct {
	Path string // PNG file path, or "-" for stdin
}

// VisitorFunc inspects one chunk and converts it to an output item.
// keep=false drops the chunk without error; visitors handle their own
// non-fatal conditions (e.g. undecodable text payloads) by logging and
// dropping. A returned error aborts the scan.
type VisitorFunc[T any] func(pngfile.Chunk) (keep bool, out T, err error)

// WriteFunc renders the collected items to the output stream.
type WriteFunc[T any] func(w io.Writer, list []T) error

// Run drives the shared pipeline: read the file, walk its chunk stream
// through visit, then hand the kept items to write. Nothing reaches stdout
// until the scan has succeeded, so malformed input never leaves partial
// output behind.
//
// Exit codes: 0 success, 1 unreadable or malformed input, 3 output write
// failure. A broken pipe on stdout maps to 0.
func Run[T any](ctx context.Context, stdout, stderr io.Writer, o Options, visit VisitorFunc[T], write WriteFunc[T]) int {
	buf, err := pngfile.ReadFile(o.Path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	r, err := pngfile.NewReader(buf)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", o.Path, err)
		return 1
	}

	var items []T
	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		c, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", o.Path, err)
			return 1
		}
		keep, item, err := visit(c)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if keep {
			items = append(items, item)
		}
	}

	outw := bufio.NewWriter(stdout)
	err = write(outw, items)
	if err == nil {
		err = outw.Flush()
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	return 0
}

// internal/lsoutput/write.go
package lsoutput

import (
	"fmt"
	"io"

	"pngtext/internal/jsonutil"
	"pngtext/pkg/api"
)

// WriteText prints one line per chunk:
//
//	[<start>-<end>] <type> (<length> bytes)[: <detail>]
//
// Unregistered chunk types are marked but never fatal.
func WriteText(w io.Writer, list []Row) error {
	for _, r := range list {
		line := fmt.Sprintf("[%08d-%08d] %s (%d bytes)", r.Start, r.End, r.Type, r.Length)
		if !r.Known {
			line += " [unregistered type]"
		}
		if r.Detail != "" {
			line += ": " + r.Detail
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes a single pretty-printed JSON array of v1 chunk rows.
func WriteJSON(w io.Writer, list []Row) error {
	out := make([]api.ChunkV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRow(r))
	}
	return jsonutil.EncodePretty(w, out)
}

// For returns the row writer for a format name.
func For(format string) (func(io.Writer, []Row) error, error) {
	switch format {
	case "text":
		return WriteText, nil
	case "json":
		return WriteJSON, nil
	default:
		return nil, fmt.Errorf("unsupported output %q", format)
	}
}

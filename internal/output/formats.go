// internal/output/formats.go
package output

import (
	"fmt"
	"io"

	"pngtext-core/textchunk"
)

// For returns the record writer for a format name.
func For(format string) (func(io.Writer, []textchunk.Record) error, error) {
	switch format {
	case "text":
		return WriteText, nil
	case "json":
		return WriteJSON, nil
	case "jsonl":
		return WriteJSONL, nil
	default:
		return nil, fmt.Errorf("unsupported output %q", format)
	}
}

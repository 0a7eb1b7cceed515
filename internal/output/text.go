// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"pngtext-core/textchunk"
)

// WriteText prints one block per record:
//
//	[<start>-<end>] <type>:
//	<keyword> <text>
//
// Offsets are zero-padded to 8 digits and a blank line follows each block.
func WriteText(w io.Writer, list []textchunk.Record) error {
	for _, r := range list {
		_, err := fmt.Fprintf(w, "[%08d-%08d] %s:\n%s %s\n\n",
			r.Start, r.End, r.Type, r.Keyword, r.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

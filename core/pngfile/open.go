// core/pngfile/open.go
package pngfile

import (
	"io"
	"os"
)

// ReadFile reads a whole PNG file into memory. "-" reads stdin. Metadata
// scanning never needs streaming: text chunks sit in the first few KiB and
// the buffer is dropped when the scan ends.
func ReadFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

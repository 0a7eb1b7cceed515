// core/pngfile/pngfile.go
package pngfile

import "fmt"

// Signature is the fixed 8-byte prefix of every PNG datastream
// (89 50 4E 47 0D 0A 1A 0A).
var Signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk framing: 4-byte big-endian length, 4-byte type, payload, 4-byte CRC.
const (
	headerSize = 8
	crcSize    = 4
)

// Chunk is one length-prefixed record of a PNG datastream.
// Start is the offset of the chunk's length field; End is one past its CRC,
// so End of a chunk equals Start of the next one. Data aliases the scanned
// buffer and must not be mutated.
type Chunk struct {
	Start int64
	End   int64
	Type  string
	Data  []byte
	CRC   uint32
}

// Span returns the total number of bytes the chunk occupies in the file.
func (c Chunk) Span() int64 { return c.End - c.Start }

// FormatError reports a malformed PNG datastream: a bad signature or a
// chunk whose declared length overruns the buffer. Scanning stops.
type FormatError struct {
	Offset int64
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("png: %s (offset %d)", e.Msg, e.Offset)
}

func formatErrf(offset int64, format string, a ...any) *FormatError {
	return &FormatError{Offset: offset, Msg: fmt.Sprintf(format, a...)}
}

// core/pngfile/ihdr.go
package pngfile

import "encoding/binary"

const ihdrLength = 13

// IHDR holds the decoded image header fields.
type IHDR struct {
	Width       int
	Height      int
	Depth       int
	ColorType   int
	Compression int
	Filter      int
	Interlace   int
}

// Allowed bit depths per color type (W3C PNG spec, table 13).
var depthsByColorType = map[int][]int{
	0: {1, 2, 4, 8, 16},
	2: {8, 16},
	3: {1, 2, 4, 8},
	4: {8, 16},
	6: {8, 16},
}

// ParseIHDR decodes and validates an IHDR chunk's payload.
func ParseIHDR(c Chunk) (IHDR, error) {
	var h IHDR
	if c.Type != TypeIHDR {
		return h, formatErrf(c.Start, "not an IHDR chunk: %q", c.Type)
	}
	if len(c.Data) != ihdrLength {
		return h, formatErrf(c.Start, "invalid IHDR length: got %d, want %d", len(c.Data), ihdrLength)
	}

	h.Width = int(binary.BigEndian.Uint32(c.Data[0:4]))
	h.Height = int(binary.BigEndian.Uint32(c.Data[4:8]))
	if h.Width <= 0 || h.Height <= 0 {
		return h, formatErrf(c.Start, "invalid IHDR dimensions %dx%d", h.Width, h.Height)
	}

	h.Depth = int(c.Data[8])
	h.ColorType = int(c.Data[9])
	allowed, ok := depthsByColorType[h.ColorType]
	if !ok {
		return h, formatErrf(c.Start, "invalid color type %d", h.ColorType)
	}
	valid := false
	for _, d := range allowed {
		if d == h.Depth {
			valid = true
			break
		}
	}
	if !valid {
		return h, formatErrf(c.Start, "bit depth %d not allowed for color type %d", h.Depth, h.ColorType)
	}

	h.Compression = int(c.Data[10])
	h.Filter = int(c.Data[11])
	h.Interlace = int(c.Data[12])
	if h.Compression != 0 {
		return h, formatErrf(c.Start, "invalid compression method %d", h.Compression)
	}
	if h.Filter != 0 {
		return h, formatErrf(c.Start, "invalid filter method %d", h.Filter)
	}
	if h.Interlace != 0 && h.Interlace != 1 {
		return h, formatErrf(c.Start, "invalid interlace method %d", h.Interlace)
	}
	return h, nil
}

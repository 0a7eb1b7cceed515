// core/pngfile/reader.go
package pngfile

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Reader walks the chunk stream of an in-memory PNG datastream in file
// order. It is a single-pass cursor: Next returns io.EOF after the IEND
// chunk or once the buffer is exhausted, whichever comes first.
type Reader struct {
	buf  []byte
	pos  int64
	done bool
}

// NewReader verifies the PNG signature and positions the cursor on the
// first chunk. A buffer that does not start with the signature yields a
// *FormatError.
func NewReader(buf []byte) (*Reader, error) {
	if len(buf) < len(Signature) || !bytes.Equal(buf[:len(Signature)], Signature) {
		return nil, formatErrf(0, "not a PNG file: bad signature")
	}
	return &Reader{buf: buf, pos: int64(len(Signature))}, nil
}

// Next returns the next chunk. A truncated header or a declared length
// that overruns the buffer yields a *FormatError and ends the scan.
func (r *Reader) Next() (Chunk, error) {
	if r.done || r.pos >= int64(len(r.buf)) {
		return Chunk{}, io.EOF
	}
	start := r.pos
	if int64(len(r.buf))-start < headerSize {
		return Chunk{}, formatErrf(start, "truncated chunk header: %d bytes left", int64(len(r.buf))-start)
	}
	length := int64(binary.BigEndian.Uint32(r.buf[start : start+4]))
	end := start + headerSize + length + crcSize
	if end > int64(len(r.buf)) {
		return Chunk{}, formatErrf(start, "chunk length %d overruns file by %d bytes", length, end-int64(len(r.buf)))
	}
	c := Chunk{
		Start: start,
		End:   end,
		Type:  string(r.buf[start+4 : start+8]),
		Data:  r.buf[start+headerSize : start+headerSize+length],
		CRC:   binary.BigEndian.Uint32(r.buf[end-crcSize : end]),
	}
	r.pos = end
	if c.Type == TypeIEND {
		r.done = true
	}
	return c, nil
}

// ReadAll scans the whole buffer and returns its chunks in file order.
func ReadAll(buf []byte) ([]Chunk, error) {
	r, err := NewReader(buf)
	if err != nil {
		return nil, err
	}
	var chunks []Chunk
	for {
		c, err := r.Next()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, c)
	}
}

// core/textchunk/decode.go
package textchunk

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"pngtext-core/pngfile"
)

// Record is a decoded text-bearing chunk. Offsets are the chunk's span in
// the source file (Start of the length field, End one past the CRC).
type Record struct {
	Start   int64
	End     int64
	Type    string
	Keyword string
	Text    string
}

// DecodeError reports a single text chunk whose payload could not be
// decoded. It is non-fatal: callers skip the chunk and keep scanning.
type DecodeError struct {
	Offset int64
	Type   string
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s chunk at offset %d: %s", e.Type, e.Offset, e.Msg)
}

func decodeErrf(c pngfile.Chunk, format string, a ...any) *DecodeError {
	return &DecodeError{Offset: c.Start, Type: c.Type, Msg: fmt.Sprintf(format, a...)}
}

// IsTextChunk reports whether typ carries embedded text.
func IsTextChunk(typ string) bool {
	switch typ {
	case pngfile.TypeTEXt, pngfile.TypeZTXt, pngfile.TypeITXt:
		return true
	}
	return false
}

// Decode converts a text-bearing chunk into a Record. Chunks of any other
// type are a caller bug and yield a *DecodeError.
func Decode(c pngfile.Chunk) (Record, error) {
	rec := Record{Start: c.Start, End: c.End, Type: c.Type}
	var err error
	switch c.Type {
	case pngfile.TypeTEXt:
		rec.Keyword, rec.Text, err = decodeTEXt(c)
	case pngfile.TypeZTXt:
		rec.Keyword, rec.Text, err = decodeZTXt(c)
	case pngfile.TypeITXt:
		rec.Keyword, rec.Text, err = decodeITXt(c)
	default:
		err = decodeErrf(c, "not a text chunk type")
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// tEXt: keyword, NUL, Latin-1 value.
func decodeTEXt(c pngfile.Chunk) (string, string, error) {
	key, val, ok := bytes.Cut(c.Data, []byte{0})
	if !ok {
		return "", "", decodeErrf(c, "no NUL separator after keyword")
	}
	keyword, err := latin1(key)
	if err != nil {
		return "", "", decodeErrf(c, "keyword: %v", err)
	}
	text, err := latin1(val)
	if err != nil {
		return "", "", decodeErrf(c, "value: %v", err)
	}
	return keyword, text, nil
}

// zTXt: keyword, NUL, compression method byte, zlib-compressed Latin-1 value.
func decodeZTXt(c pngfile.Chunk) (string, string, error) {
	key, rest, ok := bytes.Cut(c.Data, []byte{0})
	if !ok {
		return "", "", decodeErrf(c, "no NUL separator after keyword")
	}
	if len(rest) < 1 {
		return "", "", decodeErrf(c, "missing compression method byte")
	}
	if method := rest[0]; method != 0 {
		return "", "", decodeErrf(c, "unsupported compression method %d", method)
	}
	raw, err := inflate(rest[1:])
	if err != nil {
		return "", "", decodeErrf(c, "inflate: %v", err)
	}
	keyword, err := latin1(key)
	if err != nil {
		return "", "", decodeErrf(c, "keyword: %v", err)
	}
	text, err := latin1(raw)
	if err != nil {
		return "", "", decodeErrf(c, "value: %v", err)
	}
	return keyword, text, nil
}

// iTXt: keyword, NUL, compression flag, compression method, language tag,
// NUL, translated keyword, NUL, UTF-8 text (zlib-compressed when the flag
// is 1).
func decodeITXt(c pngfile.Chunk) (string, string, error) {
	key, rest, ok := bytes.Cut(c.Data, []byte{0})
	if !ok {
		return "", "", decodeErrf(c, "no NUL separator after keyword")
	}
	if len(rest) < 2 {
		return "", "", decodeErrf(c, "missing compression flag/method")
	}
	compFlag, compMethod := rest[0], rest[1]
	if _, rest, ok = bytes.Cut(rest[2:], []byte{0}); !ok {
		return "", "", decodeErrf(c, "no NUL separator after language tag")
	}
	if _, rest, ok = bytes.Cut(rest, []byte{0}); !ok {
		return "", "", decodeErrf(c, "no NUL separator after translated keyword")
	}

	switch {
	case compFlag == 0:
		// uncompressed
	case compFlag == 1 && compMethod == 0:
		raw, err := inflate(rest)
		if err != nil {
			return "", "", decodeErrf(c, "inflate: %v", err)
		}
		rest = raw
	default:
		return "", "", decodeErrf(c, "unsupported compression flag %d method %d", compFlag, compMethod)
	}
	if !utf8.Valid(rest) {
		return "", "", decodeErrf(c, "text is not valid UTF-8")
	}
	if !utf8.Valid(key) {
		return "", "", decodeErrf(c, "keyword is not valid UTF-8")
	}
	return string(key), string(rest), nil
}

// latin1 decodes ISO 8859-1 bytes to a UTF-8 string.
func latin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func inflate(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

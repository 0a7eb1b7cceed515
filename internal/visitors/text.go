// internal/visitors/text.go
package visitors

import (
	"github.com/rs/zerolog"

	"pngtext-core/pngfile"
	"pngtext-core/textchunk"
)

// Text keeps text-bearing chunks, decoded to records. Text chunks whose
// payload cannot be decoded are logged at warn level and skipped; the scan
// continues.
func Text(log zerolog.Logger) func(pngfile.Chunk) (bool, textchunk.Record, error) {
	return func(c pngfile.Chunk) (bool, textchunk.Record, error) {
		if !textchunk.IsTextChunk(c.Type) {
			log.Debug().Str("type", c.Type).Int64("offset", c.Start).Msg("skipping non-text chunk")
			return false, textchunk.Record{}, nil
		}
		rec, err := textchunk.Decode(c)
		if err != nil {
			log.Warn().Err(err).Msg("skipping undecodable text chunk")
			return false, textchunk.Record{}, nil
		}
		return true, rec, nil
	}
}

// internal/visitors/chunks.go
package visitors

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"pngtext-core/pngfile"
	"pngtext-core/textchunk"
	"pngtext/internal/lsoutput"
)

// Chunks keeps every chunk as a pngls row, attaching decoded detail where
// the type is understood. Decode problems degrade to a bare row with a
// warning; they never abort the listing.
func Chunks(log zerolog.Logger) func(pngfile.Chunk) (bool, lsoutput.Row, error) {
	return func(c pngfile.Chunk) (bool, lsoutput.Row, error) {
		row := lsoutput.Row{
			Start:  c.Start,
			End:    c.End,
			Type:   c.Type,
			Length: len(c.Data),
			Known:  pngfile.Known(c.Type),
		}
		switch {
		case c.Type == pngfile.TypeIHDR:
			h, err := pngfile.ParseIHDR(c)
			if err != nil {
				log.Warn().Err(err).Msg("corrupt IHDR")
				break
			}
			row.Detail = fmt.Sprintf("%dx%d depth=%d color-type=%d interlace=%d",
				h.Width, h.Height, h.Depth, h.ColorType, h.Interlace)
		case textchunk.IsTextChunk(c.Type):
			rec, err := textchunk.Decode(c)
			if err != nil {
				log.Warn().Err(err).Msg("undecodable text chunk")
				break
			}
			row.Detail = "keyword " + strconv.Quote(rec.Keyword)
		}
		return true, row, nil
	}
}

// internal/output/json.go
package output

import (
	"io"

	"pngtext-core/textchunk"
	"pngtext/internal/jsonutil"
	"pngtext/pkg/api"
)

// ToAPIRecord converts a decoded record to the stable wire schema (v1).
func ToAPIRecord(r textchunk.Record) api.TextRecordV1 {
	return api.TextRecordV1{
		Start:   r.Start,
		End:     r.End,
		Type:    r.Type,
		Keyword: r.Keyword,
		Text:    r.Text,
	}
}

func toAPIRecords(list []textchunk.Record) []api.TextRecordV1 {
	out := make([]api.TextRecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return out
}

// WriteJSON writes a single pretty-printed JSON array of v1 records.
// The array is always present, even when empty.
func WriteJSON(w io.Writer, list []textchunk.Record) error {
	return jsonutil.EncodePretty(w, toAPIRecords(list))
}

// WriteJSONL writes one v1 record per line.
func WriteJSONL(w io.Writer, list []textchunk.Record) error {
	return jsonutil.EncodeLines(w, toAPIRecords(list))
}

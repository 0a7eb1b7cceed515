// internal/lsoutput/rows.go
package lsoutput

import "pngtext/pkg/api"

// Row is one chunk of the scanned file as pngls reports it.
type Row struct {
	Start  int64
	End    int64
	Type   string
	Length int
	Known  bool
	Detail string
}

// ToAPIRow converts a row to the stable wire schema (v1).
func ToAPIRow(r Row) api.ChunkV1 {
	return api.ChunkV1{
		Start:  r.Start,
		End:    r.End,
		Type:   r.Type,
		Length: r.Length,
		Known:  r.Known,
		Detail: r.Detail,
	}
}

// pkg/api/chunks_v1.go
package api

// ChunkV1 is the stable wire schema for one chunk row of pngls.
type ChunkV1 struct {
	Start  int64  `json:"start"`
	End    int64  `json:"end"`
	Type   string `json:"type"`
	Length int    `json:"length"`
	Known  bool   `json:"known"`
	Detail string `json:"detail,omitempty"`
}

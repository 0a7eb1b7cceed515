// pkg/api/records_v1.go
package api

// TextRecordV1 is the stable wire schema for a decoded text chunk.
// Offsets are the chunk's byte span in the source file: start of the
// length field, end one past the CRC.
type TextRecordV1 struct {
	Start   int64  `json:"start"`
	End     int64  `json:"end"`
	Type    string `json:"type"`
	Keyword string `json:"keyword"`
	Text    string `json:"text"`
}

// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"pngtext/internal/app"
	"pngtext/pkg/api"
)

var pngSig = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

var ihdrData = []byte{
	0, 0, 0, 160, // width
	0, 0, 0, 120, // height
	8, 2, 0, 0, 0,
}

func chunk(typ string, data []byte) []byte {
	buf := binary.BigEndian.AppendUint32(nil, uint32(len(data)))
	buf = append(buf, typ...)
	buf = append(buf, data...)
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	return binary.BigEndian.AppendUint32(buf, crc.Sum32())
}

func writeFile(t *testing.T, name string, parts ...[]byte) string {
	t.Helper()
	var buf []byte
	for _, p := range parts {
		buf = append(buf, p...)
	}
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// writeSample lays out sig + IHDR + gAMA + tEXt + IEND so the tEXt chunk
// spans bytes 49-74.
func writeSample(t *testing.T) string {
	t.Helper()
	return writeFile(t, "sample.png",
		pngSig,
		chunk("IHDR", ihdrData),
		chunk("gAMA", []byte{0, 1, 134, 160}),
		chunk("tEXt", []byte("Title\x00PngSuite")),
		chunk("IEND", nil),
	)
}

func deflate(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("zlib: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib: %v", err)
	}
	return buf.Bytes()
}

func TestEndToEndText(t *testing.T) {
	fn := writeSample(t)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fn}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	want := "[00000049-00000074] tEXt:\nTitle PngSuite\n\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestNoArgsUsageOnStderr(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run(nil, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("Usage")) {
		t.Errorf("stderr missing usage: %q", errBuf.String())
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("missing <file>")) {
		t.Errorf("stderr missing cause: %q", errBuf.String())
	}
}

func TestHelpToStdout(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-h"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !bytes.Contains(out.Bytes(), []byte("Usage")) {
		t.Errorf("stdout missing usage: %q", out.String())
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestUnreadableFile(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{filepath.Join(t.TempDir(), "nope.png")}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if out.Len() != 0 || errBuf.Len() == 0 {
		t.Errorf("stdout = %q, stderr = %q", out.String(), errBuf.String())
	}
}

func TestNotAPNG(t *testing.T) {
	fn := writeFile(t, "plain.txt", []byte("just text, no signature"))

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fn}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("signature")) {
		t.Errorf("stderr = %q, want signature error", errBuf.String())
	}
}

func TestTruncatedChunk(t *testing.T) {
	truncated := chunk("tEXt", []byte("Author\x00nobody"))[:10]
	fn := writeFile(t, "cut.png", pngSig, chunk("IHDR", ihdrData), truncated)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fn}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("partial stdout on truncated input: %q", out.String())
	}
}

func TestUndecodableChunkIsSkipped(t *testing.T) {
	fn := writeFile(t, "mixed.png",
		pngSig,
		chunk("IHDR", ihdrData),
		chunk("zTXt", []byte("Comment\x00\x00not a zlib stream")),
		chunk("tEXt", []byte("Title\x00still here")),
		chunk("IEND", nil),
	)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fn}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("Title still here")) {
		t.Errorf("good record missing: %q", out.String())
	}
	if bytes.Contains(out.Bytes(), []byte("zTXt")) {
		t.Errorf("bad record printed: %q", out.String())
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("skipping undecodable text chunk")) {
		t.Errorf("stderr missing warning: %q", errBuf.String())
	}

	// --quiet drops the warning but keeps the records.
	out.Reset()
	errBuf.Reset()
	if code := app.Run([]string{fn, "-q"}, &out, &errBuf); code != 0 {
		t.Fatalf("quiet exit %d", code)
	}
	if errBuf.Len() != 0 {
		t.Errorf("quiet stderr = %q, want empty", errBuf.String())
	}
}

func TestAllThreeTextKinds(t *testing.T) {
	ztxt := append([]byte("Copyright\x00\x00"), deflate(t, "public domain")...)
	itxt := []byte("Source\x00\x00\x00en\x00\x00scanner")
	fn := writeFile(t, "kinds.png",
		pngSig,
		chunk("IHDR", ihdrData),
		chunk("tEXt", []byte("Title\x00x")),
		chunk("zTXt", ztxt),
		chunk("iTXt", itxt),
		chunk("IEND", nil),
	)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fn, "--output", "json"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	var recs []api.TextRecordV1
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	wantTypes := []string{"tEXt", "zTXt", "iTXt"}
	prevStart := int64(-1)
	for i, r := range recs {
		if r.Type != wantTypes[i] {
			t.Errorf("record %d type = %q, want %q", i, r.Type, wantTypes[i])
		}
		if r.Start <= prevStart {
			t.Errorf("record %d start %d not increasing", i, r.Start)
		}
		prevStart = r.Start
	}
	if recs[1].Text != "public domain" || recs[2].Text != "scanner" {
		t.Errorf("decoded texts = %q, %q", recs[1].Text, recs[2].Text)
	}
}

func TestIdempotentOutput(t *testing.T) {
	fn := writeSample(t)

	run := func() (string, string) {
		var out, errBuf bytes.Buffer
		if code := app.Run([]string{fn}, &out, &errBuf); code != 0 {
			t.Fatalf("exit %d", code)
		}
		return out.String(), errBuf.String()
	}
	out1, err1 := run()
	out2, err2 := run()
	if out1 != out2 || err1 != err2 {
		t.Fatalf("output differs across runs:\n%q\n%q", out1, out2)
	}
}

func TestJSONLOutput(t *testing.T) {
	fn := writeSample(t)

	var out, errBuf bytes.Buffer
	if code := app.Run([]string{fn, "-o", "jsonl"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	var rec api.TextRecordV1
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &rec); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if rec.Start != 49 || rec.End != 74 || rec.Keyword != "Title" || rec.Text != "PngSuite" {
		t.Errorf("record = %+v", rec)
	}
}

func TestNoTextChunksIsSuccess(t *testing.T) {
	fn := writeFile(t, "bare.png",
		pngSig,
		chunk("IHDR", ihdrData),
		chunk("IEND", nil),
	)

	var out, errBuf bytes.Buffer
	if code := app.Run([]string{fn}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !bytes.Contains(out.Bytes(), []byte("pngtext version")) {
		t.Errorf("stdout = %q", out.String())
	}
}

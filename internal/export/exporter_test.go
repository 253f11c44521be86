package export

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"doclink/internal/buffer"
	"doclink/internal/linker"
)

func sampleDocs(t *testing.T) []Document {
	t.Helper()
	buf := buffer.New("manual.txt", "See function `save-buffer'.")
	err := buf.Attach(&buffer.Annotation{
		ID:     "a1",
		Span:   buffer.Span{Start: 14, End: 25},
		Cat:    buffer.CategoryFunction,
		Symbol: "save-buffer",
		Hint:   "describe this function",
	})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	return []Document{FromBuffer(buf, linker.ScanStats{Matches: 1, Linked: 1})}
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	if err := Write(&out, sampleDocs(t), FormatJSON, false); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var docs []Document
	if err := json.Unmarshal(out.Bytes(), &docs); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(docs) != 1 || docs[0].Buffer != "manual.txt" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
	if len(docs[0].Annotations) != 1 {
		t.Fatalf("expected 1 annotation row, got %d", len(docs[0].Annotations))
	}
	row := docs[0].Annotations[0]
	if row.Symbol != "save-buffer" || row.Category != "function" {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Start != 14 || row.End != 25 {
		t.Errorf("span lost: %+v", row)
	}
}

func TestWriteYAML(t *testing.T) {
	var out bytes.Buffer
	if err := Write(&out, sampleDocs(t), FormatYAML, false); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var docs []Document
	if err := yaml.Unmarshal(out.Bytes(), &docs); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(docs) != 1 || docs[0].Matches != 1 || docs[0].Linked != 1 {
		t.Fatalf("unexpected documents: %+v", docs)
	}
}

func TestWriteCompressed(t *testing.T) {
	var out bytes.Buffer
	if err := Write(&out, sampleDocs(t), FormatJSON, true); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	zr, err := zstd.NewReader(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("output is not a zstd stream: %v", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompression failed: %v", err)
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		t.Fatalf("decompressed payload is not valid json: %v", err)
	}
	if len(docs) != 1 || docs[0].Buffer != "manual.txt" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	if err := Write(&out, nil, Format("xml"), false); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

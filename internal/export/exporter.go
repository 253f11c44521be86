// Package export serializes scan results for downstream tooling, as JSON
// or YAML, optionally zstd-compressed.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"doclink/internal/buffer"
	"doclink/internal/linker"
)

// Format selects the serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// AnnotationRow is one exported annotation.
type AnnotationRow struct {
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Category string `json:"category" yaml:"category"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Hint     string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Document is the export record for one scanned buffer.
type Document struct {
	Buffer      string          `json:"buffer" yaml:"buffer"`
	Matches     int             `json:"matches" yaml:"matches"`
	Linked      int             `json:"linked" yaml:"linked"`
	Annotations []AnnotationRow `json:"annotations" yaml:"annotations"`
}

// FromBuffer builds the export record for a scanned buffer.
func FromBuffer(buf *buffer.Buffer, stats linker.ScanStats) Document {
	doc := Document{
		Buffer:  buf.Name(),
		Matches: stats.Matches,
		Linked:  stats.Linked,
	}
	for _, a := range buf.Annotations() {
		doc.Annotations = append(doc.Annotations, AnnotationRow{
			Start:    a.Span.Start,
			End:      a.Span.End,
			Category: string(a.Cat),
			Symbol:   a.Symbol,
			Hint:     a.Hint,
		})
	}
	return doc
}

// Write serializes documents to w. With compress set, output is a zstd
// stream wrapping the chosen format.
func Write(w io.Writer, docs []Document, format Format, compress bool) error {
	if compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		if err := encode(zw, docs, format); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}
	return encode(w, docs, format)
}

func encode(w io.Writer, docs []Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

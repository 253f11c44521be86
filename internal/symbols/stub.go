//go:build !cgo

// Stub used when CGO is not available; registry builds fall back to SCIP
// indexes and SYMBOLS.toml declarations.
package symbols

import "context"

// Extractor extracts declarations from source files using tree-sitter.
// This is a stub implementation when CGO is not available.
type Extractor struct{}

// NewExtractor returns a no-op extractor when CGO is not available.
func NewExtractor() *Extractor { return &Extractor{} }

// IsAvailable returns whether tree-sitter extraction is available.
func IsAvailable() bool { return false }

// ExtractFile extracts all declarations from a single file.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]Decl, error) {
	return nil, nil
}

// ExtractSource extracts declarations from source bytes.
func (e *Extractor) ExtractSource(ctx context.Context, path string, source []byte, lang Language) ([]Decl, error) {
	return nil, nil
}

// ExtractDirectory walks a directory tree and extracts all declarations.
func (e *Extractor) ExtractDirectory(ctx context.Context, root string, exclude []string) ([]Decl, error) {
	return nil, nil
}

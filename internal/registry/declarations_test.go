package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDeclarations(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DeclarationsFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write declarations file: %v", err)
	}
	return path
}

func TestLoadDeclarations(t *testing.T) {
	path := writeDeclarations(t, `
[[symbols]]
name = "highlight"
kind = "face"
doc = "Face for highlighted regions."

[[symbols]]
name = "save-buffer"
kind = "function"
file = "editor.go"
line = 80
`)

	syms, err := LoadDeclarations(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(syms) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(syms))
	}

	if syms[0].Name != "highlight" || syms[0].Kind != KindFace {
		t.Errorf("unexpected first symbol: %+v", syms[0])
	}
	if syms[0].Doc != "Face for highlighted regions." {
		t.Errorf("doc not carried over: %q", syms[0].Doc)
	}
	if syms[1].File != "editor.go" || syms[1].Line != 80 {
		t.Errorf("location not carried over: %+v", syms[1])
	}
}

func TestLoadDeclarationsMissingFileIsOptional(t *testing.T) {
	syms, err := LoadDeclarations(filepath.Join(t.TempDir(), DeclarationsFile))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if syms != nil {
		t.Errorf("expected no symbols, got %v", syms)
	}
}

func TestLoadDeclarationsRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown kind", "[[symbols]]\nname = \"x\"\nkind = \"widget\"\n"},
		{"missing name", "[[symbols]]\nkind = \"function\"\n"},
		{"malformed toml", "[[symbols\nname ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDeclarations(t, tt.content)
			if _, err := LoadDeclarations(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

package detail

import (
	"strings"
	"testing"

	"doclink/internal/registry"
)

func TestDescribe(t *testing.T) {
	ix := registry.NewIndex()
	ix.AddAll([]*registry.Symbol{
		{
			Name: "save-buffer", Kind: registry.KindFunction,
			Doc: "Save the current buffer to its file.", File: "editor.go", Line: 80,
		},
		{Name: "highlight", Kind: registry.KindFace},
	})

	v := Describe(ix, "save-buffer", registry.KindFunction)
	if v.Title != "save-buffer" {
		t.Errorf("title: got %q", v.Title)
	}
	if !strings.Contains(v.Body, "save-buffer is a function defined in editor.go.") {
		t.Errorf("body missing summary line: %q", v.Body)
	}
	if !strings.Contains(v.Body, "Save the current buffer to its file.") {
		t.Errorf("body missing doc string: %q", v.Body)
	}
	if v.File != "editor.go" || v.Line != 80 {
		t.Errorf("location lost: file=%q line=%d", v.File, v.Line)
	}

	// No file, no doc: summary line only.
	v = Describe(ix, "highlight", registry.KindFace)
	if v.Body != "highlight is a face." {
		t.Errorf("unexpected body %q", v.Body)
	}

	// Unknown symbols still get a view; dispatch guards existence upstream.
	v = Describe(ix, "no-such", registry.KindFunction)
	if !strings.Contains(v.Body, "not documented") {
		t.Errorf("unexpected body %q", v.Body)
	}
}

func TestDefinition(t *testing.T) {
	v := Definition("save-buffer", "editor.go", 80)
	if v.Body != "save-buffer is defined in editor.go, line 80." {
		t.Errorf("unexpected body %q", v.Body)
	}

	v = Definition("save-buffer", "editor.go", 0)
	if v.Body != "save-buffer is defined in editor.go." {
		t.Errorf("unexpected body %q", v.Body)
	}
	if v.Line != 0 {
		t.Errorf("expected line 0, got %d", v.Line)
	}
}

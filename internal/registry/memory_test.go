package registry

import "testing"

func sampleIndex() *Index {
	ix := NewIndex()
	ix.AddAll([]*Symbol{
		{Name: "save-buffer", Kind: KindFunction, File: "editor.go", Line: 80},
		{Name: "fill-column", Kind: KindVariable, File: "editor.go", Line: 12},
		{Name: "highlight", Kind: KindFace},
		{Name: "dual", Kind: KindVariable, File: "vars.go", Line: 5},
		{Name: "dual", Kind: KindFunction},
	})
	return ix
}

func TestIndexProbes(t *testing.T) {
	ix := sampleIndex()

	tests := []struct {
		name                       string
		known, isFn, isVar, isFace bool
	}{
		{"save-buffer", true, true, false, false},
		{"fill-column", true, false, true, false},
		{"highlight", true, false, false, true},
		{"dual", true, true, true, false},
		{"no-such", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.Known(tt.name); got != tt.known {
				t.Errorf("Known: expected %v, got %v", tt.known, got)
			}
			if got := ix.IsFunction(tt.name); got != tt.isFn {
				t.Errorf("IsFunction: expected %v, got %v", tt.isFn, got)
			}
			if got := ix.IsVariable(tt.name); got != tt.isVar {
				t.Errorf("IsVariable: expected %v, got %v", tt.isVar, got)
			}
			if got := ix.IsFace(tt.name); got != tt.isFace {
				t.Errorf("IsFace: expected %v, got %v", tt.isFace, got)
			}
		})
	}
}

func TestIndexAddReplaces(t *testing.T) {
	ix := NewIndex()
	ix.Add(&Symbol{Name: "x", Kind: KindFunction, Line: 1})
	ix.Add(&Symbol{Name: "x", Kind: KindFunction, Line: 2})

	sym, ok := ix.Lookup("x", KindFunction)
	if !ok {
		t.Fatal("symbol not found")
	}
	if sym.Line != 2 {
		t.Errorf("expected replacement entry, got line %d", sym.Line)
	}
	if ix.Len() != 1 {
		t.Errorf("expected 1 name, got %d", ix.Len())
	}
}

func TestFindDefinition(t *testing.T) {
	ix := sampleIndex()

	tests := []struct {
		name string
		file string
		line int
	}{
		// Function record wins when it carries a file.
		{"save-buffer", "editor.go", 80},
		{"fill-column", "editor.go", 12},
		// The function record has no file; the variable record does.
		{"dual", "vars.go", 5},
		// Known but no record names a file.
		{"highlight", "", 0},
		{"no-such", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, line := ix.FindDefinition(tt.name)
			if file != tt.file || line != tt.line {
				t.Errorf("expected (%q, %d), got (%q, %d)", tt.file, tt.line, file, line)
			}
		})
	}
}

func TestFindDefinitionFileWithoutLine(t *testing.T) {
	ix := NewIndex()
	ix.Add(&Symbol{Name: "partial", Kind: KindFunction, File: "lib.go"})

	file, line := ix.FindDefinition("partial")
	if file != "lib.go" || line != 0 {
		t.Errorf("expected (lib.go, 0), got (%q, %d)", file, line)
	}
}

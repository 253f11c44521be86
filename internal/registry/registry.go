// Package registry implements the symbol registry the linker core probes:
// existence checks per kind, symbol lookup, and definition location search.
// Symbols are contributed by tree-sitter extraction, SCIP indexes, and a
// manual SYMBOLS.toml declarations file.
package registry

// Symbol kinds. Faces only ever come from declarations; code extraction
// contributes functions and variables.
const (
	KindFunction = "function"
	KindVariable = "variable"
	KindFace     = "face"
)

// Symbol is a registry entry.
type Symbol struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Doc    string `json:"doc,omitempty"`
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Source string `json:"source,omitempty"`
}

// Registry answers existence probes and lookups for the linker core.
// Probes are never cached by callers; each scan re-probes.
type Registry interface {
	// Known reports whether the name resolves to any registered symbol.
	Known(name string) bool

	// IsFunction reports whether the name is bound as a function.
	IsFunction(name string) bool

	// IsVariable reports whether the name is bound as a variable.
	IsVariable(name string) bool

	// IsFace reports whether the name is a known display face.
	IsFace(name string) bool

	// Lookup retrieves the symbol registered under (name, kind).
	Lookup(name, kind string) (*Symbol, bool)

	// FindDefinition locates the defining file of a symbol. The outcome is
	// three-way: ("", 0) when no defining file is known; (file, 0) when the
	// file is known but the exact location within it is not; (file, line)
	// when both are known.
	FindDefinition(name string) (file string, line int)
}

// definitionOf implements the three-way FindDefinition contract over a
// symbol lookup, preferring function records over variable and face ones.
func definitionOf(lookup func(name, kind string) (*Symbol, bool), name string) (string, int) {
	for _, kind := range []string{KindFunction, KindVariable, KindFace} {
		sym, ok := lookup(name, kind)
		if !ok || sym.File == "" {
			continue
		}
		return sym.File, sym.Line
	}
	return "", 0
}

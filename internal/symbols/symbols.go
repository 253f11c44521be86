// Package symbols extracts function and variable declarations from source
// files with tree-sitter, to populate the symbol registry.
package symbols

// Decl is a declaration extracted from source code.
type Decl struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // "function" or "variable"
	File string `json:"file"`
	Line int    `json:"line"` // 1-indexed
}

// Language identifies a supported source language.
type Language string

const (
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
)

// LanguageFromExtension maps a lowercase file extension to a language.
func LanguageFromExtension(ext string) (Language, bool) {
	switch ext {
	case ".go":
		return LangGo, true
	case ".js", ".mjs", ".cjs":
		return LangJavaScript, true
	case ".py":
		return LangPython, true
	}
	return "", false
}

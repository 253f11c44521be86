package registry

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// DeclarationsFile is the default filename for manual symbol declarations.
const DeclarationsFile = "SYMBOLS.toml"

// SymbolDeclaration is one declared symbol in SYMBOLS.toml. Declarations
// cover what code extraction cannot see, faces in particular.
type SymbolDeclaration struct {
	// Name is the symbol name exactly as documentation quotes it
	Name string `toml:"name"`

	// Kind is "function", "variable", or "face"
	Kind string `toml:"kind"`

	// Doc is the description shown when a link is activated
	Doc string `toml:"doc,omitempty"`

	// File is the repo-relative defining file, if known
	File string `toml:"file,omitempty"`

	// Line is the definition line within File, if known
	Line int `toml:"line,omitempty"`
}

type declarationsDoc struct {
	Symbols []SymbolDeclaration `toml:"symbols"`
}

// LoadDeclarations reads a SYMBOLS.toml file into registry symbols.
// A missing file is not an error; manual declarations are optional.
func LoadDeclarations(path string) ([]*Symbol, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read declarations file: %w", err)
	}

	var doc declarationsDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var syms []*Symbol
	for i, decl := range doc.Symbols {
		if decl.Name == "" {
			return nil, fmt.Errorf("%s: symbol %d has no name", path, i)
		}
		switch decl.Kind {
		case KindFunction, KindVariable, KindFace:
		default:
			return nil, fmt.Errorf("%s: symbol %q has unknown kind %q", path, decl.Name, decl.Kind)
		}
		syms = append(syms, &Symbol{
			Name: decl.Name,
			Kind: decl.Kind,
			Doc:  decl.Doc,
			File: decl.File,
			Line: decl.Line,
		})
	}
	return syms, nil
}

//go:build cgo

package symbols

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
)

// Extractor extracts declarations from source files using tree-sitter.
type Extractor struct {
	parser *sitter.Parser
}

// NewExtractor creates a new declaration extractor.
func NewExtractor() *Extractor {
	return &Extractor{parser: sitter.NewParser()}
}

// IsAvailable returns whether tree-sitter extraction is available.
func IsAvailable() bool { return true }

// ExtractFile extracts all declarations from a single file.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]Decl, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lang, ok := LanguageFromExtension(strings.ToLower(filepath.Ext(path)))
	if !ok {
		return nil, nil
	}
	return e.ExtractSource(ctx, path, source, lang)
}

// ExtractSource extracts declarations from source bytes.
func (e *Extractor) ExtractSource(ctx context.Context, path string, source []byte, lang Language) ([]Decl, error) {
	tsLang, err := grammar(lang)
	if err != nil {
		return nil, err
	}

	e.parser.SetLanguage(tsLang)
	tree, err := e.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	root := tree.RootNode()

	var decls []Decl
	for _, node := range findNodes(root, functionNodeTypes(lang)) {
		if name := declName(node, source); name != "" {
			decls = append(decls, Decl{
				Name: name,
				Kind: "function",
				File: path,
				Line: int(node.StartPoint().Row) + 1,
			})
		}
	}
	for _, node := range findNodes(root, variableNodeTypes(lang)) {
		if name := declName(node, source); name != "" {
			decls = append(decls, Decl{
				Name: name,
				Kind: "variable",
				File: path,
				Line: int(node.StartPoint().Row) + 1,
			})
		}
	}

	return decls, nil
}

// ExtractDirectory walks a directory tree and extracts all declarations.
func (e *Extractor) ExtractDirectory(ctx context.Context, root string, exclude []string) ([]Decl, error) {
	var all []Decl

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			name := info.Name()
			if strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			for _, ex := range exclude {
				if name == ex {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if _, ok := LanguageFromExtension(strings.ToLower(filepath.Ext(path))); !ok {
			return nil
		}

		decls, err := e.ExtractFile(ctx, path)
		if err != nil {
			return nil // skip unparsable files
		}
		all = append(all, decls...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func grammar(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangGo:
		return golang.GetLanguage(), nil
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangPython:
		return python.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}

func functionNodeTypes(lang Language) []string {
	switch lang {
	case LangGo:
		return []string{"function_declaration", "method_declaration"}
	case LangJavaScript:
		return []string{"function_declaration", "method_definition", "generator_function_declaration"}
	case LangPython:
		return []string{"function_definition"}
	}
	return nil
}

func variableNodeTypes(lang Language) []string {
	switch lang {
	case LangGo:
		return []string{"var_spec", "const_spec"}
	case LangJavaScript:
		return []string{"variable_declarator"}
	case LangPython:
		// Python module-level assignment targets are too noisy to index.
		return nil
	}
	return nil
}

// declName returns the declared identifier of a declaration node.
func declName(node *sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		for i := uint32(0); i < node.ChildCount(); i++ {
			child := node.Child(int(i))
			if child != nil && child.Type() == "identifier" {
				nameNode = child
				break
			}
		}
	}
	if nameNode == nil {
		return ""
	}
	return string(source[nameNode.StartByte():nameNode.EndByte()])
}

// findNodes collects all descendants of root whose type is in types.
func findNodes(root *sitter.Node, types []string) []*sitter.Node {
	if len(types) == 0 {
		return nil
	}

	var result []*sitter.Node
	var walk func(*sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		for _, t := range types {
			if node.Type() == t {
				result = append(result, node)
				break
			}
		}
		for i := uint32(0); i < node.ChildCount(); i++ {
			walk(node.Child(int(i)))
		}
	}
	walk(root)
	return result
}

package registry

import (
	"fmt"
	"os"
	"strings"

	scippb "github.com/sourcegraph/scip/bindings/go/scip"
	"google.golang.org/protobuf/proto"

	"doclink/internal/errors"
)

// LoadSCIP reads a SCIP index and converts its symbols into registry
// entries. Functions and methods register as functions; variables,
// constants, fields, and properties register as variables. Definition
// occurrences supply file and line.
func LoadSCIP(path string) ([]*Symbol, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.IndexMissing,
			fmt.Sprintf("SCIP index not found at %s", path), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.InternalError,
			fmt.Sprintf("failed to read SCIP index from %s", path), err)
	}

	var index scippb.Index
	if err := proto.Unmarshal(data, &index); err != nil {
		return nil, errors.New(errors.InternalError,
			fmt.Sprintf("failed to parse SCIP index from %s", path), err)
	}

	// Definition occurrences, keyed by SCIP symbol ID.
	type defsite struct {
		file string
		line int
	}
	defs := make(map[string]defsite)
	for _, doc := range index.Documents {
		for _, occ := range doc.Occurrences {
			if occ.SymbolRoles&int32(scippb.SymbolRole_Definition) == 0 {
				continue
			}
			line := 0
			if len(occ.Range) > 0 {
				line = int(occ.Range[0]) + 1
			}
			defs[occ.Symbol] = defsite{file: doc.RelativePath, line: line}
		}
	}

	var syms []*Symbol
	seen := make(map[string]bool)
	for _, doc := range index.Documents {
		for _, info := range doc.Symbols {
			if strings.HasPrefix(info.Symbol, "local ") {
				continue
			}

			kind := kindFromSCIP(info)
			if kind == "" {
				continue
			}

			name := displayName(info)
			if name == "" || seen[name+"\x00"+kind] {
				continue
			}
			seen[name+"\x00"+kind] = true

			sym := &Symbol{
				Name: name,
				Kind: kind,
				Doc:  strings.Join(info.Documentation, "\n"),
			}
			if d, ok := defs[info.Symbol]; ok {
				sym.File = d.file
				sym.Line = d.line
			}
			syms = append(syms, sym)
		}
	}

	return syms, nil
}

// kindFromSCIP maps a SCIP symbol to a registry kind, or "" to skip it.
// scip-go does not always populate Kind, so symbol ID shape is the
// fallback: descriptors ending in "()." are functions.
func kindFromSCIP(info *scippb.SymbolInformation) string {
	switch info.Kind {
	case scippb.SymbolInformation_Function,
		scippb.SymbolInformation_Method,
		scippb.SymbolInformation_Macro,
		scippb.SymbolInformation_Constructor:
		return KindFunction
	case scippb.SymbolInformation_Variable,
		scippb.SymbolInformation_Constant,
		scippb.SymbolInformation_Field,
		scippb.SymbolInformation_Property:
		return KindVariable
	}

	if strings.HasSuffix(info.Symbol, ").") {
		return KindFunction
	}
	return ""
}

// displayName extracts the short name documentation text would quote.
// Prefers the index-provided display name; otherwise takes the last
// descriptor segment of the SCIP symbol ID.
func displayName(info *scippb.SymbolInformation) string {
	if info.DisplayName != "" {
		return info.DisplayName
	}

	// SCIP format: "scip-<lang> <manager> <package> <version> <descriptor>"
	parts := strings.Split(info.Symbol, " ")
	descriptor := parts[len(parts)-1]

	descriptor = strings.TrimSuffix(descriptor, "().")
	descriptor = strings.TrimSuffix(descriptor, "()")
	descriptor = strings.TrimSuffix(descriptor, ".")
	descriptor = strings.TrimSuffix(descriptor, "#")

	for _, sep := range []string{"/", ".", "#"} {
		if i := strings.LastIndex(descriptor, sep); i >= 0 {
			descriptor = descriptor[i+1:]
		}
	}
	return descriptor
}

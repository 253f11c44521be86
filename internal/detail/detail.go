// Package detail renders the views shown when a link annotation is
// activated.
package detail

import (
	"fmt"
	"strings"

	"doclink/internal/registry"
)

// View is a rendered symbol description, optionally anchored to a
// definition location.
type View struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	File  string `json:"file,omitempty"`
	Line  int    `json:"line,omitempty"`
}

// Describe renders the detail view for a symbol of the given kind.
func Describe(reg registry.Registry, name, kind string) *View {
	sym, ok := reg.Lookup(name, kind)
	if !ok {
		return &View{
			Title: name,
			Body:  fmt.Sprintf("%s is not documented as a %s.", name, kind),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s", sym.Name, sym.Kind)
	if sym.File != "" {
		fmt.Fprintf(&b, " defined in %s", sym.File)
	}
	b.WriteString(".")
	if sym.Doc != "" {
		b.WriteString("\n\n")
		b.WriteString(sym.Doc)
	}

	return &View{
		Title: sym.Name,
		Body:  b.String(),
		File:  sym.File,
		Line:  sym.Line,
	}
}

// Definition renders the view for a located definition. Line 0 means the
// file was found but the exact location within it was not.
func Definition(name, file string, line int) *View {
	body := fmt.Sprintf("%s is defined in %s.", name, file)
	if line > 0 {
		body = fmt.Sprintf("%s is defined in %s, line %d.", name, file, line)
	}
	return &View{
		Title: name,
		Body:  body,
		File:  file,
		Line:  line,
	}
}

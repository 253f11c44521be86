package registry

// Index is an in-memory Registry. It backs tests and serves as the query
// surface once symbols are loaded from the store.
type Index struct {
	// name -> kind -> symbol
	byName map[string]map[string]*Symbol
}

// NewIndex creates an empty in-memory registry.
func NewIndex() *Index {
	return &Index{byName: make(map[string]map[string]*Symbol)}
}

// Add registers a symbol, replacing any previous entry for (name, kind).
func (ix *Index) Add(sym *Symbol) {
	kinds, ok := ix.byName[sym.Name]
	if !ok {
		kinds = make(map[string]*Symbol)
		ix.byName[sym.Name] = kinds
	}
	kinds[sym.Kind] = sym
}

// AddAll registers a batch of symbols.
func (ix *Index) AddAll(syms []*Symbol) {
	for _, s := range syms {
		ix.Add(s)
	}
}

// Len returns the number of registered names.
func (ix *Index) Len() int { return len(ix.byName) }

// Known reports whether the name resolves to any registered symbol.
func (ix *Index) Known(name string) bool {
	_, ok := ix.byName[name]
	return ok
}

// IsFunction reports whether the name is bound as a function.
func (ix *Index) IsFunction(name string) bool {
	_, ok := ix.byName[name][KindFunction]
	return ok
}

// IsVariable reports whether the name is bound as a variable.
func (ix *Index) IsVariable(name string) bool {
	_, ok := ix.byName[name][KindVariable]
	return ok
}

// IsFace reports whether the name is a known display face.
func (ix *Index) IsFace(name string) bool {
	_, ok := ix.byName[name][KindFace]
	return ok
}

// Lookup retrieves the symbol registered under (name, kind).
func (ix *Index) Lookup(name, kind string) (*Symbol, bool) {
	sym, ok := ix.byName[name][kind]
	return sym, ok
}

// FindDefinition locates the defining file of a symbol (three-way outcome,
// see Registry).
func (ix *Index) FindDefinition(name string) (string, int) {
	return definitionOf(ix.Lookup, name)
}

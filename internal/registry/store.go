package registry

import (
	"doclink/internal/logging"
	"doclink/internal/storage"
)

// SQLRegistry is a Registry backed by the SQLite symbol store. Probe
// failures are logged and reported as non-existence; a broken store must
// never abort a scan pass.
type SQLRegistry struct {
	repo   *storage.SymbolRepository
	logger *logging.Logger
}

// NewSQLRegistry creates a registry over the symbol repository.
func NewSQLRegistry(repo *storage.SymbolRepository, logger *logging.Logger) *SQLRegistry {
	return &SQLRegistry{repo: repo, logger: logger}
}

// Known reports whether the name resolves to any registered symbol.
func (r *SQLRegistry) Known(name string) bool {
	ok, err := r.repo.Known(name)
	if err != nil {
		r.logger.Warn("registry probe failed", map[string]interface{}{
			"symbol": name, "error": err.Error(),
		})
		return false
	}
	return ok
}

func (r *SQLRegistry) existsKind(name, kind string) bool {
	ok, err := r.repo.Exists(name, kind)
	if err != nil {
		r.logger.Warn("registry probe failed", map[string]interface{}{
			"symbol": name, "kind": kind, "error": err.Error(),
		})
		return false
	}
	return ok
}

// IsFunction reports whether the name is bound as a function.
func (r *SQLRegistry) IsFunction(name string) bool { return r.existsKind(name, KindFunction) }

// IsVariable reports whether the name is bound as a variable.
func (r *SQLRegistry) IsVariable(name string) bool { return r.existsKind(name, KindVariable) }

// IsFace reports whether the name is a known display face.
func (r *SQLRegistry) IsFace(name string) bool { return r.existsKind(name, KindFace) }

// Lookup retrieves the symbol registered under (name, kind).
func (r *SQLRegistry) Lookup(name, kind string) (*Symbol, bool) {
	rec, err := r.repo.Get(name, kind)
	if err != nil {
		r.logger.Warn("registry lookup failed", map[string]interface{}{
			"symbol": name, "kind": kind, "error": err.Error(),
		})
		return nil, false
	}
	if rec == nil {
		return nil, false
	}
	return &Symbol{
		Name:   rec.Name,
		Kind:   rec.Kind,
		Doc:    rec.Doc,
		File:   rec.File,
		Line:   rec.Line,
		Source: rec.Source,
	}, true
}

// FindDefinition locates the defining file of a symbol (three-way outcome,
// see Registry).
func (r *SQLRegistry) FindDefinition(name string) (string, int) {
	return definitionOf(r.Lookup, name)
}

// Save persists a batch of symbols under one source tag, replacing that
// source's previous contribution.
func Save(repo *storage.SymbolRepository, syms []*Symbol, source string) error {
	if err := repo.DeleteBySource(source); err != nil {
		return err
	}
	recs := make([]*storage.SymbolRecord, 0, len(syms))
	for _, s := range syms {
		recs = append(recs, &storage.SymbolRecord{
			Name:   s.Name,
			Kind:   s.Kind,
			Doc:    s.Doc,
			File:   s.File,
			Line:   s.Line,
			Source: source,
		})
	}
	if err := repo.UpsertBatch(recs); err != nil {
		return err
	}
	return repo.TouchIndexedAt()
}

// LoadAll reads every stored symbol into an in-memory index.
func LoadAll(repo *storage.SymbolRepository) (*Index, error) {
	recs, err := repo.All()
	if err != nil {
		return nil, err
	}
	ix := NewIndex()
	for _, rec := range recs {
		ix.Add(&Symbol{
			Name:   rec.Name,
			Kind:   rec.Kind,
			Doc:    rec.Doc,
			File:   rec.File,
			Line:   rec.Line,
			Source: rec.Source,
		})
	}
	return ix, nil
}

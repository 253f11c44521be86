package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// SymbolRecord is a persisted registry symbol.
type SymbolRecord struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"` // "function", "variable", "face", or a describer kind
	Doc    string `json:"doc,omitempty"`
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Source string `json:"source"` // "treesitter", "scip", "declared"
}

// SymbolRepository provides database operations for registry symbols.
type SymbolRepository struct {
	db *DB
}

// NewSymbolRepository creates a symbol repository on db.
func NewSymbolRepository(db *DB) *SymbolRepository {
	return &SymbolRepository{db: db}
}

// Upsert inserts or replaces a symbol keyed by (name, kind).
func (r *SymbolRepository) Upsert(rec *SymbolRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO symbols (name, kind, doc, file, line, source)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name, kind) DO UPDATE SET
			doc = excluded.doc,
			file = excluded.file,
			line = excluded.line,
			source = excluded.source
	`, rec.Name, rec.Kind, rec.Doc, rec.File, rec.Line, rec.Source)
	if err != nil {
		return fmt.Errorf("failed to upsert symbol %s/%s: %w", rec.Kind, rec.Name, err)
	}
	return nil
}

// UpsertBatch inserts or replaces symbols in a single transaction.
func (r *SymbolRepository) UpsertBatch(recs []*SymbolRecord) error {
	return r.db.WithTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO symbols (name, kind, doc, file, line, source)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name, kind) DO UPDATE SET
				doc = excluded.doc,
				file = excluded.file,
				line = excluded.line,
				source = excluded.source
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, rec := range recs {
			if _, err := stmt.Exec(rec.Name, rec.Kind, rec.Doc, rec.File, rec.Line, rec.Source); err != nil {
				return fmt.Errorf("failed to upsert symbol %s/%s: %w", rec.Kind, rec.Name, err)
			}
		}
		return nil
	})
}

// Exists reports whether a symbol with the given name and kind is registered.
func (r *SymbolRepository) Exists(name, kind string) (bool, error) {
	var one int
	err := r.db.QueryRow(
		"SELECT 1 FROM symbols WHERE name = ? AND kind = ? LIMIT 1", name, kind,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Known reports whether any symbol with the given name is registered.
func (r *SymbolRepository) Known(name string) (bool, error) {
	var one int
	err := r.db.QueryRow("SELECT 1 FROM symbols WHERE name = ? LIMIT 1", name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get retrieves a symbol by name and kind, or nil when absent.
func (r *SymbolRepository) Get(name, kind string) (*SymbolRecord, error) {
	var rec SymbolRecord
	err := r.db.QueryRow(`
		SELECT id, name, kind, doc, file, line, source
		FROM symbols WHERE name = ? AND kind = ?
	`, name, kind).Scan(&rec.ID, &rec.Name, &rec.Kind, &rec.Doc, &rec.File, &rec.Line, &rec.Source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get symbol: %w", err)
	}
	return &rec, nil
}

// All returns every registered symbol in name order.
func (r *SymbolRepository) All() ([]*SymbolRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, name, kind, doc, file, line, source
		FROM symbols ORDER BY name, kind
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var recs []*SymbolRecord
	for rows.Next() {
		var rec SymbolRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Kind, &rec.Doc, &rec.File, &rec.Line, &rec.Source); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

// DeleteBySource removes all symbols contributed by one source.
func (r *SymbolRepository) DeleteBySource(source string) error {
	_, err := r.db.Exec("DELETE FROM symbols WHERE source = ?", source)
	return err
}

// Count returns the number of registered symbols.
func (r *SymbolRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM symbols").Scan(&n)
	return n, err
}

// SetMeta sets a registry metadata value.
func (r *SymbolRepository) SetMeta(key, value string) error {
	_, err := r.db.Exec(
		"INSERT OR REPLACE INTO registry_meta (key, value) VALUES (?, ?)", key, value,
	)
	return err
}

// GetMeta gets a registry metadata value, or "" when unset.
func (r *SymbolRepository) GetMeta(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM registry_meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// TouchIndexedAt records the time of the last registry build.
func (r *SymbolRepository) TouchIndexedAt() error {
	return r.SetMeta("indexed_at", time.Now().UTC().Format(time.RFC3339))
}

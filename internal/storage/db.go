// Package storage provides the SQLite-backed persistence layer for the
// symbol registry.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"doclink/internal/logging"
)

// DB represents a database connection with transaction helpers
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the SQLite database at <repoRoot>/.doclink/doclink.db
// and initializes the schema on first use.
func Open(repoRoot string, logger *logging.Logger) (*DB, error) {
	dir := filepath.Join(repoRoot, ".doclink")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .doclink directory: %w", err)
	}

	dbPath := filepath.Join(dir, "doclink.db")
	dbExists := fileExists(dbPath)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	db := &DB{conn: conn, logger: logger, dbPath: dbPath}

	if !dbExists {
		logger.Info("Creating new registry database", map[string]interface{}{
			"path": dbPath,
		})
	}
	if err := db.initializeSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Path returns the database file path.
func (db *DB) Path() string { return db.dbPath }

// Exec executes a statement on the underlying connection
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

// Query runs a query on the underlying connection
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

// QueryRow runs a single-row query on the underlying connection
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

// WithTx executes fn within a transaction, rolling back on error or panic.
func (db *DB) WithTx(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (db *DB) initializeSchema() error {
	_, err := db.conn.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS symbols (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT NOT NULL,
	kind   TEXT NOT NULL,
	doc    TEXT NOT NULL DEFAULT '',
	file   TEXT NOT NULL DEFAULT '',
	line   INTEGER NOT NULL DEFAULT 0,
	source TEXT NOT NULL DEFAULT '',
	UNIQUE(name, kind)
);

CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
CREATE INDEX IF NOT EXISTS idx_symbols_source ON symbols(source);

CREATE TABLE IF NOT EXISTS registry_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

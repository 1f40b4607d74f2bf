package db

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/viant/sqlite-db/engine"
)

// Row maps column names to scalar values (string, int64, float64, []byte,
// or nil). When a Row is written, its columns are emitted in sorted name
// order so the generated SQL is deterministic; the values are bound as
// positional parameters, never spliced into the statement text.
type Row map[string]any

// AlterOperation is the literal keyword inserted into generated
// ALTER TABLE statements.
type AlterOperation string

const (
	AlterAdd  AlterOperation = "ADD"
	AlterDrop AlterOperation = "DROP"
)

// ErrInvalidAlterOperation is returned by AlterTable before any statement
// is issued when the operation is not ADD or DROP.
var ErrInvalidAlterOperation = errors.New("db: invalid alter operation")

// DB is a convenience facade over a single SQLite database. It owns exactly
// one connection for its whole lifetime; Close releases it. A DB must not
// be used after Close; such use surfaces driver errors.
type DB struct {
	sqldb *sql.DB
}

// Open opens the database at path, creating the file if needed. An empty
// path opens an in-memory database. See engine.Open for the connection
// settings applied, including the best-effort foreign_keys pragma.
func Open(ctx context.Context, path string) (*DB, error) {
	sqldb, err := engine.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &DB{sqldb: sqldb}, nil
}

// Close releases the connection.
func (d *DB) Close() error { return d.sqldb.Close() }

// columns returns r's column names in sorted order.
func (r Row) columns() []string {
	cols := make([]string, 0, len(r))
	for c := range r {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// values returns r's values in the order of cols.
func (r Row) values(cols []string) []any {
	vals := make([]any, len(cols))
	for i, c := range cols {
		vals[i] = r[c]
	}
	return vals
}

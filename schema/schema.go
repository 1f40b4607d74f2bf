package schema

import (
	"context"
	"database/sql"
	"fmt"
)

// Column describes one declared column of a table.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Table pairs a table name with its declared columns.
type Table struct {
	Name    string   `json:"tableName"`
	Columns []Column `json:"columns"`
}

// Queryer is the subset of *sql.DB the introspection queries need.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// TableNames lists user tables in the catalog's native order, which is
// typically creation order. Internal sqlite_% tables are excluded so that
// engine bookkeeping (sqlite_sequence and friends) never shows up as data.
func TableNames(ctx context.Context, q Queryer) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// Columns reports the declared columns of table in declared order, via
// PRAGMA table_info. An unknown table yields an empty result, not an error.
func Columns(ctx context.Context, q Queryer, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			cid     int
			col     Column
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("table_info %s: %w", table, err)
		}
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	return cols, nil
}

package db

import (
	"context"
	"fmt"

	"github.com/viant/sqlite-db/internal/sqlbuild"
	"golang.org/x/sync/errgroup"
)

// InsertRows inserts each row as its own INSERT statement, all issued
// concurrently. The first failure is returned and rows that already
// executed stay committed; use InsertRowsTx when all-or-nothing matters.
func (d *DB) InsertRows(ctx context.Context, table string, rows ...Row) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, row := range rows {
		cols := row.columns()
		stmt := sqlbuild.Insert(table, cols)
		vals := row.values(cols)
		g.Go(func() error {
			if _, err := d.sqldb.ExecContext(ctx, stmt, vals...); err != nil {
				return fmt.Errorf("insert into %s: %w", table, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// InsertRowsTx inserts the rows inside one transaction: either every row is
// committed or none is.
func (d *DB) InsertRowsTx(ctx context.Context, table string, rows ...Row) error {
	tx, err := d.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert into %s: begin: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, row := range rows {
		cols := row.columns()
		if _, err := tx.ExecContext(ctx, sqlbuild.Insert(table, cols), row.values(cols)...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert into %s: commit: %w", table, err)
	}
	return nil
}

// UpdateRow sets row's columns on every row matching condition. An empty
// condition updates the whole table. Values are parameter-bound; the
// condition is trusted raw SQL.
func (d *DB) UpdateRow(ctx context.Context, table string, row Row, condition string) error {
	cols := row.columns()
	if _, err := d.sqldb.ExecContext(ctx, sqlbuild.Update(table, cols, condition), row.values(cols)...); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

// DeleteRows deletes every row matching condition; an empty condition
// empties the table.
func (d *DB) DeleteRows(ctx context.Context, table string, condition string) error {
	if _, err := d.sqldb.ExecContext(ctx, sqlbuild.Delete(table, condition)); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

// SelectRows returns the rows matching condition in engine order. The
// column set comes from the result, not the declared schema, so SELECT over
// altered tables reflects their current shape.
func (d *DB) SelectRows(ctx context.Context, table string, condition string) ([]Row, error) {
	rows, err := d.sqldb.QueryContext(ctx, sqlbuild.Select(table, condition))
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("select from %s: %w", table, err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	return out, nil
}

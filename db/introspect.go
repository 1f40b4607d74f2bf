package db

import (
	"context"

	"github.com/viant/sqlite-db/schema"
	"golang.org/x/sync/errgroup"
)

// Tables enumerates user tables in catalog order (typically creation
// order), fetching each table's columns concurrently. Internal sqlite_%
// tables are excluded.
func (d *DB) Tables(ctx context.Context) ([]schema.Table, error) {
	names, err := schema.TableNames(ctx, d.sqldb)
	if err != nil {
		return nil, err
	}

	tables := make([]schema.Table, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			cols, err := schema.Columns(ctx, d.sqldb, name)
			if err != nil {
				return err
			}
			tables[i] = schema.Table{Name: name, Columns: cols}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// TableColumns reports the declared columns of table in declared order. An
// unknown table yields an empty result, not an error.
func (d *DB) TableColumns(ctx context.Context, table string) ([]schema.Column, error) {
	return schema.Columns(ctx, d.sqldb, table)
}

// AllData returns every user table's rows keyed by table name. Tables are
// read one after another rather than concurrently, which keeps output
// stable when dumping a live database.
func (d *DB) AllData(ctx context.Context) (map[string][]Row, error) {
	tables, err := d.Tables(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[string][]Row, len(tables))
	for _, t := range tables {
		rows, err := d.SelectRows(ctx, t.Name, "")
		if err != nil {
			return nil, err
		}
		data[t.Name] = rows
	}
	return data, nil
}

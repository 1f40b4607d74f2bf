package db

import (
	"context"
	"fmt"

	"github.com/viant/sqlite-db/internal/sqlbuild"
	"golang.org/x/sync/errgroup"
)

// CreateTable creates a table if it does not already exist. Column
// definitions are raw SQL fragments, constraints included, and pass through
// verbatim; calling CreateTable again with the same name succeeds.
func (d *DB) CreateTable(ctx context.Context, name string, columnDefs ...string) error {
	if _, err := d.sqldb.ExecContext(ctx, sqlbuild.CreateTable(name, columnDefs)); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}
	return nil
}

// DropTable drops a table; dropping an absent table is not an error.
func (d *DB) DropTable(ctx context.Context, name string) error {
	if _, err := d.sqldb.ExecContext(ctx, sqlbuild.DropTable(name)); err != nil {
		return fmt.Errorf("drop table %s: %w", name, err)
	}
	return nil
}

// AlterTable issues one ALTER TABLE <name> <op> COLUMN <def> statement per
// definition. The statements are independent and run concurrently: there is
// no ordering among them and no rollback of the ones that succeeded if
// another fails. The operation is validated before anything is issued, and
// with no definitions the call returns without touching the database.
func (d *DB) AlterTable(ctx context.Context, name string, op AlterOperation, columnDefs ...string) error {
	if op != AlterAdd && op != AlterDrop {
		return fmt.Errorf("%w: %q", ErrInvalidAlterOperation, op)
	}
	if len(columnDefs) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, def := range columnDefs {
		stmt := sqlbuild.AlterColumn(name, string(op), def)
		g.Go(func() error {
			if _, err := d.sqldb.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("alter table %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Command sqlite-db inspects a SQLite database through the facade in this
// module: listing tables, showing declared columns, and dumping rows as
// JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/viant/sqlite-db/db"
	"github.com/viant/sqlite-db/engine"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sqlite-db:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("sqlite-db", pflag.ContinueOnError)
	path := flags.String("db", engine.DefaultPath, "database file path")
	flags.Usage = func() { usage(flags) }
	if err := flags.Parse(args); err != nil {
		return err
	}

	rest := flags.Args()
	if len(rest) == 0 {
		usage(flags)
		return errors.New("missing command")
	}

	ctx := context.Background()
	d, err := db.Open(ctx, *path)
	if err != nil {
		return err
	}
	defer d.Close()

	switch rest[0] {
	case "tables":
		tables, err := d.Tables(ctx)
		if err != nil {
			return err
		}
		return printJSON(tables)
	case "columns":
		if len(rest) < 2 {
			return errors.New("columns: missing table name")
		}
		cols, err := d.TableColumns(ctx, rest[1])
		if err != nil {
			return err
		}
		return printJSON(cols)
	case "dump":
		if len(rest) >= 2 {
			rows, err := d.SelectRows(ctx, rest[1], "")
			if err != nil {
				return err
			}
			return printJSON(rows)
		}
		data, err := d.AllData(ctx)
		if err != nil {
			return err
		}
		return printJSON(data)
	default:
		usage(flags)
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usage(flags *pflag.FlagSet) {
	fmt.Fprint(os.Stderr, `Usage: sqlite-db [--db path] <command>

Commands:
  tables           list tables with their declared columns
  columns <table>  list the declared columns of one table
  dump [table]     print all rows of one table, or of every table

Flags:
`)
	flags.PrintDefaults()
}

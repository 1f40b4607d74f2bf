package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// DefaultPath is the file name used for a file-backed database when the
// caller has no better location.
const DefaultPath = "my_database.db"

// busyTimeout is how long SQLite waits on a locked database before
// returning SQLITE_BUSY, in milliseconds.
const busyTimeout = 10000

// DSN maps a caller-facing path to a driver DSN. An empty path selects an
// in-memory database; anything else is a file path passed through verbatim.
func DSN(path string) string {
	if path == "" {
		return ":memory:"
	}
	return path
}

// Open opens a SQLite database at path ("" for in-memory) and configures it
// for single-connection use.
//
// The pool is capped at one connection: this module owns exactly one handle
// per database, and with more connections an in-memory DSN would give each
// connection its own private database.
//
// Foreign-key enforcement is best-effort: if the pragma fails, the error is
// logged and Open still succeeds, so referential integrity may silently not
// be enforced on such a connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply busy_timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		slog.Warn("enable foreign_keys failed; referential integrity is not enforced", "path", path, "error", err)
	}

	return db, nil
}

package engine

import (
	"context"
	"path/filepath"
	"testing"
)

// TestOpenInMemory verifies that an empty path opens a working in-memory
// database.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(context.Background(), "")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t(x INTEGER)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(x) VALUES (1),(2),(3)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
}

// TestOpenFile verifies that a file-backed database persists across a
// close/reopen cycle.
func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", path, err)
	}
	if _, err := db.Exec("CREATE TABLE t(x INTEGER)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(x) VALUES (7)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT count(*) FROM t").Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

// TestOpenEnablesForeignKeys checks that the foreign_keys pragma is active
// on the connection Open returns.
func TestOpenEnablesForeignKeys(t *testing.T) {
	db, err := Open(context.Background(), "")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer db.Close()

	var on int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&on); err != nil {
		t.Fatalf("PRAGMA foreign_keys failed: %v", err)
	}
	if on != 1 {
		t.Fatalf("foreign_keys = %d, want 1", on)
	}
}

func TestDSN(t *testing.T) {
	if got := DSN(""); got != ":memory:" {
		t.Errorf("DSN(\"\") = %q, want :memory:", got)
	}
	if got := DSN("my_database.db"); got != "my_database.db" {
		t.Errorf("DSN(my_database.db) = %q, want my_database.db", got)
	}
}

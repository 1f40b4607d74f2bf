// Package schema reads table and column metadata out of a SQLite database:
// table names from the sqlite_master catalog and declared columns from
// PRAGMA table_info. Results are rebuilt on every call, never cached.
package schema

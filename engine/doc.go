// Package engine opens SQLite databases for this module using the pure-Go
// modernc.org/sqlite driver and applies the connection settings the rest of
// the module relies on: a single pooled connection, a busy timeout, and
// foreign-key enforcement.
package engine

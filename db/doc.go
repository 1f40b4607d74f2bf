// Package db provides a small convenience facade over an embedded SQLite
// database: table DDL, row CRUD, and schema introspection over a single
// owned connection.
//
// The contract that matters: row values are always bound as statement
// parameters, while table names, column definitions, and condition
// fragments are trusted caller input spliced into the statement text
// verbatim. Callers must not build those from untrusted data.
package db

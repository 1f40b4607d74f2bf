// Package sqlbuild assembles the SQL statement text the facade issues.
// Identifiers, column definitions, and condition fragments are trusted
// caller input and are spliced in verbatim; row values never appear here,
// only `?` placeholders for them.
package sqlbuild

// Package recsql writes flattened record rows into a single table of an
// embedded database through [database/sql].
//
// The primary entry point is [WriteTable], which destructively recreates
// the destination table from an inferred schema and bulk-inserts the rows
// inside one transaction. [TableSQL] returns the CREATE TABLE statement for
// a schema without executing it.
//
// This package imports only [database/sql] and does not depend on any
// database driver. The consumer must import a driver (e.g.
// github.com/marcboeker/go-duckdb/v2 or modernc.org/sqlite) and pass a
// *sql.DB.
package recsql

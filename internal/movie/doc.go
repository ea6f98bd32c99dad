// Package movie persists award records in SQLite and exposes the
// queries the HTTP API and CLI need.
//
// The Store manages the database connection, schema initialization,
// CRUD operations, filtered list queries with pagination, and the
// winners query that feeds the interval engine. Record identifiers come
// from SQLite AUTOINCREMENT, which guarantees monotonically increasing
// values that are never reused across restarts or deletions.
//
// Treat this package as the single source of truth for record
// semantics; schema changes bump schemaVersion in schema.go and require
// users to recreate the database.
package movie

// Package store provides SQLite-backed persistence for bookstore records.
//
// The package owns the schema (embedded schema.sql, migrated via PRAGMA
// user_version) and exposes record-level CRUD functions that accept a DBTX,
// so callers can compose them inside a single transaction via Store.WithTx.
package store

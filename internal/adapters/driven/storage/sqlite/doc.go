// Package sqlite provides a SQLite-backed implementation of the
// key-value store port. It is the durable backend of choice when the
// data directory must survive concurrent CLI invocations: writes go
// through a WAL-mode database with a busy timeout instead of a
// whole-file rewrite.
//
// The schema is managed through embedded, versioned migrations that
// are applied on open.
package sqlite

// Package sqlite provides the SQLite implementation of the storage interfaces
// defined in the internal/store package, on top of the pure-Go modernc.org/sqlite
// driver. It is the default backend: a single file-backed database.
package sqlite

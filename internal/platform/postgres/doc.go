// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It is an optional
// backend selected with database.driver=postgres; connections go through the
// pgx database/sql driver so the same store.Pool serves both backends.
package postgres

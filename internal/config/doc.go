// Package config loads server and database settings from defaults, an optional
// config.yaml, and TODO_-prefixed environment variables, then validates them.
// With nothing configured the server listens on 0.0.0.0:8080 and stores entries
// in todo.db.
package config

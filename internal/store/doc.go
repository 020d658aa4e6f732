// Package store defines interfaces for data persistence operations and the
// connection pool they run on. These interfaces abstract the underlying data
// storage mechanism from the request handlers, allowing the HTTP layer to remain
// independent of specific database technologies or persistence details.
package store

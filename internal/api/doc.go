// Package api handles incoming HTTP requests, form decoding and response
// formatting. It acts as an adapter between browsers and the to-do store,
// translating HTTP concerns to single store operations.
package api

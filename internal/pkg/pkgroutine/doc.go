// Package pkgroutine runs background work, such as the HTTP listener, under a
// concurrency limit and gathers its errors and panics for shutdown.
package pkgroutine

// Package pkglog holds the slog setup shared by the whole service: a JSON
// handler with stable keys, plus the correlation ID carried in the request
// context and stamped onto every record.
package pkglog

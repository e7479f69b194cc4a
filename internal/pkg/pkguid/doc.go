// Package pkguid provides helpers for generating unique identifiers.
//
// The service uses them for correlation IDs. Three strategies are available
// behind the StringID interface:
//   - UUID v7 strings.
//   - ULID strings (sortable, monotonic within a millisecond).
//   - Snowflake numbers rendered in base 10.
package pkguid

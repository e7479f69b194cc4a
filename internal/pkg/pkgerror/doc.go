// Package pkgerror defines the structured error type shared by handlers and
// the router's error codec.
//
// Handlers return *Error values; the router maps them to an HTTP status with
// StatusCode and renders the user-facing message plus any per-field reasons.
// Anything that is not an *Error is treated as an internal server error.
package pkgerror

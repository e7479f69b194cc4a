// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Application code depends on the Config interface; Viper is the concrete
// implementation. Values come from a YAML file and can be overridden by
// environment variables, where dots in a key become underscores
// (server.address.http -> SERVER_ADDRESS_HTTP).
package pkgconfig
